package models

type NewPostRequest struct {
	Username string `json:"username" validate:"required,notblank,min=1,max=100"`
	Content  string `json:"content" validate:"required,notblank,min=1,max=500"`
}

type UpdatePostRequest struct {
	Username string `json:"username" validate:"required,notblank,min=1,max=100"`
	Content  string `json:"content" validate:"required,notblank,min=1,max=500"`
}

type NewCommentRequest struct {
	Username string `json:"username" validate:"required,notblank,min=1,max=100"`
	Content  string `json:"content" validate:"required,notblank,min=1,max=300"`
}

type UpdateCommentRequest struct {
	Username string `json:"username" validate:"required,notblank,min=1,max=100"`
	Content  string `json:"content" validate:"required,notblank,min=1,max=300"`
}

type LikeRequest struct {
	Username string `json:"username" validate:"required,notblank,min=1,max=100"`
}
