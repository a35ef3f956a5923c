package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"masterboxer.com/sns-api/models"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails []string
	}{
		{"valid", `{"username":"carol"}`, nil},
		{"unknown fields ignored", `{"username":"carol","extra":1}`, nil},
		{"empty username", `{"username":""}`, []string{"username is required"}},
		{"whitespace username", `{"username":" \t\n "}`, []string{"username must not be blank"}},
		{"wrong type", `{"username":42}`, []string{"request body must be a valid JSON object"}},
		{"too long", `{"username":"` + strings.Repeat("u", 101) + `"}`, []string{"username must be at most 100 characters"}},
		{"oversized body", `{"username":"carol","pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`, []string{"request body must be at most 8192 bytes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var req models.LikeRequest
			err := decodeBody(httptest.NewRecorder(), r, &req)

			if tt.wantDetails == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError got=%v", err)
			}
			if !slices.Equal(verr.Details, tt.wantDetails) {
				t.Fatalf("details: want=%v got=%v", tt.wantDetails, verr.Details)
			}
		})
	}
}

func TestWriteRequestErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	writeRequestError(rec, r, errors.New("connection refused on 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != codeInternal || body.Message != msgInternal || strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatalf("leaked or wrong envelope: %s", rec.Body.String())
	}
}
