package models

import "testing"

func TestAuthorMatches(t *testing.T) {
	post := Post{ID: "p1", Username: "alice"}
	comment := Comment{ID: "c1", PostID: "p1", Username: "bob"}

	tests := []struct {
		name    string
		entity  Authored
		claimed string
		want    bool
	}{
		{"post author", post, "alice", true},
		{"post stranger", post, "bob", false},
		{"comment author", comment, "bob", true},
		{"comment ignores post author", comment, "alice", false},
		{"case sensitive", post, "Alice", false},
		{"empty claim", post, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorMatches(tt.entity, tt.claimed); got != tt.want {
				t.Fatalf("AuthorMatches(%q): want=%t got=%t", tt.claimed, tt.want, got)
			}
		})
	}
}
