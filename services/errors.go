package services

import (
	"errors"
	"fmt"

	"masterboxer.com/sns-api/storage"
)

// ErrNotFound is the root of every "no such entity" outcome. Author mismatches
// wrap it as well so existing clients keep seeing a 404.
var ErrNotFound = errors.New("not found")

var (
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrNotOwner        = fmt.Errorf("author mismatch: %w", ErrNotFound)
)

func postLookupErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func commentLookupErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrCommentNotFound
	}
	return err
}
