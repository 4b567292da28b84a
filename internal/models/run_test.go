package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParsePickRunID(t *testing.T) {
	want := uuid.New()
	got, err := ParsePickRunID(want.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("parsed ID = %s, want %s", got, want)
	}
}

func TestParsePickRunIDMalformed(t *testing.T) {
	for _, input := range []string{"", "not-a-uuid", "1234"} {
		_, err := ParsePickRunID(input)
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParsePickRunID(%q) error = %v, want ErrInvalidID", input, err)
		}
	}
}
