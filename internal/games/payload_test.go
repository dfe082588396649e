// internal/games/payload_test.go
//
// Unit-tests for CreatePayload.Validate.
//
// Context
// -------
// The validation message is part of the client contract: "enter the game
// <field>", where <field> is the JSON name of the first empty field in
// declaration order (name, url, author, datePublished).  Values are not
// trimmed, so whitespace-only strings pass.  These tests pin both the
// ordering and the exact message text.
//
// Run: go test ./internal/games -v

package games

import (
	"errors"
	"testing"
)

func TestValidate_AllPresent(t *testing.T) {
	p := CreatePayload{
		Name:          "Chess",
		URL:           "https://example.com/chess",
		Author:        "Anon",
		DatePublished: "1475-01-01",
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_FirstEmptyFieldWins(t *testing.T) {
	cases := []struct {
		label   string
		payload CreatePayload
		field   string
		message string
	}{
		{
			label:   "all empty reports name",
			payload: CreatePayload{},
			field:   "name",
			message: "enter the game name",
		},
		{
			label: "name present reports url",
			payload: CreatePayload{
				Name: "Chess",
			},
			field:   "url",
			message: "enter the game url",
		},
		{
			label: "name and url present reports author",
			payload: CreatePayload{
				Name: "Chess",
				URL:  "https://example.com/chess",
			},
			field:   "author",
			message: "enter the game author",
		},
		{
			label: "only datePublished missing",
			payload: CreatePayload{
				Name:   "Chess",
				URL:    "https://example.com/chess",
				Author: "Anon",
			},
			field:   "datePublished",
			message: "enter the game datePublished",
		},
	}

	for _, c := range cases {
		err := c.payload.Validate()
		if err == nil {
			t.Fatalf("%s: Validate() = nil, want error", c.label)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: error type = %T, want *ValidationError", c.label, err)
		}
		if ve.Field != c.field {
			t.Errorf("%s: field = %q, want %q", c.label, ve.Field, c.field)
		}
		if ve.Error() != c.message {
			t.Errorf("%s: message = %q, want %q", c.label, ve.Error(), c.message)
		}
	}
}

func TestValidate_WhitespaceOnlyPasses(t *testing.T) {
	p := CreatePayload{
		Name:          "  ",
		URL:           "\t",
		Author:        " ",
		DatePublished: "\n",
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil (values are not trimmed)", err)
	}
}

func TestValidate_NotAMissesSentinel(t *testing.T) {
	// A validation failure must never satisfy errors.Is(err, ErrNotFound);
	// handlers rely on that to keep the 500/404 split correct.
	err := CreatePayload{}.Validate()
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("validation error matches ErrNotFound; status mapping would break")
	}
}
