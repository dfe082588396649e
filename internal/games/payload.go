// internal/games/payload.go
//
// Typed request payloads.
//
// Context
// -------
// Request bodies arrive as schema-less JSON; these structs give them an
// explicit required/optional shape before anything reaches persistence.
// CreatePayload fields are plain strings — absent and empty are the same
// thing at creation.  UpdatePayload fields are pointers: nil means "leave
// unchanged", a non-nil pointer means "set", including set-to-empty.  The
// merge is deliberately permissive: an update may blank a required field,
// and the store does not re-validate.  Clients depend on that looseness,
// so it is kept and documented here rather than silently tightened.
//
// Notes
// -----
//   • Validation checks fields independently, in declaration order, and
//     reports the first empty one.  Values are not trimmed; whitespace-only
//     strings pass.
//   • Oxford commas, two spaces after periods.
package games

// CreatePayload carries the client-supplied fields of a new record.
type CreatePayload struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Author        string `json:"author"`
	DatePublished string `json:"datePublished"`
}

// Validate returns a *ValidationError naming the first empty required
// field, or nil when all four are present.
func (p CreatePayload) Validate() error {
	checks := []struct {
		field, value string
	}{
		{"name", p.Name},
		{"url", p.URL},
		{"author", p.Author},
		{"datePublished", p.DatePublished},
	}
	for _, c := range checks {
		if c.value == "" {
			return &ValidationError{
				Field:   c.field,
				Message: "enter the game " + c.field,
			}
		}
	}
	return nil
}

// UpdatePayload carries a partial record for merge-style updates.
type UpdatePayload struct {
	Name          *string `json:"name"`
	URL           *string `json:"url"`
	Author        *string `json:"author"`
	DatePublished *string `json:"datePublished"`
}
