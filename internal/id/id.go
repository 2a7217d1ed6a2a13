package id

import "github.com/google/uuid"

// New returns a fresh process-wide unique id for a new entity.
// Uniqueness within a collection is enforced where entities are upserted,
// never checked globally.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID. Documents written by older
// builds may carry ids in other shapes; those are kept as-is, so this is a
// form-validation helper, not a load-time gate.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
