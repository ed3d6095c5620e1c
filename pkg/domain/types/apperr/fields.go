package apperr

import (
	"sort"
	"strings"
)

// FieldErrors maps request field names to the reason they were rejected.
// It is carried as the cause of a validation error so the HTTP layer can
// report every offending field at once.
type FieldErrors map[string]string

func (x FieldErrors) Error() string {
	keys := make([]string, 0, len(x))
	for k := range x {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+x[k])
	}
	return "invalid fields (" + strings.Join(parts, ", ") + ")"
}
