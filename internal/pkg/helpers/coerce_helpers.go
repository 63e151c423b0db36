package helpers

import "strings"

// NormalizeOptionalString trims an optional string and coerces the empty string
// to absent. A pointer to "" coming from a form submission means the field was
// left blank, not that the caller wants to store an empty value.
func NormalizeOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// OptionalStringValue dereferences an optional string, returning "" when absent.
func OptionalStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BoolOrDefault dereferences an optional bool, falling back to def when absent.
func BoolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
