package models

import "github.com/google/uuid"

// Identity is the resolved caller of a request, derived from the access token
// issued by the external identity provider. It is constructed once per request
// by the auth middleware and passed explicitly into mutating operations.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
