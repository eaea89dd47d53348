package auth

import "errors"

var (
	// ErrCredentialMismatch means the supplied password does not match the stored hash.
	ErrCredentialMismatch = errors.New("credential mismatch")
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is a correctly signed token past its expiry.
	ErrExpiredToken = errors.New("expired token")
	// ErrUserNotFound means the token subject no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientRole means the caller is authenticated but not allowed.
	ErrInsufficientRole = errors.New("insufficient role")
)

// Client-facing reasons.
const (
	MsgMissingCredentials = "Not authenticated"
	MsgExpiredToken       = "Token is expired"
	MsgInvalidToken       = "Invalid Token"
	MsgForbidden          = "User has not permission for this resource"
)
