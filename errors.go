package identity

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeTokenMalformed     = "TOKEN_MALFORMED"
	textCodeTokenExpired       = "TOKEN_EXPIRED"
	textCodeTokenBadSignature  = "TOKEN_BAD_SIGNATURE"
	textCodeTokenUnsupported   = "TOKEN_UNSUPPORTED"
	textCodeInvalidCredentials = "INVALID_CREDENTIALS"
	textCodeAccountDisabled    = "ACCOUNT_DISABLED"
	textCodeUsernameTaken      = "USERNAME_TAKEN"
	textCodeEmailTaken         = "EMAIL_TAKEN"
	textCodeRoleNotConfigured  = "ROLE_NOT_CONFIGURED"
)

// ErrTokenMalformed is returned when a token string cannot be parsed into
// the expected compact representation.
var ErrTokenMalformed = goerrors.New("malformed authentication token", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenExpired is returned when a token carries a valid signature but is
// past its expiry.
var ErrTokenExpired = goerrors.New("authentication token is expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrBadSignature is returned when the token signature does not verify
// against the configured signing key.
var ErrBadSignature = goerrors.New("authentication token signature mismatch", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenBadSignature).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenUnsupported is returned when the token uses a signing method or
// format this service does not recognize.
var ErrTokenUnsupported = goerrors.New("unsupported authentication token", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenUnsupported).
	WithCode(goerrors.CodeUnauthorized)

// ErrInvalidCredentials is shared by the unknown-identifier and
// wrong-password paths so callers cannot tell which one failed.
var ErrInvalidCredentials = goerrors.New("username or password is incorrect", goerrors.CategoryAuth).
	WithTextCode(textCodeInvalidCredentials).
	WithCode(goerrors.CodeUnauthorized)

// ErrAccountDisabled is returned when credentials verify but the account
// has been disabled.
var ErrAccountDisabled = goerrors.New("account is disabled", goerrors.CategoryAuth).
	WithTextCode(textCodeAccountDisabled).
	WithCode(goerrors.CodeUnauthorized)

// ErrUsernameTaken is returned when registering with a username that
// already exists.
var ErrUsernameTaken = goerrors.New("username is already taken", goerrors.CategoryConflict).
	WithTextCode(textCodeUsernameTaken).
	WithCode(goerrors.CodeConflict)

// ErrEmailTaken is returned when registering with an email that already
// exists.
var ErrEmailTaken = goerrors.New("email is already in use", goerrors.CategoryConflict).
	WithTextCode(textCodeEmailTaken).
	WithCode(goerrors.CodeConflict)

// ErrRoleNotConfigured signals a deployment fault: the default role row is
// missing from the store. Not a user error.
var ErrRoleNotConfigured = goerrors.New("default role is not configured", goerrors.CategoryInternal).
	WithTextCode(textCodeRoleNotConfigured)

// ErrNoEmptyString rejects blank secrets
var ErrNoEmptyString = goerrors.New("value should not be an empty string", goerrors.CategoryValidation).
	WithCode(goerrors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.Is(err, ErrTokenExpired) ||
		strings.Contains(err.Error(), "token is expired")
}

// IsBadSignatureError will check for signature mismatches
func IsBadSignatureError(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.Is(err, ErrBadSignature) ||
		strings.Contains(err.Error(), "signature is invalid")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.Is(err, ErrTokenMalformed) ||
		strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsUniqueViolation reports whether err looks like a store-level unique
// constraint violation, across the drivers we support.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "constraint failed")
}

// TranslateUniqueViolation maps a race-lost uniqueness error from the store
// to the corresponding registration error. The column name embedded in the
// driver message decides which field collided. Returns nil when err is not
// a unique violation.
func TranslateUniqueViolation(err error) error {
	if !IsUniqueViolation(err) {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "email") {
		return ErrEmailTaken
	}
	if strings.Contains(msg, "username") {
		return ErrUsernameTaken
	}
	return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user").
		WithCode(goerrors.CodeConflict)
}
