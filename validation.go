package identity

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginMessage carries the transient credentials presented at login. The
// plaintext password is never persisted or logged.
type LoginMessage struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (m LoginMessage) Type() string { return "user.login" }

// Validate aggregates field errors before the message reaches the
// authenticator.
func (m LoginMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Identifier, validation.Required),
		validation.Field(&m.Password, validation.Required),
	)
}

// Validate aggregates field errors before the registration is executed
func (e RegisterUserMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.FirstName, validation.Required, validation.Length(3, 50)),
		validation.Field(&e.LastName, validation.Required, validation.Length(3, 50)),
		validation.Field(&e.Username, validation.Length(3, 50)),
		validation.Field(&e.Email, validation.Required, is.Email),
		validation.Field(&e.Password, validation.Required, validation.Length(8, 0)),
	)
}
