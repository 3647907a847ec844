package identity_test

import (
	"testing"

	identity "github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
)

func TestLoginMessageValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		msg := identity.LoginMessage{Identifier: "annlee", Password: "password123"}
		assert.NoError(t, msg.Validate())
	})

	t.Run("missing fields aggregate", func(t *testing.T) {
		msg := identity.LoginMessage{}
		err := msg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "identifier")
		assert.Contains(t, err.Error(), "password")
	})
}

func TestRegisterUserMessageValidate(t *testing.T) {
	valid := identity.RegisterUserMessage{
		FirstName: "Ann",
		LastName:  "Lee",
		Username:  "annlee",
		Email:     "ann@x.com",
		Password:  "password123",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("blank username is allowed, derived from email later", func(t *testing.T) {
		msg := valid
		msg.Username = ""
		assert.NoError(t, msg.Validate())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		msg := valid
		msg.Email = "not-an-email"
		assert.Error(t, msg.Validate())
	})

	t.Run("rejects short password", func(t *testing.T) {
		msg := valid
		msg.Password = "short"
		assert.Error(t, msg.Validate())
	})

	t.Run("rejects names outside bounds", func(t *testing.T) {
		msg := valid
		msg.FirstName = "An"
		assert.Error(t, msg.Validate())

		msg = valid
		msg.LastName = ""
		assert.Error(t, msg.Validate())
	})
}
