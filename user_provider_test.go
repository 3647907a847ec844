package identity_test

import (
	"context"
	"errors"
	"testing"

	identity "github.com/goliatone/go-identity"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserProviderVerifyIdentity(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockUserStore)

	provider := identity.NewUserProvider(mockStore)

	t.Run("successful verification", func(t *testing.T) {
		userID := uuid.New()
		passwordHash, _ := identity.HashPassword("password123")
		user := &identity.User{
			ID:           userID,
			Username:     "annlee",
			Email:        "ann@x.com",
			PasswordHash: passwordHash,
			Enabled:      true,
			Roles:        []*identity.Role{{ID: uuid.New(), Name: "ROLE_USER"}},
		}

		mockStore.On("GetByIdentifier", ctx, "ann@x.com").Return(user, nil).Once()

		verified, err := provider.VerifyIdentity(ctx, "ann@x.com", "password123")

		assert.NoError(t, err)
		assert.NotNil(t, verified)
		assert.Equal(t, userID.String(), verified.ID())
		assert.Equal(t, "annlee", verified.Username())
		assert.Equal(t, "ann@x.com", verified.Email())
		assert.Equal(t, []string{"ROLE_USER"}, verified.Roles())

		mockStore.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		passwordHash, _ := identity.HashPassword("correct_password")
		user := &identity.User{
			ID:           uuid.New(),
			Username:     "annlee",
			Email:        "ann@x.com",
			PasswordHash: passwordHash,
			Enabled:      true,
		}

		mockStore.On("GetByIdentifier", ctx, "annlee").Return(user, nil).Once()
		mockStore.On("GetByIdentifier", ctx, "ghost").
			Return(nil, repository.NewRecordNotFound()).Once()

		_, wrongPassErr := provider.VerifyIdentity(ctx, "annlee", "wrongpass")
		_, unknownErr := provider.VerifyIdentity(ctx, "ghost", "x")

		assert.ErrorIs(t, wrongPassErr, identity.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownErr, identity.ErrInvalidCredentials)
		assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())

		mockStore.AssertExpectations(t)
	})

	t.Run("disabled account is rejected after lookup", func(t *testing.T) {
		passwordHash, _ := identity.HashPassword("password123")
		user := &identity.User{
			ID:           uuid.New(),
			Username:     "frozen",
			Email:        "frozen@example.com",
			PasswordHash: passwordHash,
			Enabled:      false,
		}

		mockStore.On("GetByIdentifier", ctx, "frozen").Return(user, nil).Once()

		_, err := provider.VerifyIdentity(ctx, "frozen", "password123")
		assert.ErrorIs(t, err, identity.ErrAccountDisabled)

		mockStore.AssertExpectations(t)
	})

	t.Run("store failures are wrapped, not leaked", func(t *testing.T) {
		mockStore.On("GetByIdentifier", ctx, "boom").
			Return(nil, errors.New("connection reset")).Once()

		_, err := provider.VerifyIdentity(ctx, "boom", "x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, identity.ErrInvalidCredentials)

		mockStore.AssertExpectations(t)
	})
}

func TestUserProviderFindIdentityByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves without checking credentials", func(t *testing.T) {
		mockStore := new(MockUserStore)
		provider := identity.NewUserProvider(mockStore)

		user := &identity.User{
			ID:       uuid.New(),
			Username: "annlee",
			Email:    "ann@x.com",
			Enabled:  true,
			Roles:    []*identity.Role{{ID: uuid.New(), Name: "ROLE_USER"}},
		}

		mockStore.On("GetByIdentifier", ctx, "annlee").Return(user, nil).Once()

		found, err := provider.FindIdentityByIdentifier(ctx, "annlee")
		assert.NoError(t, err)
		assert.Equal(t, "annlee", found.Username())

		mockStore.AssertExpectations(t)
	})

	t.Run("disabled account is still rejected", func(t *testing.T) {
		mockStore := new(MockUserStore)
		provider := identity.NewUserProvider(mockStore)

		user := &identity.User{
			ID:       uuid.New(),
			Username: "frozen",
			Enabled:  false,
		}

		mockStore.On("GetByIdentifier", ctx, mock.Anything).Return(user, nil).Once()

		_, err := provider.FindIdentityByIdentifier(ctx, "frozen")
		assert.ErrorIs(t, err, identity.ErrAccountDisabled)
	})
}
