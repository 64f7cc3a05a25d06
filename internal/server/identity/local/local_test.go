package local

import (
	"context"
	"errors"
	"testing"

	"bets/internal/common/identity/tools/hasher"
	"bets/internal/repositories/identity"
	"bets/internal/repositories/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	// регистрирую мок хранилища учетных записей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockIdentifier(ctrl)

	ctx := context.Background()

	// подготавливаю учетную запись с установленным паролем
	password := "secret"
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	user := identity.Principal{
		ID:           "some-user-id",
		Email:        "a@x.com",
		Role:         "user",
		Salt:         salt,
		PasswordHash: hasher.DeriveHash(password, salt),
	}

	// Test. successful authentication ------------------------------------------------
	m.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, true, nil)
	strat := NewStrategy(m)
	got, err := strat.Authenticate(ctx, user.Email, password)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)

	// Test. wrong password -----------------------------------------------------------
	m.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, true, nil)
	_, err = strat.Authenticate(ctx, user.Email, "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrCredentialMismatch)

	// Test. no such user -------------------------------------------------------------
	m.EXPECT().FindByEmail(gomock.Any(), "nobody@x.com").Return(identity.Principal{}, false, nil)
	_, err = strat.Authenticate(ctx, "nobody@x.com", password)
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrCredentialNotFound)

	// Test. user has no password set -------------------------------------------------
	noPassword := identity.Principal{
		ID:    "no-password-id",
		Email: "empty@x.com",
	}
	m.EXPECT().FindByEmail(gomock.Any(), noPassword.Email).Return(noPassword, true, nil)
	_, err = strat.Authenticate(ctx, noPassword.Email, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrNoPasswordSet)

	// Test. storage error ------------------------------------------------------------
	storErr := errors.New("storage is down")
	m.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(identity.Principal{}, false, storErr)
	_, err = strat.Authenticate(ctx, user.Email, password)
	require.Error(t, err)
	assert.ErrorIs(t, err, storErr)
	// ошибка хранилища не должна считаться ошибкой учетных данных
	assert.Equal(t, false, IsCredentialError(err))
}

func TestIsCredentialError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"credential not found", identity.ErrCredentialNotFound, true},
		{"credential mismatch", identity.ErrCredentialMismatch, true},
		{"no password set", identity.ErrNoPasswordSet, true},
		{"storage error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCredentialError(tt.err))
		})
	}
}
