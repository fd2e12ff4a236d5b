package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	registered, err := env.auth.Register(dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
		Role:      auth.RoleTeacher,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, auth.RoleTeacher, registered.User.Role)
	assert.True(t, registered.User.IsActive)

	loggedIn, err := env.auth.Login(dto.LoginRequest{Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	caller, err := auth.ParseToken(loggedIn.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, caller.UserID)
	assert.Equal(t, auth.RoleTeacher, caller.Role)
}

func TestRegisterDefaultsToStudentRole(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(dto.RegisterRequest{
		FirstName: "Sam",
		LastName:  "Student",
		Email:     "sam@example.com",
		Password:  "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleStudent, resp.User.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	req := dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
	}
	_, err := env.auth.Register(req)
	require.NoError(t, err)

	_, err = env.auth.Register(req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))

	_, err = env.auth.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
	})
	require.NoError(t, err)

	me, err := env.auth.CurrentUser(auth.Caller{UserID: resp.User.ID, Email: resp.User.Email, Role: resp.User.Role})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)

	_, err = env.auth.CurrentUser(auth.Caller{UserID: 9999})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
