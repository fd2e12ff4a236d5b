package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	caller := Caller{UserID: 42, Email: "ada@example.com", Role: RoleTeacher}

	token, err := NewToken(caller, "secret", time.Now())
	require.NoError(t, err)

	parsed, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, caller, parsed)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewToken(Caller{UserID: 1, Role: RoleStudent}, "secret", time.Now())
	require.NoError(t, err)

	_, err = ParseToken(token, "different secret")
	require.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	issued := time.Now().Add(-TokenTTL - time.Hour)
	token, err := NewToken(Caller{UserID: 1, Role: RoleStudent}, "secret", issued)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("definitely.not.a.token", "secret")
	require.Error(t, err)
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleTeacher.CanAuthorExams())
	assert.True(t, RoleAdmin.CanAuthorExams())
	assert.False(t, RoleStudent.CanAuthorExams())

	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleTeacher.IsAdmin())

	assert.True(t, RoleStudent.CanViewResultsOf(7, 7))
	assert.False(t, RoleStudent.CanViewResultsOf(7, 8))
	assert.True(t, RoleTeacher.CanViewResultsOf(7, 8))

	assert.False(t, Role("superuser").Valid())
	assert.True(t, RoleStudent.Valid())
}
