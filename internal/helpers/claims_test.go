package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	secret := []byte("session-secret")

	tok, err := GenerateToken("65f1c0ffee0000000000abcd", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee0000000000abcd", claims.UserID)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("session-secret")

	tok, err := GenerateToken("u1", secret, -time.Second)
	require.NoError(t, err)

	_, err = ValidateToken(tok, secret)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(tok, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ValidateToken("not.a.jwt", []byte("k"))
	assert.Error(t, err)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("s")
	tok, err := GenerateToken("", secret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(tok, secret)
	assert.Error(t, err)
}
