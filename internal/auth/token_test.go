package auth

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadToken(t *testing.T) {
	p := filepath.Join(t.TempDir(), "token")
	t.Setenv("STUDYHALL_TOKEN_FILE", p)

	require.NoError(t, SaveToken("  tok-abc \n"))

	got, err := LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)
}

func TestLoadToken_MissingFileIsNotSignedIn(t *testing.T) {
	t.Setenv("STUDYHALL_TOKEN_FILE", filepath.Join(t.TempDir(), "nope"))

	got, err := LoadToken()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIdentityFromToken(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-42",
		"name":  "Ada",
		"email": "ada@example.com",
	})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	id, err := IdentityFromToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", id.Subject)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "ada@example.com", id.Email)
	assert.Equal(t, "Ada", id.DisplayName())
}

func TestIdentityFromToken_Garbage(t *testing.T) {
	_, err := IdentityFromToken("not-a-jwt")
	require.Error(t, err)
}

func TestDisplayName_Fallbacks(t *testing.T) {
	assert.Equal(t, "a@b.c", Identity{Subject: "u1", Email: "a@b.c"}.DisplayName())
	assert.Equal(t, "u1", Identity{Subject: "u1"}.DisplayName())
}
