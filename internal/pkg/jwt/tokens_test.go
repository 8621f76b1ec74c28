package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	issuer := NewJWTTokenIssuer()
	parser := NewJWTTokenParser()

	tokenString, err := issuer.IssueToken(secret, "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := parser.ParseToken(secret, tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTTokenIssuer()
	parser := NewJWTTokenParser()

	tokenString, err := issuer.IssueToken([]byte("right-secret"), "alice", time.Hour)
	require.NoError(t, err)

	_, err = parser.ParseToken([]byte("wrong-secret"), tokenString)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	issuer := NewJWTTokenIssuer()
	parser := NewJWTTokenParser()

	tokenString, err := issuer.IssueToken(secret, "alice", -time.Minute)
	require.NoError(t, err)

	_, err = parser.ParseToken(secret, tokenString)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	parser := NewJWTTokenParser()

	_, err := parser.ParseToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}
