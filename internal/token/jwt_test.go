package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateParse_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret", time.Hour)
	userID := uuid.New()

	tokenString, err := m.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := m.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWT_GenerateToken_EmptySubject(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret", time.Hour)

	_, err := m.GenerateToken(uuid.Nil)
	require.Error(t, err)
}

func TestJWT_ParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret", time.Hour)
	other := NewJWT("other-secret", time.Hour)

	tokenString, err := m.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ParseToken(tokenString)
	require.Error(t, err)
}

func TestJWT_ParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret", 0)

	tokenString, err := m.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = m.ParseToken(tokenString)
	require.Error(t, err)
}

func TestJWT_ParseToken_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret", time.Hour)

	_, err := m.ParseToken("not.a.token")
	require.Error(t, err)
}

func TestJWT_ParseToken_WrongAlgorithm(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must be rejected even though the claims
	// themselves are well-formed.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	m := NewJWT("secret", time.Hour)
	_, err = m.ParseToken(tokenString)
	require.Error(t, err)
}

func TestJWT_ParseToken_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := signed.SignedString([]byte("secret"))
	require.NoError(t, err)

	m := NewJWT("secret", time.Hour)
	_, err = m.ParseToken(tokenString)
	require.Error(t, err)
}
