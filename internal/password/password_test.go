package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/accounts-server/internal/apierrors"
)

func TestHash_Verify_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := Hash("password1")
	require.NoError(t, err)
	h2, err := Hash("password1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)

	ok, err := Verify("password1", h2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := Hash("password1")
	require.NoError(t, err)

	ok, err := Verify("password2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext string
		wantErr   *apierrors.APIError
	}{
		{
			name:      "empty password",
			plaintext: "",
			wantErr:   apierrors.NewErrEmptyPassword(),
		},
		{
			name:      "password over max length",
			plaintext: strings.Repeat("a", MaxLength+1),
			wantErr:   apierrors.NewErrExceededMaxPasswordLength(MaxLength),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Hash(tt.plaintext)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr.Message, err.Error())

			_, err = Verify(tt.plaintext, "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
			require.Error(t, err)
			assert.Equal(t, tt.wantErr.Message, err.Error())
		})
	}
}

func TestVerify_MaxLengthAccepted(t *testing.T) {
	t.Parallel()

	plaintext := strings.Repeat("a", MaxLength)
	hash, err := Hash(plaintext)
	require.NoError(t, err)

	ok, err := Verify(plaintext, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "not a phc string", stored: "plainly-not-a-hash"},
		{name: "wrong algorithm", stored: "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "wrong version", stored: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", stored: "$argon2id$v=19$m=65536,t=1,p=4$!!$aGFzaA"},
		{name: "bad key encoding", stored: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!"},
		{name: "missing sections", stored: "$argon2id$v=19$c2FsdA$aGFzaA"},
		{name: "zero rounds", stored: "$argon2id$v=19$m=65536,t=0,p=4$c2FsdA$aGFzaA"},
		{name: "zero threads", stored: "$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$aGFzaA"},
		{name: "empty digest", stored: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Verify("password1", tt.stored)
			require.Error(t, err)

			apiErr, ok := err.(*apierrors.APIError)
			require.True(t, ok)
			assert.Equal(t, apierrors.NewErrInvalidHashFormat().Message, apiErr.Message)
		})
	}
}

func TestVerify_BadParams(t *testing.T) {
	t.Parallel()

	_, err := Verify("password1", "$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA")
	require.Error(t, err)
	assert.Equal(t, apierrors.NewErrHashingError().Message, err.Error())
}
