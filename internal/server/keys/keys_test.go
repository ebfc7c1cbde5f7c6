package keys

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewSigner(t *testing.T) {
	_, err := NewSigner("short")
	assert.ErrorIs(t, err, ErrWeakSecret)

	s, err := NewSigner(testSecret)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSigner_MintAndVerify(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)

	token, err := s.Mint(RoleAnon, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	role, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAnon, role)

	_, err = s.Mint("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestSigner_Expiry(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)

	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token, err := s.Mint(RoleAnon, time.Hour)
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSigner_Rejects(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)

	other, err := NewSigner(strings.Repeat("x", MinSecretLen))
	require.NoError(t, err)
	foreign, err := other.Mint(RoleAnon, 0)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: RoleAnon}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             RoleAnon,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"foreign secret", foreign},
		{"alg none", noneToken},
		{"wrong issuer", wrongIssuer},
		{"no role", noRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}
