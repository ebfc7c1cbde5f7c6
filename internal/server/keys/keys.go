// Package keys mints and verifies the API keys of the reference backend.
// A key is an HS256 JWT carrying a role claim, the same shape Postgrest
// expects from its anon key.
package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer iss claim выпущенных ключей
	Issuer = "depotsync"
	// RoleAnon роль ключа кассы
	RoleAnon = "anon"
	// MinSecretLen минимальная длина секрета подписи
	MinSecretLen = 32
)

var (
	ErrWeakSecret  = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLen)
	ErrMissingRole = errors.New("api key has no role")
)

// Claims представляет JWT claims ключа
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Signer выпускает и проверяет ключи одним секретом
type Signer struct {
	now    func() time.Time
	secret []byte
}

// NewSigner creates a signer. The secret must be at least MinSecretLen bytes.
func NewSigner(secret string) (*Signer, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrWeakSecret
	}
	return &Signer{secret: []byte(secret), now: time.Now}, nil
}

// Mint creates a key for role. ttl <= 0 means the key never expires.
func (s *Signer) Mint(role string, ttl time.Duration) (string, error) {
	if role == "" {
		return "", ErrMissingRole
	}

	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   Issuer,
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify validates tokenString and returns its role.
func (s *Signer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Role == "" {
		return "", ErrMissingRole
	}
	return claims.Role, nil
}
