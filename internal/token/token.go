package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/models"
)

// ErrInvalidToken is returned when a token is malformed, forged or signed
// with a different secret.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies HS256 session tokens carrying a user id.
type Service struct {
	secret []byte
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a session token for the given user id. Tokens carry no expiry:
// they stay valid until the signing secret changes.
func (s *Service) Issue(userID uint) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates a token and returns the user id it carries. It does not
// check that the user still exists; callers that need a live record must
// re-resolve the id against the user repository.
func (s *Service) Verify(tokenString string) (uint, error) {
	claims := &models.JwtCustomClaims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
