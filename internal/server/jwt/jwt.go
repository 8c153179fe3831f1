// Package jwt issues and validates signed access tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired indicates the token signature was fine but the token is past its expiry
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token, a bad signature or a wrong algorithm
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims represents the claims embedded in an access token.
// Subject carries the username.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Service issues and validates HMAC-signed access tokens
type Service struct {
	method jwt.SigningMethod
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service.
// algorithm must be an HMAC method (HS256, HS384, HS512).
func NewService(secret, algorithm string, ttl time.Duration) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &Service{
		method: method,
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed access token for the given user.
// Returns the token string and its lifetime in seconds.
func (s *Service) Issue(userID int64, username string) (string, int64, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "uac-server",
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(s.ttl.Seconds()), nil
}

// Validate parses and verifies an access token.
// Returns ErrTokenExpired for a well-signed but expired token and
// ErrTokenInvalid for anything else that fails verification.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC family
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
