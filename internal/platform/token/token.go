package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel failures surfaced by Verify. All of them map to an
// unauthenticated response at the HTTP boundary.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
)

// Claims is the identity embedded in an access token.
type Claims struct {
	SubjectID int64
	Username  string
}

// Service issues and verifies self-contained HS256 access tokens. It holds
// no per-session state: verification is a pure function of the token, the
// secret, and the wall clock.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New builds a token service. The algorithm name comes from configuration
// so a mismatch between deployments is caught at startup rather than at
// the first verify.
func New(secret string, algorithm string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if algorithm != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the subject id, username, and an expiry of
// now + the configured TTL. Claim names follow the wire contract: "id" for
// the subject id, "sub" for the username.
func (s *Service) Issue(claims Claims) (string, error) {
	expiresAt := s.now().Add(s.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  claims.SubjectID,
		"sub": claims.Username,
		"exp": expiresAt.Unix(),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes and validates signature and expiry. Expiry wins over a
// missing subject so an expired token reports ErrTokenExpired rather than
// malformed.
func (s *Service) Verify(raw string) (Claims, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenSignature
		default:
			return Claims{}, ErrTokenMalformed
		}
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrTokenMalformed
	}

	id, ok := payload["id"].(float64)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}
	username, _ := payload["sub"].(string)
	return Claims{
		SubjectID: int64(id),
		Username:  username,
	}, nil
}

// Refresh re-validates a token and issues a replacement with a fresh
// expiry window for the same claims. Because it goes through Verify, an
// already-expired token cannot be refreshed; there is no grace window.
func (s *Service) Refresh(raw string) (string, error) {
	claims, err := s.Verify(raw)
	if err != nil {
		return "", err
	}
	return s.Issue(claims)
}
