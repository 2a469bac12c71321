package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

// DefaultSubject is the subject of tokens issued to the single tracker user.
const DefaultSubject = "user"

// Payload is what a verified token tells about its caller.
type Payload struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Manager issues and verifies HS256 bearer tokens.
type Manager interface {
	CreateToken(subject string) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a token manager. now may be nil, in which case time.Now is used.
func New(secret string, ttl time.Duration, now func() time.Time) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if now == nil {
		now = time.Now
	}
	return &implManager{secret: []byte(secret), ttl: ttl, now: now}, nil
}

func (m *implManager) CreateToken(subject string) (string, error) {
	issued := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	p := Payload{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
