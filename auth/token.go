package auth

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// TokenSigner issues a signed token for a subject id.
type TokenSigner interface {
	Sign(subjectID string) (string, error)
}

// TokenVerifier validates a token string and returns the subject id it
// carries. The guard depends on this interface rather than the concrete
// codec so tests can substitute fakes.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenCodec signs and verifies compact expiring HS256 tokens. Validity is
// entirely self-contained in the signature and the embedded expiry; there is
// no grace period for clock skew.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ TokenSigner = (*TokenCodec)(nil)
var _ TokenVerifier = (*TokenCodec)(nil)

// NewTokenCodec creates a codec from configuration.
func NewTokenCodec(cfg Config) (*TokenCodec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &TokenCodec{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// Sign creates a signed token carrying the subject id, issued now and
// expiring after the configured TTL.
func (c *TokenCodec) Sign(subjectID string) (string, error) {
	if subjectID == "" {
		return "", ErrTokenDataRequired
	}

	now := c.now()
	claims := gojwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded subject id.
// Expired tokens fail with ErrExpiredToken; anything else wrong with the
// token fails with ErrInvalidToken. Verification is stateless, so the same
// token verifies identically any number of times.
func (c *TokenCodec) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrTokenRequired
	}

	claims := &gojwt.RegisteredClaims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, c.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (c *TokenCodec) keyFunc(token *gojwt.Token) (interface{}, error) {
	if token.Method.Alg() != gojwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", token.Method.Alg())
	}
	return c.secret, nil
}
