package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
)

// RoleAdmin is the role granted to the configured administrator.
const RoleAdmin = "admin"

// DefaultTokenTTL is how long an access token stays valid.
const DefaultTokenTTL = 15 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// Claims is what the API needs from a verified token.
type Claims struct {
	Subject string
	Role    string
}

// Tokens issues and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewTokens(secret string, ttl time.Duration, clk clock.Clock) *Tokens {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, clock: clk}
}

func (t *Tokens) Generate(subject, role string) (string, error) {
	now := t.clock.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Parse verifies tokenStr and returns its claims. A "Bearer " prefix is
// accepted and stripped.
func (t *Tokens) Parse(tokenStr string) (Claims, error) {
	tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))
	if tokenStr == "" {
		return Claims{}, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil || !token.Valid {
		return Claims{}, errors.Wrap(ErrInvalidToken, errorText(err))
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	role, _ := mc["role"].(string)
	return Claims{Subject: sub, Role: role}, nil
}

func errorText(err error) string {
	if err == nil {
		return "not valid"
	}
	return err.Error()
}

type claimsKey struct{}

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(Claims)
	return c, ok
}
