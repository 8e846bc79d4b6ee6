package security

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fooddelivery"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("token secret must not be empty")
)

type claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTIssuer signs principals into HS256 tokens that expire after ttl.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(principal account.Principal) (string, time.Time, error) {
	if err := principal.Validate(); err != nil {
		return "", time.Time{}, err
	}

	now := i.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(i.ttl)

	roles := make([]string, 0, len(principal.Roles()))
	for _, r := range principal.Roles() {
		roles = append(roles, string(r))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.AccountID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse fails with ErrInvalidToken for bad signatures, expired tokens and
// tokens whose subject or roles do not describe a valid principal.
func (i *JWTIssuer) Parse(token string) (account.Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return account.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return account.Principal{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	roles := make([]account.Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		role, roleErr := account.ParseRole(r)
		if roleErr != nil {
			return account.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, roleErr)
		}
		roles = append(roles, role)
	}

	principal := account.NewPrincipal(id, roles...)
	if err = principal.Validate(); err != nil {
		return account.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return principal, nil
}
