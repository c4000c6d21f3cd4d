package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingPermissions = errors.New("permissions not included in token")
	ErrKeyNotFound        = errors.New("signing key not found")
)

// Claims is the decoded claim set handed to handlers.
type Claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Missing returns the subset of perms not granted, in order.
func (c *Claims) Missing(perms ...string) []string {
	var missing []string
	for _, p := range perms {
		if !slices.Contains(c.Permissions, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Verifier checks a raw bearer token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

type Config struct {
	Issuer   string
	Audience string
	JWKSURL  string
	JWKSTTL  time.Duration
	Client   *http.Client
}

// JWTVerifier validates RS256 tokens against the issuer's published key set.
type JWTVerifier struct {
	issuer   string
	audience string
	keys     *JWKSCache
}

func NewJWTVerifier(config Config) *JWTVerifier {
	return &JWTVerifier{
		issuer:   config.Issuer,
		audience: config.Audience,
		keys:     NewJWKSCache(config.JWKSURL, config.Client, config.JWKSTTL),
	}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token missing kid header")
		}
		return v.keys.GetKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Permissions == nil {
		return nil, ErrMissingPermissions
	}

	return &claims, nil
}
