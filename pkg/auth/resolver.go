package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"go-jobseeker-backend/config"
)

// Actor is the verified identity behind a request. It lives for the
// duration of one request and is never persisted.
type Actor struct {
	ID    int64
	Role  string
	Email string
}

var (
	// ErrNoCredential means no token was presented at all.
	ErrNoCredential = errors.New("access token required")
	// ErrInvalidCredential means a token was presented but failed
	// verification (malformed, expired, bad signature).
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// Resolver turns raw credential material into a verified Actor. Anything
// downstream of a Resolver trusts the Actor without further checks.
type Resolver interface {
	Resolve(credential string) (*Actor, error)
}

// NewResolver picks the resolver implementation from configuration:
// strict verification in production, the fixed development identity
// otherwise. Same contract either way.
func NewResolver(cfg *config.Config) Resolver {
	if cfg.StrictAuth {
		return &TokenResolver{secret: []byte(cfg.JWTSecret)}
	}
	return &StaticResolver{Actor: Actor{
		ID:    cfg.MockUserID,
		Role:  cfg.MockUserRole,
		Email: cfg.MockUserEmail,
	}}
}

// TokenResolver verifies HS256 bearer tokens against a shared secret.
type TokenResolver struct {
	secret []byte
}

func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{secret: []byte(secret)}
}

func (r *TokenResolver) Resolve(credential string) (*Actor, error) {
	if credential == "" {
		return nil, ErrNoCredential
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredential
	}

	// id is issued as a JSON number
	idClaim, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidCredential
	}
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	return &Actor{ID: int64(idClaim), Role: role, Email: email}, nil
}

// StaticResolver always yields the same Actor. Used when STRICT_AUTH is
// off, mirroring a local development session.
type StaticResolver struct {
	Actor Actor
}

func (r *StaticResolver) Resolve(credential string) (*Actor, error) {
	actor := r.Actor
	return &actor, nil
}
