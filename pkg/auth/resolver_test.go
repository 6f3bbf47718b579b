package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"go-jobseeker-backend/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestTokenResolverValidToken(t *testing.T) {
	r := NewTokenResolver(testSecret)
	credential := signToken(t, testSecret, jwt.MapClaims{
		"id":    float64(7),
		"role":  "Manager",
		"email": "manager@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	actor, err := r.Resolve(credential)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), actor.ID)
	assert.Equal(t, "Manager", actor.Role)
	assert.Equal(t, "manager@example.com", actor.Email)
}

func TestTokenResolverMissingCredential(t *testing.T) {
	r := NewTokenResolver(testSecret)
	_, err := r.Resolve("")
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestTokenResolverRejectsBadSignature(t *testing.T) {
	r := NewTokenResolver(testSecret)
	credential := signToken(t, "other-secret", jwt.MapClaims{"id": float64(1)})
	_, err := r.Resolve(credential)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenResolverRejectsExpired(t *testing.T) {
	r := NewTokenResolver(testSecret)
	credential := signToken(t, testSecret, jwt.MapClaims{
		"id":  float64(1),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := r.Resolve(credential)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenResolverRejectsMalformed(t *testing.T) {
	r := NewTokenResolver(testSecret)
	_, err := r.Resolve("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestTokenResolverRejectsMissingIDClaim(t *testing.T) {
	r := NewTokenResolver(testSecret)
	credential := signToken(t, testSecret, jwt.MapClaims{"role": "Admin"})
	_, err := r.Resolve(credential)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestStaticResolverIgnoresCredential(t *testing.T) {
	r := &StaticResolver{Actor: Actor{ID: 1, Role: "Recruitment Executive", Email: "recruiter@example.com"}}

	for _, credential := range []string{"", "garbage", "Bearer whatever"} {
		actor, err := r.Resolve(credential)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), actor.ID)
	}
}

func TestNewResolverSelection(t *testing.T) {
	strict := &config.Config{StrictAuth: true, JWTSecret: testSecret}
	_, ok := NewResolver(strict).(*TokenResolver)
	assert.True(t, ok)

	dev := &config.Config{StrictAuth: false, MockUserID: 1, MockUserRole: "Admin"}
	_, ok = NewResolver(dev).(*StaticResolver)
	assert.True(t, ok)
}
