package services

import (
	"testing"
	"time"

	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-1",
		Email: "maria@example.com",
		Role:  models.RoleClient,
	}
}

func TestIssueAndParse(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, models.RoleClient, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Parse("not.a.token")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
