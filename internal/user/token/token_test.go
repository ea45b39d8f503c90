package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube-backend/internal/user/domain"
	"vidtube-backend/internal/user/token"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-1",
		Username: "ab",
		Email:    "a@b.com",
		FullName: "A B",
	}
}

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
}

func TestIssuer_AccessTokenRoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	tokenString, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := issuer.VerifyAccess(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "ab", claims.Username)
	assert.Equal(t, "A B", claims.FullName)
}

func TestIssuer_RefreshTokenCarriesOnlyID(t *testing.T) {
	issuer := newTestIssuer()

	tokenString, err := issuer.IssueRefreshToken(testUser())
	require.NoError(t, err)

	claims, err := issuer.VerifyRefresh(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestIssuer_DistinctSecrets(t *testing.T) {
	issuer := newTestIssuer()

	accessToken, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)
	refreshToken, err := issuer.IssueRefreshToken(testUser())
	require.NoError(t, err)

	// A token of one class must not verify as the other.
	_, err = issuer.VerifyRefresh(accessToken)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)

	_, err = issuer.VerifyAccess(refreshToken)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestIssuer_ExpiredToken(t *testing.T) {
	issuer := token.NewIssuer("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	accessToken, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)
	_, err = issuer.VerifyAccess(accessToken)
	assert.ErrorIs(t, err, token.ErrTokenExpired)

	refreshToken, err := issuer.IssueRefreshToken(testUser())
	require.NoError(t, err)
	_, err = issuer.VerifyRefresh(refreshToken)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestIssuer_TamperedToken(t *testing.T) {
	issuer := newTestIssuer()

	tokenString, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-5] + "XXXXX"
	_, err = issuer.VerifyAccess(tampered)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestIssuer_MalformedToken(t *testing.T) {
	issuer := newTestIssuer()

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.VerifyAccess(tokenString)
		assert.ErrorIs(t, err, token.ErrTokenInvalid, "token %q", tokenString)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	issuer := newTestIssuer()
	other := token.NewIssuer("different-access", "different-refresh", 15*time.Minute, 240*time.Hour)

	tokenString, err := issuer.IssueAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.VerifyAccess(tokenString)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}
