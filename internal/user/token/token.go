package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vidtube-backend/internal/user/domain"
)

var (
	// ErrTokenExpired is returned when a token's signature is valid but its
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for a malformed token, a bad signature, or
	// claims of the wrong shape.
	ErrTokenInvalid = errors.New("token invalid")
)

// AccessClaims is embedded in short-lived access tokens.
type AccessClaims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// RefreshClaims carries only the user id; refresh tokens reveal nothing else.
type RefreshClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies the two token classes. Access and refresh tokens
// use distinct secrets so a compromise of one does not compromise the other.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// IssueAccessToken signs a short-lived token embedding the user's identity.
func (i *Issuer) IssueAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
}

// IssueRefreshToken signs a long-lived token embedding only the user id.
func (i *Issuer) IssueRefreshToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
}

// VerifyAccess validates tokenString against the access secret.
func (i *Issuer) VerifyAccess(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := i.verify(tokenString, claims, i.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefresh validates tokenString against the refresh secret.
func (i *Issuer) VerifyRefresh(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := i.verify(tokenString, claims, i.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (i *Issuer) verify(tokenString string, claims jwt.Claims, secret []byte) error {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !parsed.Valid {
		return ErrTokenInvalid
	}
	return nil
}
