package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Token types carried in the "type" claim
const (
	AccessToken  = "access"
	RefreshToken = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrWrongTokenType = errors.New("unexpected token type")
)

// Claims represents the JWT claims structure
type Claims struct {
	Username  string `json:"username"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Pair is an access token together with the refresh token that renews it
type Pair struct {
	Access    string
	Refresh   string
	ExpiresIn time.Duration
}

// Issuer signs and verifies HS256 tokens with a shared secret
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer creates an Issuer for the given secret and token lifetimes
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssuePair creates a new access and refresh token for username
func (i *Issuer) IssuePair(username string) (*Pair, error) {
	access, err := i.sign(username, AccessToken, i.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := i.sign(username, RefreshToken, i.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh, ExpiresIn: i.accessTTL}, nil
}

// Refresh validates a refresh token and issues a new pair for the same user
func (i *Issuer) Refresh(refreshToken string) (*Pair, error) {
	claims, err := i.Validate(refreshToken, RefreshToken)
	if err != nil {
		return nil, err
	}
	return i.IssuePair(claims.Username)
}

// Validate parses tokenString and checks its signature, expiry and type
func (i *Issuer) Validate(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrWrongTokenType, claims.TokenType, tokenType)
	}

	return claims, nil
}

func (i *Issuer) sign(username, tokenType string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := &Claims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
