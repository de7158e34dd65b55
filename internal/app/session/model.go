package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTypeBearer = "bearer"

// Claims is the signed payload of a session token. Sessions are not stored
// server-side; expiry is their only lifecycle bound.
type Claims struct {
	jwt.RegisteredClaims
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"-"`
}
