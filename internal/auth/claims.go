package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the resolved identity of an authenticated caller.
type UserClaims interface {
	UserID() string
	Source() string
}

// JWTClaims carries the identity parsed from a bearer token. Token
// issuance lives in the account service; this backend only validates.
type JWTClaims struct {
	UserUUID  string
	ExpiresAt time.Time
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Source() string { return "JWT" }

// ParseBearerToken validates an HS256 bearer token and extracts the
// caller identity.
func ParseBearerToken(tokenString string, secret []byte) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := (*claims)["user_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid user_id claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	return &JWTClaims{
		UserUUID:  userID,
		ExpiresAt: expiresAt,
	}, nil
}
