package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL matches the 7-day expiry the web client expects.
const TokenTTL = 7 * 24 * time.Hour

// NewToken mints an HS256 bearer token carrying the caller's id, email and
// role claims.
func NewToken(caller Caller, secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", caller.UserID),
		"uid":   caller.UserID,
		"email": caller.Email,
		"role":  string(caller.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and rebuilds the Caller from
// the claims.
func ParseToken(tokenString, secret string) (Caller, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Caller{}, err
	}
	if !token.Valid {
		return Caller{}, errors.New("invalid token")
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return Caller{}, errors.New("token missing user id claim")
	}
	roleStr, _ := claims["role"].(string)
	role := Role(roleStr)
	if !role.Valid() {
		return Caller{}, errors.New("token missing role claim")
	}
	email, _ := claims["email"].(string)

	return Caller{UserID: uint(uid), Email: email, Role: role}, nil
}
