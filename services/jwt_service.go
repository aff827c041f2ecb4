package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/dhruvahir777/billoza-backend/models"
)

// TokenManager issues and validates HS256 access tokens.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expireMinutes int) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expireMinutes) * time.Minute,
	}
}

// GenerateToken creates a token carrying the user's email, store id and
// tenant code.
func (tm *TokenManager) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":            user.Email,
		"user_id":        user.ID.Hex(),
		"custom_user_id": user.UserID,
		"exp":            time.Now().Add(tm.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ParseToken validates a token string and returns its claims.
func (tm *TokenManager) ParseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
