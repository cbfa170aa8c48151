package utils

import (
	"errors"
	"time"

	"travelsure/config"

	"github.com/golang-jwt/jwt"
)

const policyTokenScope = "policy:read"

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "travelsure-dev-secret"
	}
	return []byte(secret)
}

// GeneratePolicyToken creates a signed token granting read access to one policy.
// The token expires after the specified duration.
func GeneratePolicyToken(policyNumber, sessionID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   policyNumber,
		"sid":   sessionID,
		"scope": policyTokenScope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractPolicyNumberFromToken returns the policy number a valid policy token grants access to.
func ExtractPolicyNumberFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if scope, _ := claims["scope"].(string); scope != policyTokenScope {
		return "", errors.New("token is not a policy token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
