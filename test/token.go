package test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Authorization returns the Authorization header for a token for the
// subject, signed with the AUTH_JWT_SECRET from the environment.
func Authorization(t *testing.T, subject, email string) map[string]string {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	if issuer := os.Getenv("AUTH_ISSUER"); issuer != "" {
		claims["iss"] = issuer
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("AUTH_JWT_SECRET")))
	require.Nil(t, err, "token could not be signed")

	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}
