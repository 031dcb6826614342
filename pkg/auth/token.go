// Package auth verifies the bearer tokens issued by the identity provider
// and limits the request rate per caller.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hivebudget/backend/pkg/models"
)

// Claims are the claims HiveBudget reads from identity tokens.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Verifier verifies HS256 signed identity tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier returns a Verifier for tokens signed with the secret. If
// issuer is not empty, tokens must carry it as "iss" claim.
func NewVerifier(secret, issuer string) Verifier {
	return Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses the token and validates its signature and claims.
func (v Verifier) Verify(token string) (Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}

	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", models.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: the token has no subject", models.ErrUnauthorized)
	}

	return claims, nil
}
