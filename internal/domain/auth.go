package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de sessão do operador.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
