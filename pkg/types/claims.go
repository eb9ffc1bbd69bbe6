package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carried on every authenticated request.
type Claims struct {
	UserID uint   `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
