package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessCode é uma licença de acesso ao painel de um tenant
type AccessCode struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Tenant       string    `json:"tenant"`
	CustomerName string    `json:"customer_name"`
	Active       bool      `json:"active"`
	ValidFrom    *string   `json:"valid_from"` // Formato YYYY-MM-DD, nulo = sem limite
	ValidTo      *string   `json:"valid_to"`   // Formato YYYY-MM-DD, nulo = sem limite
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims é o conteúdo do token de sessão emitido após o login com código de acesso
type Claims struct {
	AccessCode   string `json:"access_code"`
	Tenant       string `json:"tenant"`
	CustomerName string `json:"customer_name"`
	jwt.RegisteredClaims
}
