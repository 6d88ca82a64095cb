package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAccessCode = errors.New("código de acesso inválido ou expirado")
	ErrInvalidToken      = errors.New("token inválido")
	ErrExpiredToken      = errors.New("token expirado")
	ErrInvalidAdminKey   = errors.New("chave de administração inválida")
	ErrAdminDisabled     = errors.New("administração desabilitada: ADMIN_KEY_HASH não configurado")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro está relacionado ao código de acesso ou ao token
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidAccessCode) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// IsAuthorizationError verifica se o erro está relacionado à chave de administração
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidAdminKey) ||
		errors.Is(err, ErrAdminDisabled)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
