package middleware

import (
	"errors"
	"net/http"

	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminOnly libera a rota apenas com a chave de administração válida
func AdminOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := authService.VerifyAdminKey(r.Header.Get(AdminKeyHeader))
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			if errors.Is(err, authenticating.ErrAdminDisabled) {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Administração desabilitada", nil)
				return
			}

			logrus.Warningf("Chave de administração recusada para %s %s", r.Method, r.URL.Path)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}
