package handler

import (
	"net/http"
	"time"

	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/log"
)

type AccessRequest struct {
	Code string `json:"code"`
}

// Access troca um código de acesso por um token de sessão, também gravado em cookie http-only
func Access(service authenticating.Authenticator, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := service.Login(r.Context(), req.Code)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Acesso recusado")
			handleAuthError(w, err, "Erro interno ao validar código de acesso")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, session)
	}
}

// Logout remove o cookie de sessão
func Logout(cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
