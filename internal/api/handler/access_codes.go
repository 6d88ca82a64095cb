package handler

import (
	"net/http"

	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/log"
)

func ListAccessCodes(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes, err := service.ListCodes(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar códigos de acesso")
			handleAuthError(w, err, "Erro ao listar códigos de acesso")
			return
		}

		writeJSON(w, http.StatusOK, codes)
	}
}

// SaveAccessCode cria ou atualiza um código; sem code no corpo, um novo é gerado
func SaveAccessCode(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input authenticating.SaveCodeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		code, err := service.SaveCode(r.Context(), input)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao salvar código de acesso")
			handleAuthError(w, err, "Erro ao salvar código de acesso")
			return
		}

		writeJSON(w, http.StatusOK, code)
	}
}
