package handler

import (
	"errors"
	"net/http"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/log"
	"github.com/acis05/Pbiacis/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// parseFilters lê start_date e end_date (YYYY-MM-DD) da query string
func parseFilters(r *http.Request) (domain.InsightFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return domain.InsightFilters{}, errors.New("start_date deve usar o formato YYYY-MM-DD")
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return domain.InsightFilters{}, errors.New("end_date deve usar o formato YYYY-MM-DD")
	}

	return domain.InsightFilters{StartDate: startDate, EndDate: endDate}, nil
}

// handleAuthError usa o código carregado pelo AuthError quando existir
func handleAuthError(w http.ResponseWriter, err error, fallback string) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		message := authErr.Details
		if message == "" {
			message = authErr.Err.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
