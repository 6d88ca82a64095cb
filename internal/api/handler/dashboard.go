package handler

import (
	"net/http"
	"strconv"

	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/insighting"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/log"
	"github.com/acis05/Pbiacis/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida", nil)
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), claims.Tenant, filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

// GetRanking retorna o top N de uma dimensão; limit é opcional
func GetRanking(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida", nil)
			return
		}

		dimension, err := domain.ParseDimension(httprouter.ParamsFromContext(r.Context()).ByName("dimension"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
				"accepted": domain.Dimensions,
			})
			return
		}

		limit := 0
		if value := r.URL.Query().Get("limit"); value != "" {
			limit, err = strconv.Atoi(value)
			if err != nil || limit <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ranking, err := service.GetRanking(r.Context(), claims.Tenant, dimension, filters, limit)
		if err != nil {
			logger.WithError(err).Error("Erro ao montar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, ranking)
	}
}
