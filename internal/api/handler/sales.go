package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/acis05/Pbiacis/internal/usecases/importing"
	"github.com/acis05/Pbiacis/internal/usecases/insighting"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/log"
	"github.com/acis05/Pbiacis/pkg/middleware"
)

// UploadSales recebe o relatório exportado (campo multipart "file") e importa para o tenant da sessão.
// clear_before vem ligado por padrão: a importação substitui as vendas existentes.
func UploadSales(service importing.Importer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) || strings.Contains(err.Error(), "request body too large") {
				apiErrors.WriteError(w, apiErrors.ErrUploadTooLarge, "Arquivo excede o tamanho máximo permitido", map[string]any{
					"max_bytes": maxBytes,
				})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição multipart inválida", nil)
			return
		}

		clearBefore := true
		if value := r.FormValue("clear_before"); value != "" {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "clear_before deve ser 1 ou 0", nil)
				return
			}
			clearBefore = parsed
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo é obrigatório no campo file", nil)
			return
		}
		defer file.Close()

		result, err := service.Import(r.Context(), importing.ImportRequest{
			Tenant:      claims.Tenant,
			FileName:    header.Filename,
			Content:     file,
			ClearBefore: clearBefore,
		})
		if err != nil {
			logger.WithError(err).WithField("file_name", header.Filename).Error("Erro ao importar vendas")
			handleImportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func handleImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importing.ErrNoRecords):
		apiErrors.WriteError(w, apiErrors.ErrEmptyImport, "Nenhuma linha de venda encontrada no arquivo", nil)
	case errors.Is(err, importing.ErrUnreadableDocument):
		apiErrors.WriteError(w, apiErrors.ErrUnreadableInput, "Não foi possível ler o arquivo enviado", nil)
	case errors.Is(err, importing.ErrMissingTenant):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Sessão sem tenant", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar vendas", nil)
	}
}

// ListSales retorna as vendas do tenant da sessão, filtradas por período
func ListSales(service insighting.Insighter) http.HandlerFunc {
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

		records, err := service.GetSales(r.Context(), claims.Tenant, filters)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}
