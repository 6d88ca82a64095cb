package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/acis05/Pbiacis/internal/api/handler/router"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	authmocks "github.com/acis05/Pbiacis/internal/usecases/authenticating/mocks"
	"github.com/acis05/Pbiacis/internal/usecases/importing"
	importmocks "github.com/acis05/Pbiacis/internal/usecases/importing/mocks"
	insightmocks "github.com/acis05/Pbiacis/internal/usecases/insighting/mocks"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCookie = "access_token"

var sessionClaims = &domain.Claims{AccessCode: "ACIS-001", Tenant: "acis", CustomerName: "PT Acis"}

// withSession simula o AuthMiddleware injetando a sessão no contexto
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyAccess, sessionClaims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func uploadRequest(t *testing.T, fileName, content string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAccess(t *testing.T) {
	t.Run("Código válido gera cookie e token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		expiresAt := time.Date(2026, 1, 5, 20, 0, 0, 0, time.UTC)

		auth.EXPECT().Login(gomock.Any(), "DEMO-1234").Return(&authenticating.Session{
			Token:     "jwt-token",
			ExpiresAt: expiresAt,
			Tenant:    "acis",
		}, nil)

		rec := serve(Access(auth, testCookie), httptest.NewRequest(http.MethodPost, "/v1/access", strings.NewReader(`{"code":"DEMO-1234"}`)))

		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, testCookie, cookies[0].Name)
		assert.Equal(t, "jwt-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var session authenticating.Session
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
		assert.Equal(t, "jwt-token", session.Token)
	})

	t.Run("Código inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().Login(gomock.Any(), "ERRADO").Return(nil, authenticating.NewAuthError(
			authenticating.ErrInvalidAccessCode, apiErrors.ErrInvalidAccessCode, "Kode akses salah atau sudah tidak aktif"))

		rec := serve(Access(auth, testCookie), httptest.NewRequest(http.MethodPost, "/v1/access", strings.NewReader(`{"code":"ERRADO"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidAccessCode, decodeError(t, rec).Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := serve(Access(auth, testCookie), httptest.NewRequest(http.MethodPost, "/v1/access", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	rec := serve(Logout(testCookie), httptest.NewRequest(http.MethodDelete, "/v1/access", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestUploadSales(t *testing.T) {
	const maxBytes = 1 << 20

	t.Run("Importa com substituição por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req importing.ImportRequest) (*domain.ImportResult, error) {
				assert.Equal(t, "acis", req.Tenant)
				assert.Equal(t, "penjualan.xls", req.FileName)
				assert.True(t, req.ClearBefore)

				content, err := io.ReadAll(req.Content)
				require.NoError(t, err)
				assert.Equal(t, "<table></table>", string(content))

				return &domain.ImportResult{FileName: req.FileName, Tenant: req.Tenant, Imported: 12, Replaced: true}, nil
			})

		rec := serve(withSession(UploadSales(importer, maxBytes)), uploadRequest(t, "penjualan.xls", "<table></table>", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ImportResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 12, result.Imported)
		assert.True(t, result.Replaced)
	})

	t.Run("clear_before=0 acrescenta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		importer.EXPECT().
			Import(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req importing.ImportRequest) (*domain.ImportResult, error) {
				assert.False(t, req.ClearBefore)
				return &domain.ImportResult{}, nil
			})

		rec := serve(withSession(UploadSales(importer, maxBytes)),
			uploadRequest(t, "penjualan.xls", "<table></table>", map[string]string{"clear_before": "0"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear_before inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		rec := serve(withSession(UploadSales(importer, maxBytes)),
			uploadRequest(t, "penjualan.xls", "<table></table>", map[string]string{"clear_before": "talvez"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Arquivo ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		rec := serve(withSession(UploadSales(importer, maxBytes)), uploadRequest(t, "", "", map[string]string{"clear_before": "1"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("Arquivo acima do limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		rec := serve(withSession(UploadSales(importer, 64)), uploadRequest(t, "grande.xls", strings.Repeat("x", 4096), nil))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, apiErrors.ErrUploadTooLarge, decodeError(t, rec).Code)
	})

	t.Run("Arquivo sem vendas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		importer.EXPECT().Import(gomock.Any(), gomock.Any()).Return(nil, importing.ErrNoRecords)

		rec := serve(withSession(UploadSales(importer, maxBytes)), uploadRequest(t, "vazio.xls", "", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrEmptyImport, decodeError(t, rec).Code)
	})

	t.Run("Sem sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		importer := importmocks.NewMockImporter(ctrl)

		rec := serve(UploadSales(importer, maxBytes), uploadRequest(t, "penjualan.xls", "", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListSales(t *testing.T) {
	t.Run("Repassa os filtros de data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockInsighter(ctrl)

		insighter.EXPECT().
			GetSales(gomock.Any(), "acis", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filters domain.InsightFilters) ([]domain.SalesRecord, error) {
				require.NotNil(t, filters.StartDate)
				assert.Equal(t, "2026-01-01", filters.StartDate.Format(time.DateOnly))
				assert.Nil(t, filters.EndDate)
				return []domain.SalesRecord{{InvoiceDate: "2026-01-02", Customer: "PT B"}}, nil
			})

		rec := serve(withSession(ListSales(insighter)), httptest.NewRequest(http.MethodGet, "/v1/sales?start_date=2026-01-01", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var records []domain.SalesRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "PT B", records[0].Customer)
	})

	t.Run("Data malformada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockInsighter(ctrl)

		rec := serve(withSession(ListSales(insighter)), httptest.NewRequest(http.MethodGet, "/v1/sales?end_date=02/01/2026", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := insightmocks.NewMockInsighter(ctrl)

	insighter.EXPECT().
		GetDashboard(gomock.Any(), "acis", domain.InsightFilters{}).
		Return(&domain.Dashboard{TotalSales: 150000, TopCustomer: "PT B", Top10Customer: []domain.RankedItem{}}, nil)

	rec := serve(withSession(GetDashboard(insighter)), httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 150000.0, body["total_sales"])
	assert.Equal(t, "PT B", body["top_customer"])
	assert.Nil(t, body["total_month_diff_pct"])
}

func TestGetRanking(t *testing.T) {
	routes := func(insighter *insightmocks.MockInsighter) http.Handler {
		return withSession(router.New(router.WithRoutes(Insights(insighter)...)))
	}

	t.Run("Dimensão e limite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockInsighter(ctrl)

		insighter.EXPECT().
			GetRanking(gomock.Any(), "acis", domain.DimensionCity, gomock.Any(), 3).
			Return([]domain.RankedItem{{Label: "Surabaya", Amount: 10}}, nil)

		rec := serve(routes(insighter), httptest.NewRequest(http.MethodGet, "/v1/rankings/city?limit=3", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"label":"Surabaya","amount":10}]`, rec.Body.String())
	})

	t.Run("Dimensão inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockInsighter(ctrl)

		rec := serve(routes(insighter), httptest.NewRequest(http.MethodGet, "/v1/rankings/regiao", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Limite inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		insighter := insightmocks.NewMockInsighter(ctrl)

		rec := serve(routes(insighter), httptest.NewRequest(http.MethodGet, "/v1/rankings/item?limit=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccessCodes(t *testing.T) {
	t.Run("Lista com chave válida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().VerifyAdminKey("chave").Return(nil)
		auth.EXPECT().ListCodes(gomock.Any()).Return([]domain.AccessCode{{Code: "DEMO-1234", Tenant: "acis", Active: true}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/access-codes", nil)
		req.Header.Set(middleware.AdminKeyHeader, "chave")

		rec := serve(router.New(router.WithRoutes(AccessCodes(auth)...)), req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "DEMO-1234")
	})

	t.Run("Chave inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().VerifyAdminKey("errada").Return(authenticating.NewAuthError(
			authenticating.ErrInvalidAdminKey, apiErrors.ErrInsufficientPrivilege, ""))

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/access-codes", strings.NewReader(`{}`))
		req.Header.Set(middleware.AdminKeyHeader, "errada")

		rec := serve(router.New(router.WithRoutes(AccessCodes(auth)...)), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Salva código", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().VerifyAdminKey("chave").Return(nil)
		auth.EXPECT().
			SaveCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input authenticating.SaveCodeInput) (*domain.AccessCode, error) {
				assert.Equal(t, "PT Baru", input.CustomerName)
				assert.Equal(t, 30, input.ValidDays)
				return &domain.AccessCode{Code: "K7M2P9QX4R", CustomerName: input.CustomerName, Active: true}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/access-codes", strings.NewReader(`{"customer_name":"PT Baru","valid_days":30}`))
		req.Header.Set(middleware.AdminKeyHeader, "chave")

		rec := serve(router.New(router.WithRoutes(AccessCodes(auth)...)), req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "K7M2P9QX4R")
	})

	t.Run("Erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		auth.EXPECT().VerifyAdminKey("chave").Return(nil)
		auth.EXPECT().SaveCode(gomock.Any(), gomock.Any()).Return(nil, authenticating.NewAuthError(
			authenticating.ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório"))

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/access-codes", strings.NewReader(`{}`))
		req.Header.Set(middleware.AdminKeyHeader, "chave")

		rec := serve(router.New(router.WithRoutes(AccessCodes(auth)...)), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Nome do cliente é obrigatório", decodeError(t, rec).Message)
	})
}

type fakeCronJob struct {
	started bool
	running bool
}

func (f *fakeCronJob) TriggerManualSync(context.Context) bool {
	if f.running {
		return false
	}
	f.started = true
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running}
}

func TestCronJobs(t *testing.T) {
	newRoutes := func(t *testing.T, job *fakeCronJob) http.Handler {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().VerifyAdminKey(gomock.Any()).Return(nil).AnyTimes()

		return router.New(router.WithRoutes(CronJobs(CronJobServices{"inbox-import": job}, auth)...))
	}

	t.Run("Dispara job", func(t *testing.T) {
		job := &fakeCronJob{}

		rec := serve(newRoutes(t, job), httptest.NewRequest(http.MethodPost, "/v1/cron/run/inbox-import", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, job.started)
	})

	t.Run("Job em execução", func(t *testing.T) {
		job := &fakeCronJob{running: true}

		rec := serve(newRoutes(t, job), httptest.NewRequest(http.MethodPost, "/v1/cron/run/inbox-import", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rec := serve(newRoutes(t, &fakeCronJob{}), httptest.NewRequest(http.MethodPost, "/v1/cron/run/meta", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status", func(t *testing.T) {
		rec := serve(newRoutes(t, &fakeCronJob{}), httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"inbox-import":{"sync_running":false}}`, rec.Body.String())
	})
}

func TestRouter_NotFound(t *testing.T) {
	rec := serve(router.New(router.WithRoutes(Healthcheck()...)), httptest.NewRequest(http.MethodGet, "/v1/inexistente", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}
