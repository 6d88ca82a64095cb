package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acis05/Pbiacis/infrastructure/repository/mocks"
	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/internal/usecases/authenticating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthenticator(t *testing.T, adminKeyHash string) (authenticating.Authenticator, *mocks.MockAccessCodeRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccessCodeRepository(ctrl)
	cfg := &config.Config{
		App:  config.App{DefaultTenant: "acis"},
		Auth: config.Auth{Secret: "segredo", TokenTTL: time.Hour, AdminKeyHash: adminKeyHash},
	}

	return authenticating.NewService(repo, cfg), repo
}

func issueToken(t *testing.T, auth authenticating.Authenticator, repo *mocks.MockAccessCodeRepository) string {
	t.Helper()

	repo.EXPECT().
		GetActive(gomock.Any(), "ACIS-001", gomock.Any()).
		Return(&domain.AccessCode{Code: "ACIS-001", Tenant: "acis", CustomerName: "PT Acis", Active: true}, nil)

	session, err := auth.Login(context.Background(), "ACIS-001")
	require.NoError(t, err)
	return session.Token
}

func tenantEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(claims.Tenant))
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth, repo := newAuthenticator(t, "")
	token := issueToken(t, auth, repo)
	handler := AuthMiddleware(auth, "access_token")(tenantEcho())

	t.Run("Bearer token válido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "acis", rec.Body.String())
	})

	t.Run("Token no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "acis", rec.Body.String())
	})

	t.Run("Sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "AUTH_006")
	})

	t.Run("Token adulterado", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rotas públicas passam sem token", func(t *testing.T) {
		for _, path := range []string{"/healthcheck", "/v1/access", "/v1/admin/access-codes", "/v1/cron/status"} {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNoContent, rec.Code, path)
		}
	})

	t.Run("Caminhos parecidos com rotas públicas exigem token", func(t *testing.T) {
		for _, path := range []string{"/v1/accessXYZ", "/v1/access/extra", "/healthcheckz"} {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})
}

func TestAdminOnly(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("chave-admin"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, _ := newAuthenticator(t, string(hash))
	handler := AdminOnly(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name           string
		key            string
		expectedStatus int
	}{
		{name: "Chave correta", key: "chave-admin", expectedStatus: http.StatusOK},
		{name: "Chave errada", key: "outra", expectedStatus: http.StatusForbidden},
		{name: "Sem chave", key: "", expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/access-codes", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	t.Run("Administração desabilitada", func(t *testing.T) {
		disabled, _ := newAuthenticator(t, "")
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/access-codes", nil)
		req.Header.Set(AdminKeyHeader, "chave-admin")
		rec := httptest.NewRecorder()

		AdminOnly(disabled)(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
