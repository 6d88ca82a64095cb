package authenticating

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/acis05/Pbiacis/infrastructure/repository"
	"github.com/acis05/Pbiacis/internal/config"
	"github.com/acis05/Pbiacis/internal/domain"
	"github.com/acis05/Pbiacis/pkg/apiErrors"
	"github.com/acis05/Pbiacis/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(ctx context.Context, code string) (*Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	VerifyAdminKey(key string) error
	SaveCode(ctx context.Context, input SaveCodeInput) (*domain.AccessCode, error)
	ListCodes(ctx context.Context) ([]domain.AccessCode, error)
	SeedCodes(ctx context.Context, entries []string) error
}

// Session é o resultado de um login com código de acesso
type Session struct {
	Token        string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Tenant       string    `json:"tenant"`
	CustomerName string    `json:"customer_name"`
}

// SaveCodeInput descreve a criação ou atualização de um código de acesso.
// Code vazio gera um código novo; ValidDays > 0 define a validade a partir de hoje.
type SaveCodeInput struct {
	Code         string  `json:"code"`
	Tenant       string  `json:"tenant"`
	CustomerName string  `json:"customer_name"`
	Active       *bool   `json:"active"`
	ValidFrom    *string `json:"valid_from"`
	ValidTo      *string `json:"valid_to"`
	ValidDays    int     `json:"valid_days"`
}

type Service struct {
	accessCodeRepo repository.AccessCodeRepository
	cfg            *config.Config
	now            func() time.Time
}

func NewService(accessCodeRepo repository.AccessCodeRepository, cfg *config.Config) Authenticator {
	return &Service{
		accessCodeRepo: accessCodeRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *Service) today() string {
	return s.now().Format(time.DateOnly)
}

func (s *Service) Login(ctx context.Context, code string) (*Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Código de acesso é obrigatório")
	}

	accessCode, err := s.accessCodeRepo.GetActive(ctx, code, s.today())
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar código de acesso")
	}

	if accessCode == nil {
		return nil, NewAuthError(ErrInvalidAccessCode, apiErrors.ErrInvalidAccessCode, "Kode akses salah atau sudah tidak aktif")
	}

	expiresAt := s.now().Add(s.cfg.Auth.TokenTTL)
	token, err := generateJWT(accessCode, s.cfg.Auth.Secret, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de acesso")
	}

	logrus.WithFields(logrus.Fields{
		"tenant":   accessCode.Tenant,
		"customer": accessCode.CustomerName,
	}).Info("Acesso liberado")

	return &Session{
		Token:        token,
		ExpiresAt:    expiresAt,
		Tenant:       accessCode.Tenant,
		CustomerName: accessCode.CustomerName,
	}, nil
}

func generateJWT(code *domain.AccessCode, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		AccessCode:   code.Code,
		Tenant:       code.Tenant,
		CustomerName: code.CustomerName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   code.Code,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Tenant == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// VerifyAdminKey compara a chave informada com o hash bcrypt configurado
func (s *Service) VerifyAdminKey(key string) error {
	if s.cfg.Auth.AdminKeyHash == "" {
		return NewAuthError(ErrAdminDisabled, apiErrors.ErrServiceDisabled, "")
	}

	if key == "" {
		return NewAuthError(ErrInvalidAdminKey, apiErrors.ErrInsufficientPrivilege, "Cabeçalho X-Admin-Key ausente")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminKeyHash), []byte(key)); err != nil {
		return NewAuthError(ErrInvalidAdminKey, apiErrors.ErrInsufficientPrivilege, "")
	}

	return nil
}

func (s *Service) SaveCode(ctx context.Context, input SaveCodeInput) (*domain.AccessCode, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	if input.CustomerName == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório")
	}

	code := domain.AccessCode{
		Code:         strings.TrimSpace(input.Code),
		Tenant:       strings.TrimSpace(input.Tenant),
		CustomerName: input.CustomerName,
		Active:       true,
		ValidFrom:    input.ValidFrom,
		ValidTo:      input.ValidTo,
	}

	if code.Tenant == "" {
		code.Tenant = s.cfg.App.DefaultTenant
	}

	if input.Active != nil {
		code.Active = *input.Active
	}

	if code.Code == "" {
		generated, err := utils.GenerateAccessCode()
		if err != nil {
			return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar código de acesso")
		}
		code.Code = generated
	}

	if input.ValidDays > 0 {
		from := s.now()
		to := from.AddDate(0, 0, input.ValidDays)
		if code.ValidFrom == nil {
			fromStr := from.Format(time.DateOnly)
			code.ValidFrom = &fromStr
		}
		toStr := to.Format(time.DateOnly)
		code.ValidTo = &toStr
	}

	for _, date := range []*string{code.ValidFrom, code.ValidTo} {
		if date == nil {
			continue
		}
		if _, err := time.Parse(time.DateOnly, *date); err != nil {
			return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Datas de validade devem usar o formato YYYY-MM-DD")
		}
	}

	saved, err := s.accessCodeRepo.Upsert(ctx, code)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao salvar código de acesso")
	}

	return saved, nil
}

func (s *Service) ListCodes(ctx context.Context) ([]domain.AccessCode, error) {
	codes, err := s.accessCodeRepo.List(ctx)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar códigos de acesso")
	}
	return codes, nil
}

// SeedCodes garante na inicialização os códigos no formato codigo=cliente, sem validade
func (s *Service) SeedCodes(ctx context.Context, entries []string) error {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, customer, found := strings.Cut(entry, "=")
		if !found || strings.TrimSpace(code) == "" {
			return NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "SEED_ACCESS_CODES deve usar codigo=cliente: "+entry)
		}

		if _, err := s.SaveCode(ctx, SaveCodeInput{Code: code, CustomerName: customer}); err != nil {
			return err
		}

		logrus.Infof("Código de acesso %s garantido na inicialização", strings.TrimSpace(code))
	}

	return nil
}
