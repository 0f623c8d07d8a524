// Package auth contiene los casos de uso de sesión: login, validación del token, logout y
// cambio de contraseña.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/account"
	"github.com/seifmegahed/daftar/internal/domain/entity"
	"github.com/seifmegahed/daftar/internal/domain/repository"
	"github.com/seifmegahed/daftar/pkg/jwt"
	"github.com/seifmegahed/daftar/pkg/logger"
	"github.com/seifmegahed/daftar/pkg/textutil"
)

// Config parámetros de emisión de tokens y sesiones.
type Config struct {
	Secret     string
	Issuer     string
	SessionTTL time.Duration
	BcryptCost int // 0 = bcrypt.DefaultCost
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, cfg Config, log *logger.Logger) *AuthUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * 24 * time.Hour
	}
	return &AuthUseCase{users: users, sessions: sessions, cfg: cfg, log: log, now: time.Now}
}

// HashPassword hashea con bcrypt al costo indicado (0 = DefaultCost).
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// newSessionToken token aleatorio de 32 bytes en hex.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token de sesión: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Login verifica usuario/contraseña, crea una sesión con expiración fija y firma el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}

	sessionID, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.cfg.SessionTTL),
		CreatedAt: now,
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, session.ID, user.Role, uc.cfg.Issuer, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("inicio de sesión")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      *toUserResponse(user),
	}, nil
}

// Authenticate valida el token y que la sesión siga vigente para un usuario activo.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*dto.Principal, error) {
	claims, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(uc.now()) {
		return nil, domain.ErrSessionExpired
	}
	if session.UserID != claims.UserID {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrSessionExpired
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	return &dto.Principal{
		UserID:    user.ID,
		SessionID: session.ID,
		Username:  user.Username,
		Name:      user.Name,
		Initials:  textutil.Initials(user.Name),
		Role:      user.Role,
	}, nil
}

// Logout elimina la sesión. Idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// ChangePassword verifica la contraseña actual y valida la nueva antes de rehashear.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, p dto.Principal, in dto.ChangePasswordRequest) error {
	user, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	if !account.ValidPassword(in.NewPassword) {
		return domain.ErrWeakPassword
	}
	hash, err := HashPassword(in.NewPassword, uc.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, user.ID, hash)
}

// PurgeExpired elimina las sesiones vencidas.
func (uc *AuthUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	defer uc.log.Timer("sessions.purge")()
	return uc.sessions.DeleteExpired(ctx, uc.now().UTC())
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Initials:  textutil.Initials(u.Name),
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
