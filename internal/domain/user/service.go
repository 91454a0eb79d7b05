// internal/domain/user/service.go
package user

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles admin authentication
type Service struct {
	db          *gorm.DB
	config      *config.Config
	jwtManager  *auth.JWTManager
	passwordMgr *auth.PasswordManager
	log         *logrus.Logger
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		jwtManager:  auth.NewJWTManager(cfg),
		passwordMgr: auth.NewPasswordManager(cfg),
		log:         log,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token the admin panel holds on to. The
// token is opaque to the client; only a 401/403 on a later call invalidates
// it.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and issues a bearer token.
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	var admin AdminUser
	err := s.db.Where("username = ?", req.Username).First(&admin).Error
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if err := s.passwordMgr.VerifyPassword(req.Password, admin.Password); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	token, err := s.jwtManager.GenerateToken(admin.Username, admin.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	admin.LastLoginAt = &now
	if err := s.db.Save(&admin).Error; err != nil {
		s.log.WithError(err).Warn("Failed to record admin login time")
	}

	return &LoginResponse{Token: token}, nil
}

// EnsureSeedAdmin creates the configured admin account if it does not
// exist yet. Without ADMIN_PASSWORD no account is created and the admin
// panel stays locked out.
func (s *Service) EnsureSeedAdmin() error {
	if s.config.Admin.Password == "" {
		s.log.Warn("ADMIN_PASSWORD not set, skipping admin account seeding")
		return nil
	}

	var count int64
	if err := s.db.Model(&AdminUser{}).Where("username = ?", s.config.Admin.Username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := s.passwordMgr.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := AdminUser{
		Username: s.config.Admin.Username,
		Password: hash,
		IsAdmin:  true,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	s.log.WithField("username", admin.Username).Info("Seeded admin account")
	return nil
}
