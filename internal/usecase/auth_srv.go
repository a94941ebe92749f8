package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMeta carries request attributes recorded on the session row
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*response.MeResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an identity, then a profile row with role "user".
// The two writes are not transactional: a failed profile insert leaves
// the identity behind, and later profile lookups for it return not found.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email is not taken
	existing, err := s.repo.Identity.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create identity
	now := time.Now()
	identity := &entity.Identity{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.Identity.Create(ctx, identity); err != nil {
		s.log.Error("Failed to create identity", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Create profile with role "user"
	profile := &entity.Profile{
		UserID:    identity.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Role:      entity.RoleUser,
		CreatedAt: now,
	}

	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		// The identity is NOT rolled back; log its id so the orphan
		// can be found later.
		s.log.Error("Failed to create profile, identity orphaned",
			zap.Error(err),
			zap.String("user_id", identity.ID.String()),
			zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create profile")
	}

	s.log.Info("User registered",
		zap.String("user_id", identity.ID.String()),
		zap.String("email", identity.Email))

	// No session is issued on registration
	return &response.RegisterResponse{
		UserID:    identity.ID.String(),
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	identity, err := s.verifyCredentials(ctx, req)
	if err != nil {
		return nil, err
	}

	session, err := s.createSession(ctx, identity.ID, meta)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", identity.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", identity.ID.String()),
		zap.String("email", identity.Email))

	return response.AuthToResponse(identity, "", session), nil
}

// AdminLogin verifies credentials and additionally requires an admin
// profile before any session is issued.
func (s *authService) AdminLogin(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	identity, err := s.verifyCredentials(ctx, req)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, identity.ID)
	if err != nil {
		s.log.Error("Failed to check profile", zap.Error(err), zap.String("user_id", identity.ID.String()))
		return nil, fmt.Errorf("failed to check profile")
	}
	if profile == nil || profile.Role != entity.RoleAdmin {
		s.log.Warn("Non-admin login attempt on admin panel",
			zap.String("user_id", identity.ID.String()))
		return nil, fmt.Errorf("admin access required")
	}

	session, err := s.createSession(ctx, identity.ID, meta)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", identity.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin logged in",
		zap.String("user_id", identity.ID.String()),
		zap.String("email", identity.Email))

	return response.AuthToResponse(identity, profile.Role, session), nil
}

// Logout revokes the session. Callers treat failures as non-fatal, the
// cookie is cleared either way.
func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format on logout", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Warn("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// CurrentUser merges identity fields with the profile sub-object. An
// identity whose registration lost its profile write resolves to
// "profile not found" here.
func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response.MeResponse, error) {
	identity, err := s.repo.Identity.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find identity", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get user")
	}
	if identity == nil {
		return nil, fmt.Errorf("user not found")
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found")
	}

	me := response.MeToResponse(identity, profile)
	return &me, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) verifyCredentials(ctx context.Context, req *request.LoginRequest) (*entity.Identity, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	identity, err := s.repo.Identity.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find identity by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if identity == nil {
		s.log.Warn("Unknown email on login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, identity.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", identity.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	return identity, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, meta SessionMeta) (*entity.Session, error) {
	ttl := time.Duration(s.config.Session.TTLHours) * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(ttl),
	}

	if meta.UserAgent != "" {
		session.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		session.IPAddress = &meta.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
