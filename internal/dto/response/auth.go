package response

import (
	"time"

	"storefront/internal/data/entity"
)

type RegisterResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"-"`
	ExpiresAt time.Time       `json:"expires_at"`
}

type ProfileResponse struct {
	Name      string          `json:"name"`
	Phone     *string         `json:"phone,omitempty"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// MeResponse merges identity fields with the profile sub-object
type MeResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"created_at"`
	Profile   ProfileResponse `json:"profile"`
}

// Helper converters

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		Name:      profile.Name,
		Phone:     profile.Phone,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	}
}

func MeToResponse(identity *entity.Identity, profile *entity.Profile) MeResponse {
	return MeResponse{
		ID:        identity.ID.String(),
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
		Profile:   ProfileToResponse(profile),
	}
}

func AuthToResponse(identity *entity.Identity, role entity.UserRole, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID: identity.ID.String(),
		Email:  identity.Email,
		Role:   role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
