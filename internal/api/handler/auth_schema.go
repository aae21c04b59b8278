package handler

import (
	"time"

	"github.com/core-platform/launchpad/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginUserResponse is the profile returned on login; assignedApps holds the
// slugs of active apps captured in the token.
type loginUserResponse struct {
	ID           uint     `json:"id"`
	Username     string   `json:"username"`
	GlobalRole   string   `json:"globalRole"`
	AssignedApps []string `json:"assignedApps"`
}

type loginResponse struct {
	User loginUserResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
}

// appResponse is the transport shape of an app. IconKey is the stored icon
// normalised through the allow-list (legacy codes translated); Icon is the
// raw stored value.
type appResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Type         string    `json:"type"`
	InternalPath *string   `json:"internalPath"`
	ExternalURL  *string   `json:"externalUrl"`
	Icon         *string   `json:"icon"`
	IconKey      *string   `json:"iconKey"`
	Version      string    `json:"version"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toAppResponse(a domain.App) appResponse {
	resp := appResponse{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		Type:         string(a.Type),
		InternalPath: a.InternalPath,
		ExternalURL:  a.ExternalURL,
		Icon:         a.Icon,
		Version:      a.Version,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
	}
	if a.Icon != nil {
		if key := domain.NormalizeIconKey(*a.Icon); key != "" {
			resp.IconKey = &key
		}
	}
	return resp
}

func toAppResponses(apps []domain.App) []appResponse {
	out := make([]appResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toAppResponse(a))
	}
	return out
}

// meUserResponse is the live profile served by GET /api/me: apps are
// re-fetched and filtered to active, not read from the token snapshot.
type meUserResponse struct {
	ID         uint          `json:"id"`
	Username   string        `json:"username"`
	GlobalRole string        `json:"globalRole"`
	IsActive   bool          `json:"isActive"`
	Apps       []appResponse `json:"apps"`
}

type meResponse struct {
	User meUserResponse `json:"user"`
}
