package handler

import (
	"time"

	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

type createUserRequest struct {
	Username   string `json:"username"   validate:"required"`
	Password   string `json:"password"   validate:"required,min=8"`
	GlobalRole string `json:"globalRole" validate:"omitempty,oneof=admin user"`
	IsActive   *bool  `json:"isActive"`
	AppIDs     []uint `json:"appIds"`
}

// updateUserRequest patches a user. AppIDs is a pointer so "omitted" and
// "replace with empty set" stay distinguishable.
type updateUserRequest struct {
	GlobalRole *string `json:"globalRole" validate:"omitempty,oneof=admin user"`
	IsActive   *bool   `json:"isActive"`
	AppIDs     *[]uint `json:"appIds"`
}

type setPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type userResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	GlobalRole string `json:"globalRole"`
	IsActive   bool   `json:"isActive"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		GlobalRole: string(u.Role),
		IsActive:   u.IsActive,
	}
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type userSummaryResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	GlobalRole     string    `json:"globalRole"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	AppCount       int       `json:"appCount"`
	AssignedAppIDs []uint    `json:"assignedAppIds"`
}

type listUsersResponse struct {
	Users []userSummaryResponse `json:"users"`
}

func toUserSummaryResponse(s ports.UserSummary) userSummaryResponse {
	return userSummaryResponse{
		ID:             s.User.ID,
		Username:       s.User.Username,
		GlobalRole:     string(s.User.Role),
		IsActive:       s.User.IsActive,
		CreatedAt:      s.User.CreatedAt,
		AppCount:       s.AppCount,
		AssignedAppIDs: s.AssignedAppIDs,
	}
}
