package services

import (
	"context"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// AuthRequest carries the identity fields the Mini App host hands to the
// page. The host is trusted; nothing beyond the id is required.
type AuthRequest struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	IsBot     bool   `json:"is_bot"`
}

// AuthResult mirrors the wire shape of POST /api/auth.
type AuthResult struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	IsAdmin bool         `json:"isAdmin"`
}

// AuthService upserts a visitor record on every authentication call and
// classifies administrators by a configured id allow-list.
type AuthService struct {
	store    *repository.Store
	adminIDs map[int64]bool
}

func NewAuthService(store *repository.Store, adminIDs []int64) *AuthService {
	ids := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		ids[id] = true
	}
	return &AuthService{store: store, adminIDs: ids}
}

// Authenticate merges the incoming profile over any stored record and
// refreshes lastSeen, or inserts a fresh record with firstSeen ==
// lastSeen. A store failure is non-fatal to the caller: the visitor
// just proceeds without admin privileges.
func (s *AuthService) Authenticate(ctx context.Context, req AuthRequest) AuthResult {
	users, err := s.store.Users()
	if err != nil {
		zap.L().Error("Auth failed to read users", zap.Error(err))
		return AuthResult{Success: false, IsAdmin: false}
	}

	now := time.Now().UTC()
	var user models.User

	idx := -1
	for i, u := range users {
		if u.ID == req.ID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		user = users[idx]
		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Username = req.Username
		user.IsBot = req.IsBot
		user.LastSeen = now
		users[idx] = user
	} else {
		user = models.User{
			ID:        req.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			IsBot:     req.IsBot,
			FirstSeen: now,
			LastSeen:  now,
		}
		users = append(users, user)
	}

	if err := s.store.SaveUsers(users); err != nil {
		zap.L().Error("Auth failed to persist users", zap.Error(err))
		return AuthResult{Success: false, IsAdmin: false}
	}

	return AuthResult{
		Success: true,
		User:    &user,
		IsAdmin: s.adminIDs[req.ID],
	}
}

// IsAdmin reports allow-list membership without touching the store.
func (s *AuthService) IsAdmin(userID int64) bool {
	return s.adminIDs[userID]
}
