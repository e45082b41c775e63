package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/store"
)

// Stats are the platform counts shown on the admin dashboard.
type Stats struct {
	ActiveUsers      int
	BannedUsers      int
	PublicProfiles   int
	PendingRequests  int
	AcceptedRequests int
	RejectedRequests int
}

// AdminService performs moderation operations. Every method checks the
// caller's role; the store deliberately carries no admin guard of its own.
type AdminService struct {
	store *store.Store
}

// NewAdminService creates a new AdminService.
func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// Stats computes the dashboard counts.
func (s *AdminService) Stats(viewer *domain.User) (Stats, error) {
	if err := requireAdmin(viewer); err != nil {
		return Stats{}, err
	}

	snap := s.store.Snapshot()
	var stats Stats
	for _, u := range snap.Users {
		if u.Banned {
			stats.BannedUsers++
		} else {
			stats.ActiveUsers++
		}
		if u.Visibility == domain.VisibilityPublic {
			stats.PublicProfiles++
		}
	}
	for _, req := range snap.Requests {
		switch req.Status {
		case domain.StatusPending:
			stats.PendingRequests++
		case domain.StatusAccepted:
			stats.AcceptedRequests++
		case domain.StatusRejected:
			stats.RejectedRequests++
		}
	}
	return stats, nil
}

// Ban bans a user. Admin accounts cannot be banned.
func (s *AdminService) Ban(ctx context.Context, viewer *domain.User, userID int64) error {
	if err := requireAdmin(viewer); err != nil {
		return err
	}

	target, found := s.store.Snapshot().UserByID(userID)
	if !found {
		return domain.ErrNotFound
	}
	if target.Role == domain.RoleAdmin {
		return fmt.Errorf("%w: cannot ban an admin", domain.ErrInvalidInput)
	}

	return s.store.BanUser(ctx, userID)
}

// Unban lifts a ban.
func (s *AdminService) Unban(ctx context.Context, viewer *domain.User, userID int64) error {
	if err := requireAdmin(viewer); err != nil {
		return err
	}
	if _, found := s.store.Snapshot().UserByID(userID); !found {
		return domain.ErrNotFound
	}
	return s.store.UnbanUser(ctx, userID)
}

// Announce broadcasts a platform-wide message.
func (s *AdminService) Announce(ctx context.Context, viewer *domain.User, message string) (domain.Announcement, error) {
	if err := requireAdmin(viewer); err != nil {
		return domain.Announcement{}, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Announcement{}, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	return s.store.Broadcast(ctx, message)
}

func requireAdmin(viewer *domain.User) error {
	if viewer == nil || viewer.Role != domain.RoleAdmin {
		return domain.ErrUnauthorized
	}
	return nil
}
