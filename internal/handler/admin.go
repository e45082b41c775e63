package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/service"
)

// AdminHandler serves the moderation endpoints. All routes are mounted
// behind RequireAdmin; the service re-checks the role anyway.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// HandleStats returns the dashboard counts.
// GET /api/admin/stats
// Response: {"stats": {...}}
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(UserFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusForbidden, "Admin access required.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats": toStatsDTO(stats),
	})
}

// HandleBan bans a user.
// POST /api/admin/users/{id}/ban
func (h *AdminHandler) HandleBan(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.admin.Ban)
}

// HandleUnban lifts a ban.
// POST /api/admin/users/{id}/unban
func (h *AdminHandler) HandleUnban(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.admin.Unban)
}

func (h *AdminHandler) moderate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, viewer *domain.User, userID int64) error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	if err := op(r.Context(), UserFromContext(r.Context()), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "Admin access required.")
		default:
			slog.Error("moderate user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAnnounce broadcasts a platform announcement.
// POST /api/admin/announcements
// Request:  {"message":"..."}
// Response: {"announcement": {...}}
func (h *AdminHandler) HandleAnnounce(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ann, err := h.admin.Announce(r.Context(), UserFromContext(r.Context()), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "Admin access required.")
		default:
			slog.Error("announce", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"announcement": AnnouncementDTO{
			ID:        ann.ID,
			Message:   ann.Message,
			CreatedAt: ann.CreatedAt.Format(time.RFC3339),
		},
	})
}
