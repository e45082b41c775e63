package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/store"
)

// ProfileHandler serves edits to the logged-in user's own profile.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// HandleUpdate merges a partial profile edit into the session user and the
// directory. Absent fields are left untouched; present fields replace the
// stored value entirely, skill lists included.
// PUT /api/profile
// Request:  {"name":"...","location":"...","skillsOffered":[...],...}
// Response: {"user": {...}}
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	viewer := UserFromContext(r.Context())
	if viewer == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	// The store holds at most one session; an authenticated caller that is
	// not the session user cannot edit it.
	snap := h.store.Snapshot()
	if snap.Session == nil || snap.Session.ID != viewer.ID {
		writeError(w, http.StatusConflict, "No active session for this user.")
		return
	}

	var req struct {
		Name          *string   `json:"name"`
		Location      *string   `json:"location"`
		Photo         *string   `json:"photo"`
		SkillsOffered *[]string `json:"skillsOffered"`
		SkillsWanted  *[]string `json:"skillsWanted"`
		Availability  *string   `json:"availability"`
		Visibility    *string   `json:"profileVisibility"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Visibility != nil &&
		*req.Visibility != domain.VisibilityPublic && *req.Visibility != domain.VisibilityPrivate {
		writeError(w, http.StatusUnprocessableEntity, "Visibility must be public or private.")
		return
	}

	update := domain.ProfileUpdate{
		Name:          req.Name,
		Location:      req.Location,
		Photo:         req.Photo,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  req.Availability,
		Visibility:    req.Visibility,
	}
	if err := h.store.UpdateProfile(r.Context(), update); err != nil {
		slog.Error("update profile", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	session := h.store.Snapshot().Session
	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(*session),
	})
}
