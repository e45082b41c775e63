package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/service"
)

// DirectoryHandler serves directory browsing and profile lookups.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// HandleList returns one page of browsable profiles.
// GET /api/users?q=...&availability=...&page=N
// Response: {"users":[...],"total":N,"page":N,"totalPages":N}
func (h *DirectoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var viewerID int64
	if viewer := UserFromContext(r.Context()); viewer != nil {
		viewerID = viewer.ID
	}

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid page number.")
			return
		}
		page = parsed
	}

	result := h.directory.Browse(viewerID,
		r.URL.Query().Get("q"),
		r.URL.Query().Get("availability"),
		page,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"users":      toUserDTOs(result.Users),
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
	})
}

// HandleGet returns a single profile, honoring visibility rules.
// GET /api/users/{id}
// Response: {"user": {...}} or 404
func (h *DirectoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	user, err := h.directory.UserByID(UserFromContext(r.Context()), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleAnnouncements returns all platform announcements.
// GET /api/announcements
// Response: {"announcements":[...]}
func (h *DirectoryHandler) HandleAnnouncements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"announcements": toAnnouncementDTOs(h.directory.Announcements()),
	})
}
