package handler

import (
	"errors"
	"log/slog"
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/service"
	"github.com/msomdec/skill-swap/internal/store"
	"github.com/msomdec/skill-swap/internal/view"
)

// SwapHandler serves the swap-request lifecycle.
type SwapHandler struct {
	swaps *service.SwapService
	store *store.Store
}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler(swaps *service.SwapService, st *store.Store) *SwapHandler {
	return &SwapHandler{swaps: swaps, store: st}
}

// HandleList returns the viewer's sent and received requests.
// GET /api/requests
// Response: {"sent":[...],"received":[...]}
func (h *SwapHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	viewer := UserFromContext(r.Context())
	snap := h.store.Snapshot()

	sent, received := h.swaps.ListForUser(viewer)
	writeJSON(w, http.StatusOK, map[string]any{
		"sent":     toSwapRequestDTOs(sent, snap),
		"received": toSwapRequestDTOs(received, snap),
	})
}

// HandleCreate sends a new swap request from the viewer.
// POST /api/requests
// Request:  {"toUserId":N,"offeredSkill":"...","wantedSkill":"...","message":"..."}
// Response: {"request": {...}}
func (h *SwapHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	viewer := UserFromContext(r.Context())

	var req struct {
		ToUserID     int64  `json:"toUserId"`
		OfferedSkill string `json:"offeredSkill"`
		WantedSkill  string `json:"wantedSkill"`
		Message      string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.swaps.Send(r.Context(), viewer, req.ToUserID, req.OfferedSkill, req.WantedSkill, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Recipient not found.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("create swap request", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"request": toSwapRequestDTO(created, h.store.Snapshot()),
	})
}

// HandleAccept resolves a pending request as accepted.
// POST /api/requests/{id}/accept
func (h *SwapHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, domain.StatusAccepted)
}

// HandleReject resolves a pending request as rejected.
// POST /api/requests/{id}/reject
func (h *SwapHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, domain.StatusRejected)
}

func (h *SwapHandler) resolve(w http.ResponseWriter, r *http.Request, status string) {
	viewer := UserFromContext(r.Context())
	requestID := r.PathValue("id")

	if err := h.swaps.Resolve(r.Context(), viewer, requestID, status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Request not found.")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "Only the recipient can resolve a request.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusConflict, err.Error())
		default:
			slog.Error("resolve swap request", "error", err, "status", status)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a request the viewer is allowed to delete.
// DELETE /api/requests/{id}
func (h *SwapHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	viewer := UserFromContext(r.Context())
	requestID := r.PathValue("id")

	if err := h.swaps.Delete(r.Context(), viewer, requestID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Request not found.")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "You cannot delete this request.")
		default:
			slog.Error("delete swap request", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFeed patches the viewer's request feed fragment over SSE.
// GET /api/requests/feed
func (h *SwapHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	viewer := UserFromContext(r.Context())
	snap := h.store.Snapshot()

	sent, received := h.swaps.ListForUser(viewer)

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.RequestFeedFragment(toFeedEntries(received, sent, snap)),
		datastar.WithSelectorID("request-feed"),
		datastar.WithModeInner(),
	)
}

func toFeedEntries(received, sent []domain.SwapRequest, snap domain.Snapshot) []view.FeedEntry {
	entries := make([]view.FeedEntry, 0, len(received)+len(sent))
	for _, req := range received {
		entries = append(entries, feedEntry(req, req.FromUserID, view.DirectionReceived, snap))
	}
	for _, req := range sent {
		entries = append(entries, feedEntry(req, req.ToUserID, view.DirectionSent, snap))
	}
	return entries
}

func feedEntry(req domain.SwapRequest, counterpartID int64, direction string, snap domain.Snapshot) view.FeedEntry {
	name := unknownUserName
	if u, found := snap.UserByID(counterpartID); found {
		name = u.Name
	}
	return view.FeedEntry{
		Direction:    direction,
		Counterpart:  name,
		OfferedSkill: req.OfferedSkill,
		WantedSkill:  req.WantedSkill,
		Status:       req.Status,
	}
}
