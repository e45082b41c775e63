package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/store"
)

// SwapService enforces the caller-side preconditions of the swap-request
// lifecycle before delegating to the store: the store itself stays total
// and unvalidating, so everything a user could get wrong is checked here.
type SwapService struct {
	store *store.Store
}

// NewSwapService creates a new SwapService.
func NewSwapService(st *store.Store) *SwapService {
	return &SwapService{store: st}
}

// Send creates a pending request from the sender to the given recipient.
// Offered skill, wanted skill, and message are required; self-requests are
// rejected; the recipient must exist and not be banned.
func (s *SwapService) Send(ctx context.Context, sender *domain.User, toUserID int64, offeredSkill, wantedSkill, message string) (domain.SwapRequest, error) {
	if offeredSkill == "" || wantedSkill == "" || strings.TrimSpace(message) == "" {
		return domain.SwapRequest{}, fmt.Errorf("%w: offered skill, wanted skill, and message are required", domain.ErrInvalidInput)
	}
	if sender.ID == toUserID {
		return domain.SwapRequest{}, fmt.Errorf("%w: cannot send a request to yourself", domain.ErrInvalidInput)
	}

	recipient, found := s.store.Snapshot().UserByID(toUserID)
	if !found {
		return domain.SwapRequest{}, domain.ErrNotFound
	}
	if recipient.Banned {
		return domain.SwapRequest{}, fmt.Errorf("%w: recipient is banned", domain.ErrInvalidInput)
	}

	return s.store.SendSwapRequest(ctx, sender.ID, toUserID, offeredSkill, wantedSkill, strings.TrimSpace(message))
}

// Resolve accepts or rejects a pending request. Only the recipient may
// resolve, and only once: a request that has already been resolved is
// reported as invalid input rather than silently rewritten.
func (s *SwapService) Resolve(ctx context.Context, viewer *domain.User, requestID, status string) error {
	req, found := s.findRequest(requestID)
	if !found {
		return domain.ErrNotFound
	}
	if req.ToUserID != viewer.ID {
		return domain.ErrUnauthorized
	}
	if !domain.ValidStatusTransition(req.Status, status) {
		return fmt.Errorf("%w: request is already %s", domain.ErrInvalidInput, req.Status)
	}

	return s.store.UpdateSwapRequestStatus(ctx, requestID, status)
}

// Delete removes a request. While pending only the sender may withdraw it;
// once resolved, either party may clear it from their lists.
func (s *SwapService) Delete(ctx context.Context, viewer *domain.User, requestID string) error {
	req, found := s.findRequest(requestID)
	if !found {
		return domain.ErrNotFound
	}

	switch req.Status {
	case domain.StatusPending:
		if req.FromUserID != viewer.ID {
			return domain.ErrUnauthorized
		}
	default:
		if req.FromUserID != viewer.ID && req.ToUserID != viewer.ID {
			return domain.ErrUnauthorized
		}
	}

	return s.store.DeleteSwapRequest(ctx, requestID)
}

// ListForUser returns the viewer's sent and received requests, in creation
// order.
func (s *SwapService) ListForUser(viewer *domain.User) (sent, received []domain.SwapRequest) {
	for _, req := range s.store.Snapshot().Requests {
		switch viewer.ID {
		case req.FromUserID:
			sent = append(sent, req)
		case req.ToUserID:
			received = append(received, req)
		}
	}
	return sent, received
}

func (s *SwapService) findRequest(requestID string) (domain.SwapRequest, bool) {
	for _, req := range s.store.Snapshot().Requests {
		if req.ID == requestID {
			return req, true
		}
	}
	return domain.SwapRequest{}, false
}
