package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/service"
)

func TestSwapService_Send(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")

	req, err := swaps.Send(ctx, marc, 2, "Photoshop", "Python", "  Let's trade!  ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if req.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %q", req.Status)
	}
	if req.Message != "Let's trade!" {
		t.Fatalf("expected trimmed message, got %q", req.Message)
	}
	if req.FromUserID != marc.ID || req.ToUserID != 2 {
		t.Fatalf("unexpected parties: %d -> %d", req.FromUserID, req.ToUserID)
	}
}

func TestSwapService_Send_Validation(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")

	tests := []struct {
		name    string
		to      int64
		offered string
		wanted  string
		message string
		wantErr error
	}{
		{"empty offered skill", 2, "", "Python", "hi", domain.ErrInvalidInput},
		{"empty wanted skill", 2, "Photoshop", "", "hi", domain.ErrInvalidInput},
		{"blank message", 2, "Photoshop", "Python", "   ", domain.ErrInvalidInput},
		{"self request", marc.ID, "Photoshop", "Python", "hi", domain.ErrInvalidInput},
		{"unknown recipient", 9999, "Photoshop", "Python", "hi", domain.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := swaps.Send(ctx, marc, tc.to, tc.offered, tc.wanted, tc.message)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(st.Snapshot().Requests) != 0 {
		t.Fatal("expected no requests after failed sends")
	}
}

func TestSwapService_Send_BannedRecipient(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")
	if err := st.BanUser(ctx, 2); err != nil {
		t.Fatalf("BanUser: %v", err)
	}

	_, err := swaps.Send(ctx, marc, 2, "Photoshop", "Python", "hi")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for banned recipient, got %v", err)
	}
}

func TestSwapService_Resolve(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")
	req, err := swaps.Send(ctx, marc, 2, "Photoshop", "Python", "hi")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	// The sender cannot resolve their own request.
	if err := swaps.Resolve(ctx, marc, req.ID, domain.StatusAccepted); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for sender, got %v", err)
	}

	sarah := loginAs(t, st, "sarah@example.com")
	if err := swaps.Resolve(ctx, sarah, req.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := st.Snapshot().Requests[0].Status; got != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %q", got)
	}

	// Resolution is one-way.
	if err := swaps.Resolve(ctx, sarah, req.ID, domain.StatusRejected); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput re-resolving, got %v", err)
	}
	if got := st.Snapshot().Requests[0].Status; got != domain.StatusAccepted {
		t.Fatalf("expected status to stay accepted, got %q", got)
	}

	// Unknown ids surface as not found.
	if err := swaps.Resolve(ctx, sarah, "missing", domain.StatusAccepted); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSwapService_Delete_Permissions(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")
	sarah, _ := st.Snapshot().UserByID(2)
	alex, _ := st.Snapshot().UserByID(3)

	pending, err := swaps.Send(ctx, marc, sarah.ID, "Photoshop", "Python", "hi")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	// While pending, the recipient cannot delete.
	if err := swaps.Delete(ctx, &sarah, pending.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for recipient on pending, got %v", err)
	}
	// A third party never can.
	if err := swaps.Delete(ctx, &alex, pending.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for third party, got %v", err)
	}
	// The sender withdraws it.
	if err := swaps.Delete(ctx, marc, pending.ID); err != nil {
		t.Fatalf("sender delete: %v", err)
	}

	// Once resolved, either party may delete.
	resolved, err := swaps.Send(ctx, marc, sarah.ID, "Photoshop", "Python", "again")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := swaps.Resolve(ctx, &sarah, resolved.ID, domain.StatusRejected); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := swaps.Delete(ctx, &sarah, resolved.ID); err != nil {
		t.Fatalf("recipient delete after resolve: %v", err)
	}

	if len(st.Snapshot().Requests) != 0 {
		t.Fatal("expected all requests deleted")
	}
}

func TestSwapService_ListForUser(t *testing.T) {
	st := newTestStore(t)
	swaps := service.NewSwapService(st)
	ctx := context.Background()

	marc := loginAs(t, st, "marc@example.com")
	sarah, _ := st.Snapshot().UserByID(2)

	if _, err := swaps.Send(ctx, marc, sarah.ID, "Photoshop", "Python", "one"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := swaps.Send(ctx, &sarah, marc.ID, "Python", "Photoshop", "two"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	sent, received := swaps.ListForUser(marc)
	if len(sent) != 1 || sent[0].Message != "one" {
		t.Fatalf("unexpected sent list: %+v", sent)
	}
	if len(received) != 1 || received[0].Message != "two" {
		t.Fatalf("unexpected received list: %+v", received)
	}

	// A bystander sees nothing.
	alex, _ := st.Snapshot().UserByID(3)
	sent, received = swaps.ListForUser(&alex)
	if len(sent) != 0 || len(received) != 0 {
		t.Fatal("expected empty lists for a bystander")
	}
}
