package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/skill-swap/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Store is the authoritative holder of the session, the user directory,
// and the swap-request list. All reads are deep-copied snapshots; all
// writes go through named operations that stage the change, persist the
// staged value to the record store, and only then replace the in-memory
// state. A failed persist leaves the store exactly as it was.
//
// A Store must be initialized exactly once before use. Operations called
// before Initialize return domain.ErrNotInitialized; Snapshot panics,
// since calling it outside the store lifecycle is a programming error.
type Store struct {
	records    domain.RecordStore
	bcryptCost int

	mu            sync.RWMutex
	initialized   bool
	session       *domain.User
	users         []domain.User
	requests      []domain.SwapRequest
	announcements []domain.Announcement
}

// New creates a directory store backed by the given record store. The
// bcrypt cost is used when hashing credentials for seeded and synthesized
// users.
func New(records domain.RecordStore, bcryptCost int) *Store {
	return &Store{records: records, bcryptCost: bcryptCost}
}

// Initialize loads the persisted collections, seeding the directory with
// the fixed example users when no directory has ever been written. It must
// run to completion before any other method is called.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.loadRecord(ctx, domain.RecordSession, &s.session); err != nil {
		return err
	}
	if err := s.loadRecord(ctx, domain.RecordRequests, &s.requests); err != nil {
		return err
	}
	if err := s.loadRecord(ctx, domain.RecordAnnouncements, &s.announcements); err != nil {
		return err
	}

	var users []domain.User
	if err := s.loadRecord(ctx, domain.RecordUsers, &users); err != nil {
		return err
	}
	if users == nil {
		seeded, err := SeedUsers(s.bcryptCost)
		if err != nil {
			return fmt.Errorf("seed directory: %w", err)
		}
		users = seeded
		// Persist the seed so credential hashes stay stable across restarts.
		if err := s.saveRecord(ctx, domain.RecordUsers, users); err != nil {
			return err
		}
	}
	s.users = users

	s.initialized = true
	return nil
}

// loadRecord unmarshals one keyed record into dst, leaving dst untouched
// when the record has never been written.
func (s *Store) loadRecord(ctx context.Context, key string, dst any) error {
	data, err := s.records.Load(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveRecord(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.records.Save(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Snapshot returns a deep-copied view of the current state. It panics if
// the store has not been initialized.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		panic(domain.ErrNotInitialized)
	}

	snap := domain.Snapshot{
		Users:         make([]domain.User, len(s.users)),
		Requests:      append([]domain.SwapRequest(nil), s.requests...),
		Announcements: append([]domain.Announcement(nil), s.announcements...),
		IsLoggedIn:    s.session != nil,
	}
	for i, u := range s.users {
		snap.Users[i] = u.Clone()
	}
	if s.session != nil {
		u := s.session.Clone()
		snap.Session = &u
	}
	return snap
}

// Login authenticates a user. An email matching a directory entry is
// verified against that entry's credential hash and fails on mismatch or
// when the entry is banned. An unknown email with a non-empty password
// synthesizes a new member user, which is appended to the directory. The
// returned bool reports whether a session was established; the error
// covers persistence failures only.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return false, domain.ErrNotInitialized
	}

	for _, u := range s.users {
		if u.Email != email {
			continue
		}
		if u.Banned {
			return false, nil
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return false, nil
		}
		session := u.Clone()
		if err := s.saveRecord(ctx, domain.RecordSession, &session); err != nil {
			return false, err
		}
		s.session = &session
		return true, nil
	}

	if email == "" || password == "" {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:            s.nextUserIDLocked(),
		Name:          emailLocalPart(email),
		Email:         email,
		Location:      defaultLocation,
		Photo:         defaultPhoto,
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		Availability:  domain.AvailabilityWeekdays,
		Visibility:    domain.VisibilityPublic,
		Rating:        0,
		Role:          domain.RoleMember,
		PasswordHash:  string(hash),
	}

	users := append(append([]domain.User(nil), s.users...), user)
	session := user.Clone()
	if err := s.saveRecord(ctx, domain.RecordUsers, users); err != nil {
		return false, err
	}
	if err := s.saveRecord(ctx, domain.RecordSession, &session); err != nil {
		return false, err
	}
	s.users = users
	s.session = &session
	return true, nil
}

// Logout clears the session and removes the persisted session record.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}

	if err := s.records.Delete(ctx, domain.RecordSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.session = nil
	return nil
}

// UpdateProfile merges the given partial update into the session user and
// the matching directory entry, then persists both. Without an active
// session it is a silent no-op; callers gate on session presence.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}
	if s.session == nil {
		return nil
	}

	merged := s.session.Clone()
	applyUpdate(&merged, update)

	users := append([]domain.User(nil), s.users...)
	for i, u := range users {
		if u.ID == merged.ID {
			users[i] = merged.Clone()
			break
		}
	}

	if err := s.saveRecord(ctx, domain.RecordSession, &merged); err != nil {
		return err
	}
	if err := s.saveRecord(ctx, domain.RecordUsers, users); err != nil {
		return err
	}
	s.session = &merged
	s.users = users
	return nil
}

// SendSwapRequest appends a fresh pending request and persists the list.
// The store performs no skill-membership or duplicate checks; those are
// caller concerns.
func (s *Store) SendSwapRequest(ctx context.Context, fromUserID, toUserID int64, offeredSkill, wantedSkill, message string) (domain.SwapRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.SwapRequest{}, domain.ErrNotInitialized
	}

	req := domain.SwapRequest{
		ID:           uuid.NewString(),
		FromUserID:   fromUserID,
		ToUserID:     toUserID,
		OfferedSkill: offeredSkill,
		WantedSkill:  wantedSkill,
		Message:      message,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	requests := append(append([]domain.SwapRequest(nil), s.requests...), req)
	if err := s.saveRecord(ctx, domain.RecordRequests, requests); err != nil {
		return domain.SwapRequest{}, err
	}
	s.requests = requests
	return req, nil
}

// UpdateSwapRequestStatus resolves a pending request to accepted or
// rejected. Transitions are one-way: a request that is already resolved,
// or an id that does not exist, is a silent no-op.
func (s *Store) UpdateSwapRequestStatus(ctx context.Context, requestID, status string) error {
	if status != domain.StatusAccepted && status != domain.StatusRejected {
		return fmt.Errorf("%w: status must be accepted or rejected", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}

	for i, req := range s.requests {
		if req.ID != requestID {
			continue
		}
		if !domain.ValidStatusTransition(req.Status, status) {
			return nil
		}
		requests := append([]domain.SwapRequest(nil), s.requests...)
		requests[i].Status = status
		if err := s.saveRecord(ctx, domain.RecordRequests, requests); err != nil {
			return err
		}
		s.requests = requests
		return nil
	}
	return nil
}

// DeleteSwapRequest removes the request with the given id, preserving the
// order of the remainder. Unknown ids are a silent no-op.
func (s *Store) DeleteSwapRequest(ctx context.Context, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}

	requests := make([]domain.SwapRequest, 0, len(s.requests))
	found := false
	for _, req := range s.requests {
		if req.ID == requestID {
			found = true
			continue
		}
		requests = append(requests, req)
	}
	if !found {
		return nil
	}

	if err := s.saveRecord(ctx, domain.RecordRequests, requests); err != nil {
		return err
	}
	s.requests = requests
	return nil
}

// BanUser sets the banned flag on the matching directory entry. The store
// does not guard against banning an admin; that check belongs to the
// caller.
func (s *Store) BanUser(ctx context.Context, userID int64) error {
	return s.setBanned(ctx, userID, true)
}

// UnbanUser clears the banned flag on the matching directory entry.
func (s *Store) UnbanUser(ctx context.Context, userID int64) error {
	return s.setBanned(ctx, userID, false)
}

func (s *Store) setBanned(ctx context.Context, userID int64, banned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.ErrNotInitialized
	}

	for i, u := range s.users {
		if u.ID != userID {
			continue
		}
		users := append([]domain.User(nil), s.users...)
		users[i].Banned = banned
		if err := s.saveRecord(ctx, domain.RecordUsers, users); err != nil {
			return err
		}
		s.users = users
		return nil
	}
	return nil
}

// Broadcast appends a platform announcement and persists the list.
func (s *Store) Broadcast(ctx context.Context, message string) (domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return domain.Announcement{}, domain.ErrNotInitialized
	}

	ann := domain.Announcement{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	announcements := append(append([]domain.Announcement(nil), s.announcements...), ann)
	if err := s.saveRecord(ctx, domain.RecordAnnouncements, announcements); err != nil {
		return domain.Announcement{}, err
	}
	s.announcements = announcements
	return ann, nil
}

// nextUserIDLocked returns a fresh time-based user id that does not
// collide with any directory entry. Caller must hold the write lock.
func (s *Store) nextUserIDLocked() int64 {
	id := time.Now().UnixMilli()
	for s.hasUserIDLocked(id) {
		id++
	}
	return id
}

func (s *Store) hasUserIDLocked(id int64) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func applyUpdate(u *domain.User, update domain.ProfileUpdate) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	if update.Photo != nil {
		u.Photo = *update.Photo
	}
	if update.SkillsOffered != nil {
		u.SkillsOffered = append([]string(nil), *update.SkillsOffered...)
	}
	if update.SkillsWanted != nil {
		u.SkillsWanted = append([]string(nil), *update.SkillsWanted...)
	}
	if update.Availability != nil {
		u.Availability = *update.Availability
	}
	if update.Visibility != nil {
		u.Visibility = *update.Visibility
	}
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
