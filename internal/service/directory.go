package service

import (
	"strings"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/store"
)

// BrowsePageSize is the number of profiles per directory page.
const BrowsePageSize = 6

// AvailabilityAll disables the availability filter.
const AvailabilityAll = "all"

// BrowseResult is one page of directory profiles plus pagination totals.
type BrowseResult struct {
	Users      []domain.User
	Total      int
	Page       int
	TotalPages int
}

// DirectoryService answers read queries over the directory snapshot.
type DirectoryService struct {
	store *store.Store
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(st *store.Store) *DirectoryService {
	return &DirectoryService{store: st}
}

// Browse returns one page of public, non-banned profiles, excluding the
// viewer. The query matches case-insensitively against display names and
// both skill lists; availability filters exactly unless it is "all".
// Pages are 1-based; out-of-range pages return an empty page with correct
// totals.
func (s *DirectoryService) Browse(viewerID int64, query, availability string, page int) BrowseResult {
	snap := s.store.Snapshot()

	var matched []domain.User
	for _, u := range snap.Users {
		if u.Visibility != domain.VisibilityPublic || u.Banned || u.ID == viewerID {
			continue
		}
		if !matchesQuery(u, query) {
			continue
		}
		if availability != "" && availability != AvailabilityAll &&
			!strings.EqualFold(u.Availability, availability) {
			continue
		}
		matched = append(matched, u)
	}

	total := len(matched)
	totalPages := (total + BrowsePageSize - 1) / BrowsePageSize
	if page < 1 {
		page = 1
	}

	start := (page - 1) * BrowsePageSize
	if start > total {
		start = total
	}
	end := start + BrowsePageSize
	if end > total {
		end = total
	}

	return BrowseResult{
		Users:      matched[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// UserByID returns a directory profile. Private profiles are visible only
// to their owner and to admins; everyone else gets ErrNotFound, same as
// for an id that does not exist.
func (s *DirectoryService) UserByID(viewer *domain.User, id int64) (domain.User, error) {
	user, found := s.store.Snapshot().UserByID(id)
	if !found {
		return domain.User{}, domain.ErrNotFound
	}
	if user.Visibility != domain.VisibilityPublic {
		if viewer == nil || (viewer.ID != user.ID && viewer.Role != domain.RoleAdmin) {
			return domain.User{}, domain.ErrNotFound
		}
	}
	return user, nil
}

// Announcements returns all platform announcements, newest last.
func (s *DirectoryService) Announcements() []domain.Announcement {
	return s.store.Snapshot().Announcements
}

func matchesQuery(u domain.User, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(u.Name), q) {
		return true
	}
	for _, skill := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	for _, skill := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}
