package handler

import (
	"time"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/service"
)

// UserDTO is the JSON representation of a user. The credential hash never
// leaves the server.
type UserDTO struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Location      string   `json:"location"`
	Photo         string   `json:"photo"`
	SkillsOffered []string `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	Availability  string   `json:"availability"`
	Visibility    string   `json:"profileVisibility"`
	Rating        float64  `json:"rating"`
	Banned        bool     `json:"banned"`
	Role          string   `json:"role"`
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Location:      u.Location,
		Photo:         u.Photo,
		SkillsOffered: emptyIfNil(u.SkillsOffered),
		SkillsWanted:  emptyIfNil(u.SkillsWanted),
		Availability:  u.Availability,
		Visibility:    u.Visibility,
		Rating:        u.Rating,
		Banned:        u.Banned,
		Role:          u.Role,
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos
}

// SwapRequestDTO is the JSON representation of a swap request. Party names
// are resolved from the directory; a dangling reference renders as
// "Unknown user" rather than failing.
type SwapRequestDTO struct {
	ID           string `json:"id"`
	FromUserID   int64  `json:"fromUserId"`
	FromUserName string `json:"fromUserName"`
	ToUserID     int64  `json:"toUserId"`
	ToUserName   string `json:"toUserName"`
	OfferedSkill string `json:"offeredSkill"`
	WantedSkill  string `json:"wantedSkill"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

const unknownUserName = "Unknown user"

func toSwapRequestDTO(req domain.SwapRequest, snap domain.Snapshot) SwapRequestDTO {
	dto := SwapRequestDTO{
		ID:           req.ID,
		FromUserID:   req.FromUserID,
		FromUserName: unknownUserName,
		ToUserID:     req.ToUserID,
		ToUserName:   unknownUserName,
		OfferedSkill: req.OfferedSkill,
		WantedSkill:  req.WantedSkill,
		Message:      req.Message,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
	if from, found := snap.UserByID(req.FromUserID); found {
		dto.FromUserName = from.Name
	}
	if to, found := snap.UserByID(req.ToUserID); found {
		dto.ToUserName = to.Name
	}
	return dto
}

func toSwapRequestDTOs(reqs []domain.SwapRequest, snap domain.Snapshot) []SwapRequestDTO {
	dtos := make([]SwapRequestDTO, len(reqs))
	for i, req := range reqs {
		dtos[i] = toSwapRequestDTO(req, snap)
	}
	return dtos
}

// AnnouncementDTO is the JSON representation of an announcement.
type AnnouncementDTO struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func toAnnouncementDTOs(anns []domain.Announcement) []AnnouncementDTO {
	dtos := make([]AnnouncementDTO, len(anns))
	for i, a := range anns {
		dtos[i] = AnnouncementDTO{
			ID:        a.ID,
			Message:   a.Message,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
	}
	return dtos
}

// StatsDTO is the JSON representation of the admin dashboard counts.
type StatsDTO struct {
	ActiveUsers      int `json:"activeUsers"`
	BannedUsers      int `json:"bannedUsers"`
	PublicProfiles   int `json:"publicProfiles"`
	PendingRequests  int `json:"pendingRequests"`
	AcceptedRequests int `json:"acceptedRequests"`
	RejectedRequests int `json:"rejectedRequests"`
}

func toStatsDTO(s service.Stats) StatsDTO {
	return StatsDTO{
		ActiveUsers:      s.ActiveUsers,
		BannedUsers:      s.BannedUsers,
		PublicProfiles:   s.PublicProfiles,
		PendingRequests:  s.PendingRequests,
		AcceptedRequests: s.AcceptedRequests,
		RejectedRequests: s.RejectedRequests,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
