package domain

import "time"

// Announcement is a platform-wide message broadcast by an admin.
type Announcement struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
