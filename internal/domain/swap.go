package domain

import "time"

// Swap request lifecycle states. Requests start pending and move exactly
// once, to accepted or rejected; resolved requests can only be deleted.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// SwapRequest is a proposal to exchange one offered skill for one wanted
// skill between two users. User references may dangle if the counterpart
// has since disappeared; readers must treat a failed lookup as "unknown
// user", never as an error.
type SwapRequest struct {
	ID           string    `json:"id"`
	FromUserID   int64     `json:"fromUserId"`
	ToUserID     int64     `json:"toUserId"`
	OfferedSkill string    `json:"offeredSkill"`
	WantedSkill  string    `json:"wantedSkill"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidStatusTransition reports whether a request in the current state may
// move to the target state.
func ValidStatusTransition(from, to string) bool {
	return from == StatusPending && (to == StatusAccepted || to == StatusRejected)
}
