package domain

// Profile visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// User roles. The seed directory designates exactly one admin.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Conventional availability tags. The field is free-form; these are the
// values the directory filter offers.
const (
	AvailabilityWeekdays = "weekdays"
	AvailabilityWeekends = "weekends"
	AvailabilityEvenings = "evenings"
	AvailabilityFlexible = "flexible"
)

// User represents an entry in the skill directory. The same record doubles
// as the session user when logged in; the directory copy is authoritative
// and the session copy is reconciled on every profile update.
type User struct {
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
	Banned        bool     `json:"banned,omitempty"`
	Role          string   `json:"role"`
	PasswordHash  string   `json:"passwordHash,omitempty"`
}

// Clone returns a deep copy of the user. Skill slices are copied so the
// caller can mutate the clone without aliasing store state.
func (u User) Clone() User {
	c := u
	c.SkillsOffered = append([]string(nil), u.SkillsOffered...)
	c.SkillsWanted = append([]string(nil), u.SkillsWanted...)
	return c
}

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched; non-nil fields replace the current value entirely, slices
// included.
type ProfileUpdate struct {
	Name          *string
	Location      *string
	Photo         *string
	SkillsOffered *[]string
	SkillsWanted  *[]string
	Availability  *string
	Visibility    *string
}
