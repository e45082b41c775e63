package domain

// Snapshot is a point-in-time, deep-copied view of the directory store.
// Later store mutations are never visible through a snapshot, and mutating
// a snapshot never affects the store.
type Snapshot struct {
	Session       *User
	Users         []User
	Requests      []SwapRequest
	Announcements []Announcement
	IsLoggedIn    bool
}

// UserByID looks up a directory entry in the snapshot. The second return
// is false for unknown users; callers render those as "unknown user".
func (s Snapshot) UserByID(id int64) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
