package store

import (
	"fmt"

	"github.com/msomdec/skill-swap/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// SentinelPassword is the shared demo credential for every seeded user.
const SentinelPassword = "password"

const (
	defaultLocation = "Your City"
	defaultPhoto    = "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=150&h=150&fit=crop&crop=face"
)

type seedEntry struct {
	id            int64
	name          string
	email         string
	location      string
	photo         string
	skillsOffered []string
	skillsWanted  []string
	availability  string
	rating        float64
	role          string
}

var seedEntries = []seedEntry{
	{
		id:            1,
		name:          "Marc Demo",
		email:         "marc@example.com",
		location:      "Ahmedabad",
		photo:         "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Photoshop", "React"},
		skillsWanted:  []string{"Excel", "Node.js"},
		availability:  domain.AvailabilityWeekends,
		rating:        3.9,
		role:          domain.RoleAdmin,
	},
	{
		id:            2,
		name:          "Sarah Wilson",
		email:         "sarah@example.com",
		location:      "Mumbai",
		photo:         "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Python", "Data Analysis"},
		skillsWanted:  []string{"Machine Learning", "AWS"},
		availability:  domain.AvailabilityEvenings,
		rating:        4.5,
		role:          domain.RoleMember,
	},
	{
		id:            3,
		name:          "Alex Johnson",
		email:         "alex@example.com",
		location:      "Bangalore",
		photo:         "https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"JavaScript", "Node.js"},
		skillsWanted:  []string{"React Native", "Flutter"},
		availability:  domain.AvailabilityWeekdays,
		rating:        4.2,
		role:          domain.RoleMember,
	},
	{
		id:            4,
		name:          "Priya Sharma",
		email:         "priya@example.com",
		location:      "Delhi",
		photo:         "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"UI/UX Design", "Figma"},
		skillsWanted:  []string{"Frontend Development", "Vue.js"},
		availability:  domain.AvailabilityWeekends,
		rating:        4.8,
		role:          domain.RoleMember,
	},
	{
		id:            5,
		name:          "Rahul Kumar",
		email:         "rahul@example.com",
		location:      "Chennai",
		photo:         "https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Digital Marketing", "SEO"},
		skillsWanted:  []string{"Content Writing", "Social Media"},
		availability:  domain.AvailabilityFlexible,
		rating:        4.1,
		role:          domain.RoleMember,
	},
	{
		id:            6,
		name:          "Maya Patel",
		email:         "maya@example.com",
		location:      "Pune",
		photo:         "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Excel", "Data Visualization"},
		skillsWanted:  []string{"SQL", "Tableau"},
		availability:  domain.AvailabilityWeekdays,
		rating:        4.3,
		role:          domain.RoleMember,
	},
	{
		id:            7,
		name:          "John Doe",
		email:         "john@example.com",
		location:      "Surat",
		photo:         "https://images.unsplash.com/photo-1502767089025-6572583495fe?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Flutter", "Firebase"},
		skillsWanted:  []string{"Design", "Marketing"},
		availability:  domain.AvailabilityFlexible,
		rating:        4.6,
		role:          domain.RoleMember,
	},
	{
		id:            8,
		name:          "Anjali Mehta",
		email:         "anjali@example.com",
		location:      "Rajkot",
		photo:         "https://images.unsplash.com/photo-1599566150163-29194dcaad36?w=150&h=150&fit=crop&crop=face",
		skillsOffered: []string{"Vue.js", "TailwindCSS"},
		skillsWanted:  []string{"Backend", "MongoDB"},
		availability:  domain.AvailabilityWeekends,
		rating:        4.4,
		role:          domain.RoleMember,
	},
}

// SeedUsers builds the fixed example directory used when no directory has
// ever been persisted. Every seeded user shares the sentinel credential.
func SeedUsers(bcryptCost int) ([]domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SentinelPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash sentinel password: %w", err)
	}

	users := make([]domain.User, len(seedEntries))
	for i, e := range seedEntries {
		users[i] = domain.User{
			ID:            e.id,
			Name:          e.name,
			Email:         e.email,
			Location:      e.location,
			Photo:         e.photo,
			SkillsOffered: append([]string(nil), e.skillsOffered...),
			SkillsWanted:  append([]string(nil), e.skillsWanted...),
			Availability:  e.availability,
			Visibility:    domain.VisibilityPublic,
			Rating:        e.rating,
			Role:          e.role,
			PasswordHash:  string(hash),
		}
	}
	return users, nil
}
