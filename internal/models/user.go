package models

// User is an account identified by a static API key. Users are never deleted.
type User struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"index"`
	APIKey string `json:"-" gorm:"column:api_key;uniqueIndex"`
}

// UserSummary is the (id, name) pair used in follower and author listings
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// UserProfile is the body of a profile lookup. ID and Name are null when the
// profile row could not be loaded.
type UserProfile struct {
	ID        *uint         `json:"id"`
	Name      *string       `json:"name"`
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
}

// NewUserProfile builds a profile from a possibly nil user and its edges
func NewUserProfile(user *User, followers, following []User) UserProfile {
	profile := UserProfile{
		Followers: Summarize(followers),
		Following: Summarize(following),
	}
	if user != nil {
		profile.ID = &user.ID
		profile.Name = &user.Name
	}
	return profile
}

// Summarize reduces users to (id, name) pairs, never returning nil
func Summarize(users []User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Name: u.Name})
	}
	return out
}
