package models

// Follower is a directed edge: FollowerID follows FollowingID.
// Neither duplicates nor self-follows are prevented.
type Follower struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	FollowerID    uint `json:"follower_id" gorm:"index"`
	FollowerUser  User `json:"-" gorm:"foreignKey:FollowerID"`
	FollowingID   uint `json:"following_id" gorm:"index"`
	FollowingUser User `json:"-" gorm:"foreignKey:FollowingID"`
}

// All lists every model for auto-migration, parents first
func All() []interface{} {
	return []interface{}{
		&User{},
		&Tweet{},
		&Media{},
		&Like{},
		&Follower{},
	}
}
