package models

// Like represents one user's like of one tweet. The same user may like the
// same tweet more than once; each like is its own row.
type Like struct {
	ID      uint  `json:"id" gorm:"primaryKey"`
	UserID  uint  `json:"user_id" gorm:"index"`
	User    User  `json:"-" gorm:"foreignKey:UserID"`
	TweetID uint  `json:"tweet_id" gorm:"index"`
	Tweet   Tweet `json:"-" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
}
