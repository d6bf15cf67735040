package models

// Media is an uploaded image. TweetID is set once the media is attached to a
// tweet. It carries no foreign key constraint, so deleting the tweet leaves the
// id dangling and the media still retrievable.
type Media struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Data     []byte `json:"-" gorm:"not null"`
	FileName string `json:"file_name" gorm:"not null"`
	TweetID  *uint  `json:"tweet_id" gorm:"index"`
}

func (Media) TableName() string {
	return "medias"
}

// AllowedMediaTypes lists the declared content types accepted on upload
var AllowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}
