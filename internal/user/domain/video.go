package domain

import "time"

// Video is a referential entity: this service reads it for watch history but
// does not own its lifecycle.
type Video struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	OwnerID      string    `json:"ownerId" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WatchHistoryEntry links a user to a video they watched. Entries are ordered
// by WatchedAt, most recent first.
type WatchHistoryEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index"`
	VideoID   string    `json:"videoId"`
	WatchedAt time.Time `json:"watchedAt" gorm:"index"`
}
