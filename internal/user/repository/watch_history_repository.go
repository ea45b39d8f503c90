package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidtube-backend/internal/user/domain"
)

// watchHistoryRepository implements WatchHistoryRepository using GORM
type watchHistoryRepository struct {
	db *gorm.DB
}

// NewWatchHistoryRepository creates a new instance of watchHistoryRepository
func NewWatchHistoryRepository(db *gorm.DB) WatchHistoryRepository {
	return &watchHistoryRepository{
		db: db,
	}
}

func (r *watchHistoryRepository) Append(userID, videoID string) error {
	entry := &domain.WatchHistoryEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	return r.db.Create(entry).Error
}

func (r *watchHistoryRepository) ListByUser(userID string) ([]*domain.Video, error) {
	var videos []*domain.Video
	err := r.db.Model(&domain.Video{}).
		Joins("JOIN watch_history_entries ON watch_history_entries.video_id = videos.id").
		Where("watch_history_entries.user_id = ?", userID).
		Order("watch_history_entries.watched_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
