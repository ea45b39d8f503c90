package repository

import (
	"errors"

	"gorm.io/gorm"

	"vidtube-backend/internal/user/domain"
)

// subscriptionRepository implements SubscriptionRepository using GORM
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new instance of subscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (r *subscriptionRepository) CountSubscribers(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountSubscribedTo(subscriberID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	var sub domain.Subscription
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
