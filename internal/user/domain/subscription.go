package domain

import "time"

// Subscription records that SubscriberID follows ChannelID. Both sides are
// users; a channel is just a user looked at from the outside.
type Subscription struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SubscriberID string    `json:"subscriberId" gorm:"index:idx_sub_pair,unique;not null"`
	ChannelID    string    `json:"channelId" gorm:"index:idx_sub_pair,unique;index;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ChannelProfile is the public view of a channel: the sanitized user plus the
// aggregate subscription numbers relative to the viewer.
type ChannelProfile struct {
	User              User  `json:"user"`
	SubscriberCount   int64 `json:"subscriberCount"`
	SubscribedToCount int64 `json:"subscribedToCount"`
	IsSubscribed      bool  `json:"isSubscribed"`
}
