package repository

import "vidtube-backend/internal/user/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *domain.User) error

	// FindByID finds a user by ID, returning (nil, nil) when absent
	FindByID(id string) (*domain.User, error)

	// FindByUsername finds a user by username, returning (nil, nil) when absent
	FindByUsername(username string) (*domain.User, error)

	// FindByUsernameOrEmail finds a user matching either field, returning (nil, nil) when absent
	FindByUsernameOrEmail(username, email string) (*domain.User, error)

	// UpdateRefreshToken sets (or clears, with "") the stored refresh token.
	// Column-targeted: no other field is validated or written.
	UpdateRefreshToken(userID, refreshToken string) error

	// RotateRefreshToken replaces the stored refresh token only if it still
	// equals expected. Returns false when the stored value no longer matches,
	// which means the presented token was already superseded.
	RotateRefreshToken(userID, expected, replacement string) (bool, error)

	// UpdatePasswordHash overwrites the stored password hash
	UpdatePasswordHash(userID, passwordHash string) error

	// UpdateAccount updates fullName and email, returning the updated record
	UpdateAccount(userID, fullName, email string) (*domain.User, error)

	// UpdateAvatar updates the avatar URL, returning the updated record
	UpdateAvatar(userID, avatarURL string) (*domain.User, error)

	// UpdateCoverImage updates the cover image URL, returning the updated record
	UpdateCoverImage(userID, coverImageURL string) (*domain.User, error)
}

// SubscriptionRepository defines the interface for subscription reads
type SubscriptionRepository interface {
	// CountSubscribers counts users subscribed to the channel
	CountSubscribers(channelID string) (int64, error)

	// CountSubscribedTo counts channels the user subscribes to
	CountSubscribedTo(subscriberID string) (int64, error)

	// IsSubscribed reports whether subscriberID follows channelID
	IsSubscribed(subscriberID, channelID string) (bool, error)
}

// WatchHistoryRepository defines the interface for watch history access
type WatchHistoryRepository interface {
	// Append records that the user watched the video
	Append(userID, videoID string) error

	// ListByUser returns the user's watched videos, most recent first
	ListByUser(userID string) ([]*domain.Video, error)
}
