package usecase

import (
	"vidtube-backend/internal/user/domain"
	"vidtube-backend/internal/user/dto"
)

// Uploader is the media upload collaborator. An empty URL means the upload
// failed; the temp file has already been cleaned up by then.
type Uploader interface {
	Upload(localFilePath string) string
}

// UserUsecase defines the interface for the account and session lifecycle
type UserUsecase interface {
	// Register creates an account from the multipart form fields plus the
	// locally staged avatar (required) and cover image (optional) files
	Register(req *dto.RegisterRequest, avatarLocalPath, coverImageLocalPath string) (*domain.User, error)

	// Login authenticates by username or email and mints a token pair
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout clears the stored refresh token; calling it twice is not an error
	Logout(userID string) error

	// RefreshSession exchanges a refresh token for a new pair, rotating the
	// stored token so the presented one becomes permanently unusable
	RefreshSession(incomingRefreshToken string) (*dto.TokenPairResponse, error)

	// ChangePassword verifies the old password before rehashing the new one
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error

	// VerifyAccessToken resolves an access token to its sanitized user; used
	// by the auth middleware
	VerifyAccessToken(tokenString string) (*domain.User, error)

	// UpdateAccount updates fullName and email
	UpdateAccount(userID string, req *dto.UpdateAccountRequest) (*domain.User, error)

	// UpdateAvatar uploads the staged file and stores its URL
	UpdateAvatar(userID, avatarLocalPath string) (*domain.User, error)

	// UpdateCoverImage uploads the staged file and stores its URL
	UpdateCoverImage(userID, coverImageLocalPath string) (*domain.User, error)

	// GetChannelProfile returns the channel's public profile with
	// subscription counts relative to the viewer (viewerID may be empty)
	GetChannelProfile(username, viewerID string) (*domain.ChannelProfile, error)

	// GetWatchHistory returns the user's watched videos, most recent first
	GetWatchHistory(userID string) ([]*domain.Video, error)
}
