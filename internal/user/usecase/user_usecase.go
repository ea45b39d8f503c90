package usecase

import (
	"strings"

	"vidtube-backend/internal/user/domain"
	"vidtube-backend/internal/user/dto"
	"vidtube-backend/internal/user/repository"
	"vidtube-backend/internal/user/token"
	"vidtube-backend/pkg/apierror"
	"vidtube-backend/pkg/config"
)

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo      repository.UserRepository
	subscriptions repository.SubscriptionRepository
	watchHistory  repository.WatchHistoryRepository
	tokens        *token.Issuer
	uploader      Uploader
	config        *config.Config
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(
	userRepo repository.UserRepository,
	subscriptions repository.SubscriptionRepository,
	watchHistory repository.WatchHistoryRepository,
	tokens *token.Issuer,
	uploader Uploader,
	cfg *config.Config,
) UserUsecase {
	return &userUsecase{
		userRepo:      userRepo,
		subscriptions: subscriptions,
		watchHistory:  watchHistory,
		tokens:        tokens,
		uploader:      uploader,
		config:        cfg,
	}
}

func (u *userUsecase) Register(req *dto.RegisterRequest, avatarLocalPath, coverImageLocalPath string) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if fullName == "" || email == "" || username == "" || req.Password == "" {
		return nil, apierror.BadRequest("all fields are required")
	}

	existing, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apierror.Internal("failed to look up existing user")
	}
	if existing != nil {
		return nil, apierror.Conflict("user with email or username already exists")
	}

	if avatarLocalPath == "" {
		return nil, apierror.BadRequest("avatar file is required")
	}

	avatarURL := u.uploader.Upload(avatarLocalPath)
	if avatarURL == "" {
		return nil, apierror.BadRequest("avatar upload failed")
	}
	coverImageURL := u.uploader.Upload(coverImageLocalPath)

	hash, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return nil, apierror.Internal("failed to hash password")
	}

	user := &domain.User{
		Username:      username,
		Email:         email,
		FullName:      fullName,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
		PasswordHash:  hash,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, apierror.Internal("something went wrong while registering the user")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (u *userUsecase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" && email == "" {
		return nil, apierror.BadRequest("username or email is required")
	}

	user, err := u.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apierror.Internal("failed to look up user")
	}
	if user == nil {
		return nil, apierror.NotFound("user does not exist")
	}

	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apierror.Unauthorized("invalid user credentials")
	}

	accessToken, refreshToken, err := u.issuePair(user)
	if err != nil {
		return nil, err
	}

	// Column-targeted write: session mutation must not trip validation of,
	// or rewrite, unrelated fields.
	if err := u.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, apierror.Internal("failed to persist refresh token")
	}

	return &dto.LoginResponse{
		User:         user.Sanitized(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *userUsecase) Logout(userID string) error {
	// Idempotent: clearing an already-empty token is fine.
	if err := u.userRepo.UpdateRefreshToken(userID, ""); err != nil {
		return apierror.Internal("failed to clear refresh token")
	}
	return nil
}

func (u *userUsecase) RefreshSession(incomingRefreshToken string) (*dto.TokenPairResponse, error) {
	if incomingRefreshToken == "" {
		return nil, apierror.Unauthorized("unauthorized request")
	}

	claims, err := u.tokens.VerifyRefresh(incomingRefreshToken)
	if err != nil {
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apierror.Internal("failed to look up user")
	}
	if user == nil {
		return nil, apierror.Unauthorized("invalid refresh token")
	}

	if user.RefreshToken == "" || user.RefreshToken != incomingRefreshToken {
		return nil, apierror.Unauthorized("refresh token is expired or already used")
	}

	accessToken, refreshToken, err := u.issuePair(user)
	if err != nil {
		return nil, err
	}

	// Rotation: replace the stored token only while it still equals the
	// presented one. Zero affected rows means a concurrent refresh already
	// superseded it, and this request loses.
	rotated, err := u.userRepo.RotateRefreshToken(user.ID, incomingRefreshToken, refreshToken)
	if err != nil {
		return nil, apierror.Internal("failed to rotate refresh token")
	}
	if !rotated {
		return nil, apierror.Unauthorized("refresh token is expired or already used")
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *userUsecase) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return apierror.Internal("failed to look up user")
	}
	if user == nil {
		return apierror.NotFound("user does not exist")
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apierror.BadRequest("invalid old password")
	}

	hash, err := repository.HashPassword(req.NewPassword, u.config.BcryptCost)
	if err != nil {
		return apierror.Internal("failed to hash password")
	}
	if err := u.userRepo.UpdatePasswordHash(userID, hash); err != nil {
		return apierror.Internal("failed to update password")
	}
	return nil
}

func (u *userUsecase) VerifyAccessToken(tokenString string) (*domain.User, error) {
	claims, err := u.tokens.VerifyAccess(tokenString)
	if err != nil {
		return nil, apierror.Unauthorized("invalid access token")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apierror.Internal("failed to look up user")
	}
	if user == nil {
		return nil, apierror.Unauthorized("invalid access token")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (u *userUsecase) UpdateAccount(userID string, req *dto.UpdateAccountRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullName == "" || email == "" {
		return nil, apierror.BadRequest("all fields are required")
	}

	user, err := u.userRepo.UpdateAccount(userID, fullName, email)
	if err != nil {
		return nil, apierror.Internal("failed to update account details")
	}
	if user == nil {
		return nil, apierror.NotFound("user does not exist")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (u *userUsecase) UpdateAvatar(userID, avatarLocalPath string) (*domain.User, error) {
	if avatarLocalPath == "" {
		return nil, apierror.BadRequest("avatar file is missing")
	}

	avatarURL := u.uploader.Upload(avatarLocalPath)
	if avatarURL == "" {
		return nil, apierror.BadRequest("error while uploading avatar")
	}

	user, err := u.userRepo.UpdateAvatar(userID, avatarURL)
	if err != nil {
		return nil, apierror.Internal("failed to update avatar")
	}
	if user == nil {
		return nil, apierror.NotFound("user does not exist")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (u *userUsecase) UpdateCoverImage(userID, coverImageLocalPath string) (*domain.User, error) {
	if coverImageLocalPath == "" {
		return nil, apierror.BadRequest("cover image file is missing")
	}

	coverImageURL := u.uploader.Upload(coverImageLocalPath)
	if coverImageURL == "" {
		return nil, apierror.BadRequest("error while uploading cover image")
	}

	user, err := u.userRepo.UpdateCoverImage(userID, coverImageURL)
	if err != nil {
		return nil, apierror.Internal("failed to update cover image")
	}
	if user == nil {
		return nil, apierror.NotFound("user does not exist")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (u *userUsecase) GetChannelProfile(username, viewerID string) (*domain.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apierror.BadRequest("username is missing")
	}

	channel, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, apierror.Internal("failed to look up channel")
	}
	if channel == nil {
		return nil, apierror.NotFound("channel does not exist")
	}

	subscriberCount, err := u.subscriptions.CountSubscribers(channel.ID)
	if err != nil {
		return nil, apierror.Internal("failed to count subscribers")
	}
	subscribedToCount, err := u.subscriptions.CountSubscribedTo(channel.ID)
	if err != nil {
		return nil, apierror.Internal("failed to count subscriptions")
	}

	isSubscribed := false
	if viewerID != "" {
		isSubscribed, err = u.subscriptions.IsSubscribed(viewerID, channel.ID)
		if err != nil {
			return nil, apierror.Internal("failed to check subscription")
		}
	}

	return &domain.ChannelProfile{
		User:              channel.Sanitized(),
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

func (u *userUsecase) GetWatchHistory(userID string) ([]*domain.Video, error) {
	videos, err := u.watchHistory.ListByUser(userID)
	if err != nil {
		return nil, apierror.Internal("failed to fetch watch history")
	}
	return videos, nil
}

func (u *userUsecase) issuePair(user *domain.User) (string, string, error) {
	accessToken, err := u.tokens.IssueAccessToken(user)
	if err != nil {
		return "", "", apierror.Internal("something went wrong while generating tokens")
	}
	refreshToken, err := u.tokens.IssueRefreshToken(user)
	if err != nil {
		return "", "", apierror.Internal("something went wrong while generating tokens")
	}
	return accessToken, refreshToken, nil
}
