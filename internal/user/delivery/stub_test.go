package delivery_test

import (
	"errors"

	"vidtube-backend/internal/user/domain"
	"vidtube-backend/internal/user/dto"
)

var errStubNotConfigured = errors.New("stub not configured")

// stubUsecase implements usecase.UserUsecase with overridable functions so
// handler tests can script each call.
type stubUsecase struct {
	registerFn          func(req *dto.RegisterRequest, avatarPath, coverPath string) (*domain.User, error)
	loginFn             func(req *dto.LoginRequest) (*dto.LoginResponse, error)
	logoutFn            func(userID string) error
	refreshFn           func(incoming string) (*dto.TokenPairResponse, error)
	changePasswordFn    func(userID string, req *dto.ChangePasswordRequest) error
	verifyAccessFn      func(tokenString string) (*domain.User, error)
	updateAccountFn     func(userID string, req *dto.UpdateAccountRequest) (*domain.User, error)
	updateAvatarFn      func(userID, path string) (*domain.User, error)
	updateCoverFn       func(userID, path string) (*domain.User, error)
	getChannelProfileFn func(username, viewerID string) (*domain.ChannelProfile, error)
	getWatchHistoryFn   func(userID string) ([]*domain.Video, error)
}

func (s *stubUsecase) Register(req *dto.RegisterRequest, avatarPath, coverPath string) (*domain.User, error) {
	if s.registerFn == nil {
		return nil, errStubNotConfigured
	}
	return s.registerFn(req, avatarPath, coverPath)
}

func (s *stubUsecase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginFn == nil {
		return nil, errStubNotConfigured
	}
	return s.loginFn(req)
}

func (s *stubUsecase) Logout(userID string) error {
	if s.logoutFn == nil {
		return errStubNotConfigured
	}
	return s.logoutFn(userID)
}

func (s *stubUsecase) RefreshSession(incoming string) (*dto.TokenPairResponse, error) {
	if s.refreshFn == nil {
		return nil, errStubNotConfigured
	}
	return s.refreshFn(incoming)
}

func (s *stubUsecase) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	if s.changePasswordFn == nil {
		return errStubNotConfigured
	}
	return s.changePasswordFn(userID, req)
}

func (s *stubUsecase) VerifyAccessToken(tokenString string) (*domain.User, error) {
	if s.verifyAccessFn == nil {
		return nil, errStubNotConfigured
	}
	return s.verifyAccessFn(tokenString)
}

func (s *stubUsecase) UpdateAccount(userID string, req *dto.UpdateAccountRequest) (*domain.User, error) {
	if s.updateAccountFn == nil {
		return nil, errStubNotConfigured
	}
	return s.updateAccountFn(userID, req)
}

func (s *stubUsecase) UpdateAvatar(userID, path string) (*domain.User, error) {
	if s.updateAvatarFn == nil {
		return nil, errStubNotConfigured
	}
	return s.updateAvatarFn(userID, path)
}

func (s *stubUsecase) UpdateCoverImage(userID, path string) (*domain.User, error) {
	if s.updateCoverFn == nil {
		return nil, errStubNotConfigured
	}
	return s.updateCoverFn(userID, path)
}

func (s *stubUsecase) GetChannelProfile(username, viewerID string) (*domain.ChannelProfile, error) {
	if s.getChannelProfileFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getChannelProfileFn(username, viewerID)
}

func (s *stubUsecase) GetWatchHistory(userID string) ([]*domain.Video, error) {
	if s.getWatchHistoryFn == nil {
		return nil, errStubNotConfigured
	}
	return s.getWatchHistoryFn(userID)
}
