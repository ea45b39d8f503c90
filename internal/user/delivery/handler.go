package delivery

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vidtube-backend/internal/user/domain"
	"vidtube-backend/internal/user/dto"
	"vidtube-backend/internal/user/usecase"
	"vidtube-backend/pkg/apierror"
	"vidtube-backend/pkg/config"
	"vidtube-backend/pkg/response"
)

// UserHandler translates HTTP requests into usecase calls and usecase errors
// into envelope responses. All transport writes happen here.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	config      *config.Config
}

func NewUserHandler(userUsecase usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		config:      cfg,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.respondError(c, apierror.BadRequest("all fields are required"))
		return
	}

	avatarPath, err := h.saveUploadedFile(c, "avatar")
	if err != nil {
		h.respondError(c, apierror.BadRequest("avatar file is required"))
		return
	}
	// Cover image is optional; a missing file is not an error.
	coverImagePath, _ := h.saveUploadedFile(c, "coverImage")

	user, err := h.userUsecase.Register(&req, avatarPath, coverImagePath)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.New(http.StatusCreated, user, "user registered successfully"))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apierror.BadRequest("username or email is required"))
		return
	}

	result, err := h.userUsecase.Login(&req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, response.New(http.StatusOK, result, "user logged in successfully"))
}

func (h *UserHandler) Logout(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	if err := h.userUsecase.Logout(user.ID); err != nil {
		h.respondError(c, err)
		return
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, response.New(http.StatusOK, gin.H{}, "user logged out"))
}

func (h *UserHandler) RefreshToken(c *gin.Context) {
	incoming, _ := c.Cookie("refreshToken")
	if incoming == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}

	pair, err := h.userUsecase.RefreshSession(incoming)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	c.JSON(http.StatusOK, response.New(http.StatusOK, pair, "access token refreshed"))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apierror.BadRequest("old and new password are required"))
		return
	}

	if err := h.userUsecase.ChangePassword(user.ID, &req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, gin.H{}, "password changed successfully"))
}

func (h *UserHandler) CurrentUser(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, user, "current user fetched successfully"))
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apierror.BadRequest("all fields are required"))
		return
	}

	updated, err := h.userUsecase.UpdateAccount(user.ID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, updated, "account details updated successfully"))
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	avatarPath, err := h.saveUploadedFile(c, "avatar")
	if err != nil {
		h.respondError(c, apierror.BadRequest("avatar file is missing"))
		return
	}

	updated, err := h.userUsecase.UpdateAvatar(user.ID, avatarPath)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, updated, "avatar updated successfully"))
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	coverImagePath, err := h.saveUploadedFile(c, "coverImage")
	if err != nil {
		h.respondError(c, apierror.BadRequest("cover image file is missing"))
		return
	}

	updated, err := h.userUsecase.UpdateCoverImage(user.ID, coverImagePath)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, updated, "cover image updated successfully"))
}

func (h *UserHandler) ChannelProfile(c *gin.Context) {
	viewer := currentUser(c)
	viewerID := ""
	if viewer != nil {
		viewerID = viewer.ID
	}

	profile, err := h.userUsecase.GetChannelProfile(c.Param("username"), viewerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, profile, "channel profile fetched successfully"))
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.respondError(c, apierror.Unauthorized("unauthorized request"))
		return
	}

	videos, err := h.userUsecase.GetWatchHistory(user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, videos, "watch history fetched successfully"))
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	status := apierror.StatusOf(err)
	c.JSON(status, response.NewError(status, apierror.MessageOf(err)))
}

func (h *UserHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", accessToken, int(h.config.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, int(h.config.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

// saveUploadedFile stages a multipart file under the configured temp dir so
// the uploader can pick it up from disk.
func (h *UserHandler) saveUploadedFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	return h.stageFile(c, file)
}

func (h *UserHandler) stageFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.config.TempDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(h.config.TempDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func currentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
