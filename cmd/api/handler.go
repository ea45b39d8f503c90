package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userUsecase "vidtube-backend/internal/user/usecase"
	"vidtube-backend/pkg/config"
)

type Handler struct {
	userUsecase userUsecase.UserUsecase
	config      *config.Config
}

func NewHandler(uc userUsecase.UserUsecase, cfg *config.Config) *Handler {
	return &Handler{
		userUsecase: uc,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Use(h.corsMiddleware())
	r.Use(h.bodyLimitMiddleware())

	// Uploaded assets are served from the public folder.
	r.Static("/public", "./public")

	SetupRoutes(r, h.userUsecase, h.config)

	return r.Run(addr)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := h.config.CORSOrigin
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// bodyLimitMiddleware caps JSON request bodies. Multipart uploads are exempt,
// matching the separate handling of file payloads.
func (h *Handler) bodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.config.BodyLimitBytes)
		}
		c.Next()
	}
}
