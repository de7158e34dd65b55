package user

import (
	"net/http"

	"taskboard/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	Register(c *gin.Context)
	Token(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger}
}

// @Summary Register an account
// @Description Create an account and return a bearer token for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Credentials"
// @Success 200 {object} session.TokenResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "username and password are required"))
		return
	}

	token, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// @Summary Log in
// @Description Exchange form-encoded credentials for a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} session.TokenResponse
// @Failure 401 {object} apperr.ErrorResponse
// @Failure 429 {object} apperr.ErrorResponse
// @Router /token [post]
func (h *handler) Token(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		apperr.Respond(c, h.logger, apperr.New(apperr.ErrValidation, "username and password are required"))
		return
	}

	token, err := h.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		apperr.Respond(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
