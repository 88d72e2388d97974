package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stocknest/backend/internal/application"
	"github.com/stocknest/backend/internal/domain/repository"
	"github.com/stocknest/backend/pkg/helpers"
	"github.com/stocknest/backend/pkg/response"
	"github.com/stocknest/backend/pkg/validation"
)

type UserHandler struct {
	Svc     *application.AccountService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.AccountService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// Registration fails only on absent fields; the email is stored as given,
// without format validation.
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			response.Error(c, http.StatusConflict, "Username or email already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	response.OK(c, http.StatusCreated, "User registered successfully", gin.H{"userId": u.ID})
}

// Login POST /api/login
// An unknown identifier is 404 ("please register"), a bad password 401.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing username/email or password", validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Identifier, req.Password)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "No user found, please register", nil)
		return
	case errors.Is(err, application.ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, "Incorrect password", nil)
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}

	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, "Login successful", gin.H{"userId": u.ID, "username": u.Username})
}

// GetUser GET /api/user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
}

// Profile GET /api/profile (auth required)
func (h *UserHandler) Profile(c *gin.Context) {
	uid := c.GetInt64("userID")
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.ID, "username": u.Username, "email": u.Email})
}

// Refresh POST /api/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error(c, http.StatusUnauthorized, "Missing refresh token", nil)
		return
	}
	pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		if errors.Is(err, application.ErrInvalidToken) {
			response.Error(c, http.StatusUnauthorized, "Invalid refresh token", nil)
			return
		}
		h.Logger.WithError(err).Error("refresh failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, "Token refreshed", nil)
}

// Logout POST /api/logout (auth required)
func (h *UserHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetInt64("userID"))
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, "Logged out", nil)
}
