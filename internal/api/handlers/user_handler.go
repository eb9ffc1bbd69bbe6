package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haiminh-dev/ihk-case-api/internal/application"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/user"
	"github.com/haiminh-dev/ihk-case-api/pkg/response"
	"github.com/haiminh-dev/ihk-case-api/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "email and password are required"})
		return
	}

	u, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		User: response.UserInfo{
			ID:    u.ID,
			Email: u.Email,
			Role:  string(u.Role),
			Name:  u.Name,
		},
	})
}

// AuthStatusHandler reports whether the presented token is still valid. The
// JWT middleware has already rejected anything expired or malformed.
func AuthStatusHandler(c *gin.Context) {
	claims, err := utils.ClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"user": response.UserInfo{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.CreateUser(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: u})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: users})
}
