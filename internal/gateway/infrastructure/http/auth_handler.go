package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	directory "github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/domain"
)

type signupRequestBody struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Age      flexNumber `json:"age"`
}

type loginRequestBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetPasswordRequestBody struct {
	Username    string `json:"username"`
	NewPassword string `json:"newPassword"`
}

type syncUsersRequestBody struct {
	Users []directory.User `json:"users"`
}

type AuthHandler struct {
	service domain.DirectoryService
}

func NewAuthHandler(service domain.DirectoryService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var body signupRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "All fields required.")
		return
	}

	age, ok := parseAge(body.Age)
	if strings.TrimSpace(body.Username) == "" || strings.TrimSpace(body.Password) == "" || !ok {
		respondError(c, http.StatusBadRequest, "All fields required.")
		return
	}

	err := h.service.Signup(c.Request.Context(), body.Username, body.Password, age)
	if err != nil {
		if errors.Is(err, &directory.UsernameTakenError{}) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}

		respondError(c, http.StatusInternalServerError, "Server error.")
		return
	}

	respondMessage(c, http.StatusOK, "Signup successful.")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "All fields required.")
		return
	}

	if strings.TrimSpace(body.Username) == "" || strings.TrimSpace(body.Password) == "" {
		respondError(c, http.StatusBadRequest, "All fields required.")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, &directory.UserNotFoundError{}), errors.Is(err, &directory.CredentialsMismatchError{}):
			respondError(c, http.StatusUnauthorized, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Server error.")
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": user.Username,
		"age":      user.Age,
		"token":    token,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var body resetPasswordRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "All fields required.")
		return
	}

	err := h.service.ResetPassword(c.Request.Context(), body.Username, body.NewPassword)
	if err != nil {
		if errors.Is(err, &directory.UserNotFoundError{}) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}

		respondError(c, http.StatusInternalServerError, "Server error.")
		return
	}

	respondMessage(c, http.StatusOK, "Password updated successfully.")
}

func (h *AuthHandler) SyncUsers(c *gin.Context) {
	var body syncUsersRequestBody

	if err := c.ShouldBindJSON(&body); err != nil || body.Users == nil {
		respondError(c, http.StatusBadRequest, "Invalid users format.")
		return
	}

	if err := h.service.SyncUsers(c.Request.Context(), body.Users); err != nil {
		respondError(c, http.StatusInternalServerError, "Server error.")
		return
	}

	respondMessage(c, http.StatusOK, "Users synced successfully.")
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
	})
}
