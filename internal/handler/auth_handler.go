package handler

import (
	"net/http"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

const AuthAllowMethods = "GET, POST, PUT, OPTIONS"

type AuthHandler struct {
	service *services.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// Post dispatches on the action field of the body.
func (h *AuthHandler) Post(c *gin.Context) {
	var req httpdto.ActionRequest
	if !bindBody(c, &req) {
		return
	}
	switch req.Action {
	case "login":
		h.login(c)
	case "logout":
		h.logout(c)
	case "create_user":
		h.createUser(c)
	case "update_user":
		h.updateUser(c)
	default:
		unknownAction(c, h.log)
	}
}

// Get dispatches on the action query parameter.
func (h *AuthHandler) Get(c *gin.Context) {
	switch c.Query("action") {
	case "list_users":
		h.listUsers(c)
	default:
		unknownAction(c, h.log)
	}
}

func (h *AuthHandler) login(c *gin.Context) {
	var req httpdto.LoginRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.service.Login(c.Request.Context(), services.LoginInput{Login: req.Login, Password: req.Password})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.LoginResponse{Success: true, User: httpdto.ToUserProfile(u)})
}

func (h *AuthHandler) logout(c *gin.Context) {
	var req httpdto.LogoutRequest
	if !bindBody(c, &req) {
		return
	}
	if err := h.service.Logout(c.Request.Context(), req.UserID); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AuthHandler) createUser(c *gin.Context) {
	var req httpdto.CreateUserRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.service.CreateUser(c.Request.Context(), services.CreateUserInput{
		Login:       req.Login,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.UserResponse{Success: true, User: httpdto.ToUserRecord(u)})
}

func (h *AuthHandler) updateUser(c *gin.Context) {
	var req httpdto.UpdateUserRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.service.UpdateUser(c.Request.Context(), services.UpdateUserInput{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.UserResponse{Success: true, User: httpdto.ToUserRecord(u)})
}

func (h *AuthHandler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.UsersResponse{Success: true, Users: httpdto.ToUserList(users)})
}
