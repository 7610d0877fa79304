package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	msgFieldsRequired     = "All fields are required."
	msgUserExists         = "User already exists."
	msgInvalidCredentials = "Invalid email or password."
	msgUserRegistered     = "User registered successfully."
	msgUserNotFound       = "User not found."
	msgInternal           = "Internal server error."
)

type signUpRequest struct {
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the wire form of a user record. There is deliberately no
// field for the password hash.
type userResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

func message(msg string) gin.H {
	return gin.H{"message": msg}
}

func (s *HTTPServer) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message(msgFieldsRequired))
		return
	}

	_, err := s.users.SignUp(ctx, req.Name, req.LastName, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, message(msgFieldsRequired))
		case errors.Is(err, common.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, message(msgUserExists))
		default:
			s.logger.Error(ctx, "signup failed", "error", err)
			c.JSON(http.StatusInternalServerError, message(msgInternal))
		}
		return
	}

	s.logger.Info(ctx, "user registered", "email", req.Email)
	c.JSON(http.StatusCreated, message(msgUserRegistered))
}

func (s *HTTPServer) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, message(msgInvalidCredentials))
		return
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, message(msgInvalidCredentials))
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			c.JSON(http.StatusInternalServerError, message(msgInternal))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *HTTPServer) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing users failed", "error", err)
		c.JSON(http.StatusInternalServerError, message(msgInternal))
		return
	}

	result := make([]userResponse, 0, len(list))
	for _, u := range list {
		result = append(result, toUserResponse(u))
	}

	c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := s.users.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, message(msgUserNotFound))
			return
		}
		s.logger.Error(ctx, "fetching user failed", "error", err)
		c.JSON(http.StatusInternalServerError, message(msgInternal))
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
