package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlefebvre/bookcatalog/internal/auth"
)

type UsersController struct {
	service *auth.Service
}

func NewUsersController(service *auth.Service) *UsersController {
	return &UsersController{service: service}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new account. The response never contains the
// password hash.
// POST /signup
func (uc *UsersController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username, email and password are required")
		return
	}

	user, err := uc.service.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			respondConflict(c, "username or email already taken")
		case errors.Is(err, auth.ErrUsernameRequired),
			errors.Is(err, auth.ErrEmailInvalid),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "signup")
		}
		return
	}
	respondCreated(c, gin.H{"user": user})
}

// Signin exchanges credentials for a bearer token.
// POST /signin
func (uc *UsersController) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	user, token, err := uc.service.Signin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
			return
		}
		respondInternalError(c, err, "signin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
