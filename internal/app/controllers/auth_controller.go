// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/app/services"
	"github.com/yigit/collegeerp/internal/middleware"
)

// AuthController handles signup and login against the identity registry
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a student or faculty identity
// @Summary Register an identity
// @Description Creates a student or faculty identity. The user id is the credential presented in the auth header.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Identity to register"
// @Success 201 {object} dto.APIResponse{data=models.Identity} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or role not student/faculty"
// @Failure 409 {object} dto.ErrorResponse "User ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	identity, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Debug().Err(err).Str("userId", req.UserID).Msg("Signup rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewAPIResponse(identity)
	response.Message = "User registered successfully"
	ctx.JSON(http.StatusCreated, response)
}

// Login matches name and user id against the registry
// @Summary Log in
// @Description Matches name and user id. profileComplete reflects the linked student record for students.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Name and user id"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Name and ID are required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewAPIResponse(resp)
	response.Message = resp.Message
	ctx.JSON(http.StatusOK, response)
}
