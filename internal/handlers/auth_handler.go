package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/middleware"
	"github.com/kheireldine/ai-investor-portal/internal/services"
)

// AuthHandler handles signup, login, and profile requests.
type AuthHandler struct {
	investorService services.InvestorServicer
	tokens          *middleware.TokenManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(investorService services.InvestorServicer, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{investorService: investorService, tokens: tokens}
}

// SignupRequest represents the signup request payload. No password policy
// is enforced beyond presence.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,notblank,max=255"`
}

// LoginRequest represents the OAuth2-style password form posted to /token.
// The username field carries the investor's email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ProfileResponse represents the investor data in a response.
type ProfileResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse represents an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup handles investor registration
// @Summary     Register a new investor
// @Description Register a new investor and seed their demo portfolio
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Investor registration data"
// @Success     201 {object} ProfileResponse "Investor registered"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	investor, err := h.investorService.CreateInvestor(req.Email, req.Password, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ProfileResponse{
		Email: investor.Email,
		Name:  investor.Name,
	})
}

// Login handles token issuance
// @Summary     Issue a bearer token
// @Description Authenticate an investor with a password form and issue a bearer token
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Investor email"
// @Param       password formData string true "Password"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	// A missing investor and a wrong password produce the same generic
	// response; the caller learns nothing about which one failed.
	investor, err := h.investorService.GetInvestorByEmail(req.Username)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.investorService.VerifyPassword(investor, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.GenerateAccessToken(investor)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GetProfile returns the investor's profile
// @Summary     Get investor profile
// @Description Get the authenticated investor's email and display name
// @Tags        investor
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ProfileResponse "Investor profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	investorID, err := getInvestorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	investor, err := h.investorService.GetInvestorByID(investorID)
	if err != nil {
		// A valid token whose investor no longer exists is an auth
		// failure, not a lookup failure.
		if err == apperrors.ErrInvestorNotFound {
			respondWithError(c, apperrors.ErrUnauthorized)
			return
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Email: investor.Email,
		Name:  investor.Name,
	})
}
