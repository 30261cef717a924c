package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/services"
)

// RequestHandler handles capital request creation and listing.
type RequestHandler struct {
	requestService services.RequestServicer
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService services.RequestServicer) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// CreateRequestRequest represents the capital request payload. Amount is a
// pointer so a literal 0 is accepted while a missing field is still rejected.
type CreateRequestRequest struct {
	Type   string   `json:"type" binding:"required,notblank,max=100"`
	Amount *float64 `json:"amount" binding:"required"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CapitalRequestResponse represents one capital request in the list response.
type CapitalRequestResponse struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
}

// CreateRequest records a capital request
// @Summary     Create a capital request
// @Description Record a capital movement request with pending status
// @Tags        requests
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRequestRequest true "Capital request data"
// @Success     201 {object} MessageResponse "Request submitted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	investorID, err := getInvestorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.requestService.CreateRequest(investorID, req.Type, *req.Amount); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Request submitted"})
}

// ListRequests returns the investor's capital requests
// @Summary     List capital requests
// @Description List the authenticated investor's capital requests in creation order
// @Tags        requests
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} CapitalRequestResponse "Capital requests"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	investorID, err := getInvestorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	requests, err := h.requestService.ListRequests(investorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]CapitalRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, CapitalRequestResponse{
			Type:      request.Type,
			Amount:    request.Amount,
			Status:    request.Status,
			Timestamp: request.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, response)
}
