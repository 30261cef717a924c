package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kheireldine/ai-investor-portal/internal/services"
)

// PortfolioHandler handles portfolio reads.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// PortfolioItemResponse represents one holding in the portfolio response.
type PortfolioItemResponse struct {
	Asset    string  `json:"asset"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

// GetPortfolio returns the investor's holdings
// @Summary     Get portfolio
// @Description List the authenticated investor's holdings in insertion order
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} PortfolioItemResponse "Holdings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	investorID, err := getInvestorID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.portfolioService.ListPortfolio(investorID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]PortfolioItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, PortfolioItemResponse{
			Asset:    item.Asset,
			Quantity: item.Quantity,
			Value:    item.Value,
		})
	}

	c.JSON(http.StatusOK, response)
}
