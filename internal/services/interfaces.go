package services

import (
	"context"

	"github.com/kheireldine/ai-investor-portal/internal/models"
)

// InvestorServicer defines the contract for investor-related business logic.
type InvestorServicer interface {
	CreateInvestor(email, password, name string) (*models.Investor, error)
	GetInvestorByEmail(email string) (*models.Investor, error)
	GetInvestorByID(id uint) (*models.Investor, error)
	VerifyPassword(investor *models.Investor, password string) bool
}

// PortfolioServicer defines the contract for portfolio reads.
type PortfolioServicer interface {
	ListPortfolio(investorID uint) ([]models.PortfolioItem, error)
}

// RequestServicer defines the contract for capital request operations.
type RequestServicer interface {
	CreateRequest(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error)
	ListRequests(investorID uint) ([]models.CapitalRequest, error)
}

// Generator defines the contract for the upstream text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
