package services

import (
	"gorm.io/gorm"

	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/models"
)

// portfolioService handles portfolio reads. Holdings are created only by
// the signup seed, so this service never writes.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// ListPortfolio returns the investor's holdings in insertion order.
func (s *portfolioService) ListPortfolio(investorID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := s.db.Where("investor_id = ?", investorID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}
