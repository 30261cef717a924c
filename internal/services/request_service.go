package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/models"
)

// requestService handles capital movement requests.
type requestService struct {
	db *gorm.DB
}

// NewRequestService creates a new RequestServicer.
func NewRequestService(db *gorm.DB) RequestServicer {
	return &requestService{db: db}
}

// CreateRequest records a capital request for the investor. Requests start
// in the pending status and are timestamped with the current UTC time.
func (s *requestService) CreateRequest(investorID uint, requestType string, amount float64) (*models.CapitalRequest, error) {
	if requestType == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "request type is required")
	}

	request := &models.CapitalRequest{
		InvestorID: investorID,
		Type:       requestType,
		Amount:     amount,
		Status:     models.RequestStatusPending,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return request, nil
}

// ListRequests returns the investor's capital requests in creation order.
func (s *requestService) ListRequests(investorID uint) ([]models.CapitalRequest, error) {
	var requests []models.CapitalRequest
	if err := s.db.Where("investor_id = ?", investorID).Order("id ASC").Find(&requests).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return requests, nil
}
