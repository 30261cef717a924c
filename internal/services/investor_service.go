package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kheireldine/ai-investor-portal/internal/config"
	apperrors "github.com/kheireldine/ai-investor-portal/internal/errors"
	"github.com/kheireldine/ai-investor-portal/internal/models"
)

// investorService handles investor registration, lookup, and credential
// verification.
type investorService struct {
	db   *gorm.DB
	seed []config.SeedHolding
}

// NewInvestorService creates a new InvestorServicer. The seed holdings are
// inserted for every new investor at signup.
func NewInvestorService(db *gorm.DB, seed []config.SeedHolding) InvestorServicer {
	return &investorService{db: db, seed: seed}
}

// CreateInvestor registers a new investor and seeds their demo portfolio.
// The investor row and the seed holdings are written in one transaction,
// so a failed seed never leaves a portfolio-less investor behind.
func (s *investorService) CreateInvestor(email, password, name string) (*models.Investor, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	email = strings.ToLower(email)

	// Pre-check for a friendly error; the unique index on email is the
	// real guarantee under concurrent signups.
	var count int64
	s.db.Model(&models.Investor{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	investor := &models.Investor{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(investor).Error; err != nil {
			return err
		}
		for _, holding := range s.seed {
			item := &models.PortfolioItem{
				InvestorID: investor.ID,
				Asset:      holding.Asset,
				Quantity:   holding.Quantity,
				Value:      holding.Value,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investor, nil
}

// GetInvestorByEmail retrieves an investor by email
func (s *investorService) GetInvestorByEmail(email string) (*models.Investor, error) {
	var investor models.Investor
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&investor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investor, nil
}

// GetInvestorByID retrieves an investor by ID
func (s *investorService) GetInvestorByID(id uint) (*models.Investor, error) {
	var investor models.Investor
	if err := s.db.First(&investor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investor, nil
}

// VerifyPassword checks if the provided password matches the stored hash.
// A malformed stored hash verifies as false rather than erroring.
func (s *investorService) VerifyPassword(investor *models.Investor, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(investor.Password), []byte(password))
	return err == nil
}
