package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kheireldine/ai-investor-portal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestInvestor creates an investor with a hashed password and unique email.
func CreateTestInvestor(t *testing.T, db *gorm.DB) *models.Investor {
	t.Helper()
	email := fmt.Sprintf("investor%d@test.com", nextID())
	return CreateTestInvestorWithEmail(t, db, email)
}

// CreateTestInvestorWithEmail creates an investor with the given email.
// The password is always "password123".
func CreateTestInvestorWithEmail(t *testing.T, db *gorm.DB, email string) *models.Investor {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	investor := &models.Investor{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test Investor %d", nextID()),
	}
	if err := db.Create(investor).Error; err != nil {
		t.Fatalf("failed to create test investor: %v", err)
	}
	return investor
}

// CreateTestPortfolioItem creates a holding for the given investor.
func CreateTestPortfolioItem(t *testing.T, db *gorm.DB, investorID uint, asset string, quantity, value float64) *models.PortfolioItem {
	t.Helper()

	item := &models.PortfolioItem{
		InvestorID: investorID,
		Asset:      asset,
		Quantity:   quantity,
		Value:      value,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test portfolio item: %v", err)
	}
	return item
}

// CreateTestCapitalRequest creates a pending capital request for the given investor.
func CreateTestCapitalRequest(t *testing.T, db *gorm.DB, investorID uint, requestType string, amount float64) *models.CapitalRequest {
	t.Helper()

	request := &models.CapitalRequest{
		InvestorID: investorID,
		Type:       requestType,
		Amount:     amount,
		Status:     models.RequestStatusPending,
		Timestamp:  time.Now().UTC(),
	}
	if err := db.Create(request).Error; err != nil {
		t.Fatalf("failed to create test capital request: %v", err)
	}
	return request
}
