package models

import "time"

// RequestStatusPending is the status every capital request starts in.
// No endpoint transitions a request out of it.
const RequestStatusPending = "pending"

// CapitalRequest represents an investor's ask to move capital
// (deposit, withdrawal, and so on).
type CapitalRequest struct {
	Base
	InvestorID uint      `gorm:"not null;index" json:"investor_id"`
	Type       string    `gorm:"not null" json:"type"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Status     string    `gorm:"not null;default:pending" json:"status"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}
