package models

// PortfolioItem represents one holding belonging to an investor.
// Rows are created once at signup and never updated.
type PortfolioItem struct {
	Base
	InvestorID uint    `gorm:"not null;index" json:"investor_id"`
	Asset      string  `gorm:"not null" json:"asset"`
	Quantity   float64 `gorm:"not null" json:"quantity"`
	Value      float64 `gorm:"not null" json:"value"`
}
