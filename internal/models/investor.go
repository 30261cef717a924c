package models

// Investor represents a registered investor. The password column stores
// a bcrypt hash, never the plaintext.
type Investor struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`

	Portfolio []PortfolioItem  `gorm:"foreignKey:InvestorID" json:"portfolio,omitempty"`
	Requests  []CapitalRequest `gorm:"foreignKey:InvestorID" json:"requests,omitempty"`
}
