package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypePerformance       = "Performance"
	TypeFestival          = "Festival"
	TypeProjectCompletion = "Project Completion"
	TypeRetention         = "Retention"
	TypeReferral          = "Referral"
)

// BonusTypes is the closed set accepted by validation and by the table CHECK.
var BonusTypes = []string{
	TypePerformance,
	TypeFestival,
	TypeProjectCompletion,
	TypeRetention,
	TypeReferral,
}

type Bonus struct {
	BonusID       string          `gorm:"column:bonus_id;primaryKey"`
	EmployeeID    string          `gorm:"column:employee_id"`
	EmployeeName  string          `gorm:"column:employee_name"`
	EmployeeEmail string          `gorm:"column:employee_email"`
	BonusType     string          `gorm:"column:bonus_type"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	MonthYear     time.Time       `gorm:"column:month_year;type:date"`
	Reason        *string         `gorm:"column:reason"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (Bonus) TableName() string {
	return "bonuses"
}
