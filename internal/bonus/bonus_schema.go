package bonus

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS bonuses (
	bonus_id       VARCHAR(10)   PRIMARY KEY,
	employee_id    VARCHAR(7)    NOT NULL,
	employee_name  VARCHAR(40)   NOT NULL,
	employee_email VARCHAR(100)  NOT NULL,
	bonus_type     VARCHAR(30)   NOT NULL CHECK (bonus_type IN ('Performance', 'Festival', 'Project Completion', 'Retention', 'Referral')),
	amount         NUMERIC(12,2) NOT NULL CHECK (amount > 0),
	month_year     DATE          NOT NULL,
	reason         VARCHAR(200),
	created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_bonuses_employee_id ON bonuses (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bonuses_created_at ON bonuses (created_at DESC)`,
}

// InitSchema creates the bonuses table and its indexes when missing. It is
// safe to run on every start.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("init bonuses schema: %w", err)
		}
	}
	return nil
}
