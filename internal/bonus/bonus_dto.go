package bonus

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

type CreateBonusRequest struct {
	EmployeeID    string      `json:"employee_id" validate:"employee_id"`
	EmployeeName  string      `json:"employee_name" validate:"employee_name"`
	EmployeeEmail string      `json:"employee_email" validate:"company_email"`
	BonusType     string      `json:"bonus_type" validate:"bonus_type"`
	Amount        AmountInput `json:"amount" validate:"bonus_amount"`
	MonthYear     string      `json:"month_year" validate:"month_year"`
	Reason        *string     `json:"reason" validate:"omitempty,max=200"`
}

// AmountInput keeps the raw text of the amount so that both `1500` and
// `"1500.50"` are accepted and validated the same way. Other JSON values keep
// their literal text and fail the amount rule.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	*a = AmountInput(looseText(data))
	return nil
}

var errBodyNotObject = errors.New("request body must be a JSON object")

// UnmarshalJSON decodes fields leniently: a value of the wrong JSON type is
// kept as its literal text so validation reports it with every other
// violation instead of failing the whole decode.
func (r *CreateBonusRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return errBodyNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = CreateBonusRequest{
		EmployeeID:    looseText(fields["employee_id"]),
		EmployeeName:  looseText(fields["employee_name"]),
		EmployeeEmail: looseText(fields["employee_email"]),
		BonusType:     looseText(fields["bonus_type"]),
		Amount:        AmountInput(looseText(fields["amount"])),
		MonthYear:     looseText(fields["month_year"]),
	}
	if raw, ok := fields["reason"]; ok && !isJSONNull(raw) {
		reason := looseText(raw)
		r.Reason = &reason
	}
	return nil
}

// looseText returns the decoded string for a JSON string, "" for null or a
// missing value, and the literal token text for anything else.
func looseText(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isJSONNull(raw) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

func isJSONNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

type BonusResponse struct {
	BonusID       string    `json:"bonus_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	BonusType     string    `json:"bonus_type"`
	Amount        string    `json:"amount"`
	MonthYear     string    `json:"month_year"`
	Reason        *string   `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}
