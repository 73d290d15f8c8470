package bonus_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go-bonus/internal/bonus"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func validRequest() bonus.CreateBonusRequest {
	return bonus.CreateBonusRequest{
		EmployeeID:    "ATS0123",
		EmployeeName:  "Ravi Kumar",
		EmployeeEmail: "ravi.kumar@astrolitetech.com",
		BonusType:     bonus.TypePerformance,
		Amount:        "1500.50",
		MonthYear:     "January 2025",
		Reason:        strPtr("Quarterly target exceeded"),
	}
}

func TestValidateInput_Valid(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		assert.Empty(t, bonus.ValidateInput(validRequest()))
	})

	t.Run("reason omitted", func(t *testing.T) {
		req := validRequest()
		req.Reason = nil
		assert.Empty(t, bonus.ValidateInput(req))
	})

	t.Run("every bonus type", func(t *testing.T) {
		for _, bt := range bonus.BonusTypes {
			req := validRequest()
			req.BonusType = bt
			assert.Empty(t, bonus.ValidateInput(req), bt)
		}
	})

	t.Run("email domain is case-insensitive", func(t *testing.T) {
		req := validRequest()
		req.EmployeeEmail = "Ravi.Kumar@AstroliteTech.COM"
		assert.Empty(t, bonus.ValidateInput(req))
	})

	t.Run("boundary lengths", func(t *testing.T) {
		req := validRequest()
		req.EmployeeName = "Ana"
		req.Reason = strPtr(strings.Repeat("r", 200))
		assert.Empty(t, bonus.ValidateInput(req))

		req.EmployeeName = strings.Repeat("a", 40)
		assert.Empty(t, bonus.ValidateInput(req))
	})
}

func TestValidateInput_SingleViolation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *bonus.CreateBonusRequest)
		wantHas string
	}{
		{"reserved employee id", func(r *bonus.CreateBonusRequest) { r.EmployeeID = "ATS0000" }, "Employee ID"},
		{"employee id wrong prefix", func(r *bonus.CreateBonusRequest) { r.EmployeeID = "ATS1123" }, "Employee ID"},
		{"employee id too long", func(r *bonus.CreateBonusRequest) { r.EmployeeID = "ATS01234" }, "Employee ID"},
		{"employee id missing", func(r *bonus.CreateBonusRequest) { r.EmployeeID = "" }, "Employee ID"},
		{"name with digits", func(r *bonus.CreateBonusRequest) { r.EmployeeName = "Ravi 2" }, "Employee name"},
		{"name with double space", func(r *bonus.CreateBonusRequest) { r.EmployeeName = "Ravi  Kumar" }, "Employee name"},
		{"name too short", func(r *bonus.CreateBonusRequest) { r.EmployeeName = "Al" }, "Employee name"},
		{"name too long", func(r *bonus.CreateBonusRequest) { r.EmployeeName = strings.Repeat("a", 41) }, "Employee name"},
		{"email other domain", func(r *bonus.CreateBonusRequest) { r.EmployeeEmail = "ravi@gmail.com" }, "Employee email"},
		{"email subdomain", func(r *bonus.CreateBonusRequest) { r.EmployeeEmail = "ravi@mail.astrolitetech.com" }, "Employee email"},
		{"bonus type wrong case", func(r *bonus.CreateBonusRequest) { r.BonusType = "performance" }, "Bonus type"},
		{"bonus type unknown", func(r *bonus.CreateBonusRequest) { r.BonusType = "Holiday" }, "Bonus type"},
		{"amount zero", func(r *bonus.CreateBonusRequest) { r.Amount = "0" }, "Amount"},
		{"amount negative", func(r *bonus.CreateBonusRequest) { r.Amount = "-10" }, "Amount"},
		{"amount not numeric", func(r *bonus.CreateBonusRequest) { r.Amount = "ten" }, "Amount"},
		{"amount missing", func(r *bonus.CreateBonusRequest) { r.Amount = "" }, "Amount"},
		{"amount too precise", func(r *bonus.CreateBonusRequest) { r.Amount = "10.555" }, "Amount"},
		{"amount too large", func(r *bonus.CreateBonusRequest) { r.Amount = "10000000.01" }, "Amount"},
		{"amount boolean literal", func(r *bonus.CreateBonusRequest) { r.Amount = "true" }, "Amount"},
		{"amount object literal", func(r *bonus.CreateBonusRequest) { r.Amount = `{"value":10}` }, "Amount"},
		{"month year missing", func(r *bonus.CreateBonusRequest) { r.MonthYear = "" }, "Month and year"},
		{"month year unknown month", func(r *bonus.CreateBonusRequest) { r.MonthYear = "Smarch 2025" }, "Month and year"},
		{"month year numeric", func(r *bonus.CreateBonusRequest) { r.MonthYear = "2025-01" }, "Month and year"},
		{"reason too long", func(r *bonus.CreateBonusRequest) { r.Reason = strPtr(strings.Repeat("x", 201)) }, "Reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			got := bonus.ValidateInput(req)

			if assert.Len(t, got, 1) {
				assert.Contains(t, got[0], tt.wantHas)
			}
		})
	}
}

func TestValidateInput_MultipleViolationsKeepFieldOrder(t *testing.T) {
	req := bonus.CreateBonusRequest{
		EmployeeID:    "ATS0000",
		EmployeeName:  "R2",
		EmployeeEmail: "ravi@example.com",
		BonusType:     "Bonus",
		Amount:        "-1",
		MonthYear:     "someday",
		Reason:        strPtr(strings.Repeat("x", 250)),
	}

	got := bonus.ValidateInput(req)

	if assert.Len(t, got, 7) {
		assert.Contains(t, got[0], "Employee ID")
		assert.Contains(t, got[1], "Employee name")
		assert.Contains(t, got[2], "Employee email")
		assert.Contains(t, got[3], "Bonus type")
		assert.Contains(t, got[4], "Amount")
		assert.Contains(t, got[5], "Month and year")
		assert.Contains(t, got[6], "Reason")
	}
}

func TestAmountInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want bonus.AmountInput
	}{
		{`{"amount": 1500}`, "1500"},
		{`{"amount": 1500.25}`, "1500.25"},
		{`{"amount": "2000.10"}`, "2000.10"},
		{`{"amount": null}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		var req bonus.CreateBonusRequest
		err := json.Unmarshal([]byte(tt.body), &req)

		assert.NoError(t, err, tt.body)
		assert.Equal(t, tt.want, req.Amount, tt.body)
	}

	var req bonus.CreateBonusRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"amount": true}`), &req))
	assert.Equal(t, bonus.AmountInput("true"), req.Amount)
}

func TestCreateBonusRequest_UnmarshalJSON(t *testing.T) {
	t.Run("wrong types keep their literal text", func(t *testing.T) {
		var req bonus.CreateBonusRequest
		err := json.Unmarshal([]byte(`{"employee_id":123,"employee_name":["Ravi"],"reason":false,"month_year":null}`), &req)

		assert.NoError(t, err)
		assert.Equal(t, "123", req.EmployeeID)
		assert.Equal(t, `["Ravi"]`, req.EmployeeName)
		assert.Equal(t, "", req.MonthYear)
		if assert.NotNil(t, req.Reason) {
			assert.Equal(t, "false", *req.Reason)
		}
	})

	t.Run("null reason stays absent", func(t *testing.T) {
		var req bonus.CreateBonusRequest
		assert.NoError(t, json.Unmarshal([]byte(`{"reason":null}`), &req))
		assert.Nil(t, req.Reason)
	})

	t.Run("non-object bodies are rejected", func(t *testing.T) {
		for _, body := range []string{`null`, `[]`, `"text"`, `42`} {
			var req bonus.CreateBonusRequest
			assert.Error(t, json.Unmarshal([]byte(body), &req), body)
		}
	})
}

func TestParseMonthYear(t *testing.T) {
	want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"March 2025", "march 2025", "Mar 2025", "  March   2025 "} {
		got, err := bonus.ParseMonthYear(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := bonus.ParseMonthYear("2025 March")
	assert.Error(t, err)

	assert.Equal(t, "March 2025", bonus.FormatMonthYear(want))
}

func TestParseAmount(t *testing.T) {
	amount, err := bonus.ParseAmount(" 2500.5 ")
	assert.NoError(t, err)
	assert.Equal(t, "2500.50", amount.StringFixed(2))

	_, err = bonus.ParseAmount("1e9")
	assert.Error(t, err)
}
