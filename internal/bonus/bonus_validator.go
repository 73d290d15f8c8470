package bonus

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go-bonus/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	CompanyEmailDomain = "astrolitetech.com"
	ReservedEmployeeID = "ATS0000"

	minNameLength = 3
	maxNameLength = 40
	amountScale   = 2
)

var (
	errAmountOutOfRange = errors.New("amount out of range")
	errAmountScale      = errors.New("amount has more than 2 decimal places")
	errMonthYearMissing = errors.New("month_year is empty")
)

var (
	employeeIDPattern   = regexp.MustCompile(`^ATS0\d{3}$`)
	employeeNamePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	companyEmailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@` + regexp.QuoteMeta(CompanyEmailDomain) + `$`)

	MaxAmount = decimal.NewFromInt(10_000_000)

	monthYearLayouts = []string{"January 2006", "Jan 2006"}

	bonusTypeSet = func() map[string]struct{} {
		set := make(map[string]struct{}, len(BonusTypes))
		for _, t := range BonusTypes {
			set[t] = struct{}{}
		}
		return set
	}()
)

// violationMessages is keyed by json field name; the validator reports
// fields in struct order, which is the order clients see.
var violationMessages = map[string]string{
	"employee_id":    "Employee ID must be ATS0 followed by 3 digits and cannot be ATS0000",
	"employee_name":  "Employee name must be 3-40 characters of letters separated by single spaces",
	"employee_email": "Employee email must be a valid @" + CompanyEmailDomain + " address",
	"bonus_type":     "Bonus type must be one of: " + strings.Join(BonusTypes, ", "),
	"amount":         "Amount must be a positive number not greater than 10000000 with at most 2 decimal places",
	"month_year":     "Month and year must be a valid month and year, e.g. January 2025",
	"reason":         "Reason must not exceed 200 characters",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(apperror.JSONTagName)

	rules := map[string]validator.Func{
		"employee_id":   func(fl validator.FieldLevel) bool { return IsValidEmployeeID(fl.Field().String()) },
		"employee_name": func(fl validator.FieldLevel) bool { return IsValidEmployeeName(fl.Field().String()) },
		"company_email": func(fl validator.FieldLevel) bool { return IsCompanyEmail(fl.Field().String()) },
		"bonus_type":    func(fl validator.FieldLevel) bool { return IsBonusType(fl.Field().String()) },
		"bonus_amount": func(fl validator.FieldLevel) bool {
			_, err := ParseAmount(fl.Field().String())
			return err == nil
		},
		"month_year": func(fl validator.FieldLevel) bool {
			_, err := ParseMonthYear(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// ValidateInput checks req against every field rule and returns one message
// per violated field, in field order. An empty result means req is valid.
func ValidateInput(req CreateBonusRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	return apperror.ValidationMessages(err, violationMessages)
}

func IsValidEmployeeID(id string) bool {
	return employeeIDPattern.MatchString(id) && id != ReservedEmployeeID
}

func IsValidEmployeeName(name string) bool {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return false
	}
	return employeeNamePattern.MatchString(name)
}

func IsCompanyEmail(email string) bool {
	return companyEmailPattern.MatchString(email)
}

func IsBonusType(t string) bool {
	_, ok := bonusTypeSet[t]
	return ok
}

// ParseAmount accepts a strictly positive amount no larger than MaxAmount
// with at most two decimal places.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, errAmountOutOfRange
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, errAmountOutOfRange
	}
	if !amount.Equal(amount.Round(amountScale)) {
		return decimal.Zero, errAmountScale
	}
	return amount, nil
}

// ParseMonthYear resolves "January 2025" (or "Jan 2025") to the first day of
// that month in UTC.
func ParseMonthYear(raw string) (time.Time, error) {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return time.Time{}, errMonthYearMissing
	}

	var lastErr error
	for _, layout := range monthYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FirstOfMonth(t.Year(), t.Month()), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// FormatMonthYear renders a stored month_year the way clients submit it.
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}
