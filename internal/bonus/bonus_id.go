package bonus

import (
	"fmt"
	"strconv"
	"strings"

	bonuserrors "go-bonus/internal/bonus/errors"
)

const (
	BonusIDPrefix = "BON"
	bonusIDDigits = 4
	maxBonusSeq   = 9999
)

var FirstBonusID = FormatBonusID(1)

func FormatBonusID(seq int) string {
	return fmt.Sprintf("%s%0*d", BonusIDPrefix, bonusIDDigits, seq)
}

// NextBonusID derives the identifier following maxID, the greatest stored
// bonus_id. Lexicographic and numeric order agree because every id has the
// same prefix and zero padding; ids past BON9999 are refused rather than
// widened so that invariant keeps holding.
func NextBonusID(maxID string) (string, error) {
	if maxID == "" {
		return FirstBonusID, nil
	}

	digits, ok := strings.CutPrefix(maxID, BonusIDPrefix)
	if !ok || len(digits) != bonusIDDigits {
		return "", fmt.Errorf("unexpected bonus_id %q: %w", maxID, bonuserrors.ErrMalformedBonusID)
	}

	seq, err := strconv.Atoi(digits)
	if err != nil || seq < 0 {
		return "", fmt.Errorf("unexpected bonus_id %q: %w", maxID, bonuserrors.ErrMalformedBonusID)
	}

	if seq >= maxBonusSeq {
		return "", bonuserrors.ErrBonusIDExhausted
	}

	return FormatBonusID(seq + 1), nil
}
