package units

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Decimals is the fixed precision of the stake-token.
const Decimals = 18

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrAmountOverflow    = errors.New("amount exceeds uint256")
)

var unit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// Unit returns 10^Decimals.
func Unit() *big.Int {
	return new(big.Int).Set(unit)
}

// ParseAmount converts a plain decimal string into base units, rounding half up
// at the first digit past Decimals. Signs, exponents and separators are rejected.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Wrap(ErrInvalidAmount, "empty input")
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	if !isDigits(intPart) || (hasDot && !isDigits(fracPart)) {
		return nil, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}

	roundUp := false
	if len(fracPart) > Decimals {
		roundUp = fracPart[Decimals] >= '5'
		fracPart = fracPart[:Decimals]
	}
	fracPart += strings.Repeat("0", Decimals-len(fracPart))

	v, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAmount, "%q", s)
	}
	if roundUp {
		v.Add(v, big.NewInt(1))
	}

	if v.Sign() <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveAmount, "%q", s)
	}
	if _, overflow := uint256.FromBig(v); overflow {
		return nil, errors.Wrapf(ErrAmountOverflow, "%q", s)
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatAmount renders base units with every significant fraction digit, so that
// ParseAmount(FormatAmount(v)) == v for any positive v.
func FormatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	intPart, fracPart := split(v)
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// FormatDisplay renders base units truncated (never rounded up) to precision
// fraction digits, for display only.
func FormatDisplay(v *big.Int, precision int) string {
	if v == nil {
		v = new(big.Int)
	}
	if precision <= 0 {
		intPart, _ := split(v)
		return intPart
	}
	if precision > Decimals {
		precision = Decimals
	}
	intPart, fracPart := split(v)
	return intPart + "." + fracPart[:precision]
}

// split returns the integer and the zero padded Decimals-wide fraction digits of |v|.
func split(v *big.Int) (string, string) {
	abs := new(big.Int).Abs(v)
	q, r := new(big.Int).QuoRem(abs, unit, new(big.Int))
	frac := r.String()
	frac = strings.Repeat("0", Decimals-len(frac)) + frac
	intPart := q.String()
	if v.Sign() < 0 {
		intPart = "-" + intPart
	}
	return intPart, frac
}
