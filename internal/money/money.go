// Package money renders amounts as localized currency strings.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/bojanz/currency"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidLocale indicates the locale is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrInvalidCurrency indicates the currency is not a known ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Formatter formats amounts in one locale and currency.
type Formatter struct {
	tag       language.Tag
	code      string
	locale    currency.Locale
	formatter *currency.Formatter
}

// NewFormatter creates a formatter for a BCP 47 locale (e.g. "en-US", "ru-RU")
// and an ISO 4217 currency code (e.g. "USD", "RUB").
// Amounts always carry two fraction digits, whatever the currency's own precision.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
	}

	if !currency.IsValid(code) {
		return nil, fmt.Errorf("%w %q", ErrInvalidCurrency, code)
	}

	loc := currency.NewLocale(tag.String())
	cf := currency.NewFormatter(loc)
	cf.MinDigits = 2
	cf.MaxDigits = 2

	return &Formatter{
		tag:       tag,
		code:      code,
		locale:    loc,
		formatter: cf,
	}, nil
}

// Format renders v using the locale's currency pattern, e.g. "$57.50" or "57,50 ₽".
// Negative and non-finite values render as zero.
func (f *Formatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		v = 0
	}
	amount, err := currency.NewAmount(strconv.FormatFloat(v, 'f', -1, 64), f.code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", v, f.code)
	}
	return f.formatter.Format(amount)
}

// Symbol returns the currency symbol used in the formatter's locale.
func (f *Formatter) Symbol() string {
	if symbol, ok := currency.GetSymbol(f.code, f.locale); ok {
		return symbol
	}
	return f.code
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Currency returns the ISO 4217 code.
func (f *Formatter) Currency() string {
	return f.code
}
