package currency

import (
	"database/sql/driver"
	"errors"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
)

// Default is the currency every menu price is quoted in.
const Default = CurrencyINR

var ErrInvalidCurrency = errors.New("invalid currency")

func (c Currency) String() string {
	return string(c)
}

// Symbol returns the sign used on receipts and menu cards.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyINR:
		return "₹"
	default:
		return c.String()
	}
}

func (c Currency) Value() (driver.Value, error) {
	return c.String(), nil
}

func ParseCurrency(s string) (Currency, error) {
	switch s {
	case CurrencyINR.String():
		return CurrencyINR, nil
	default:
		return "", ErrInvalidCurrency
	}
}
