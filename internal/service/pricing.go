package service

import (
	"github.com/shopspring/decimal"
)

// moneyExponent keeps enough digits of the binary value that a float just
// below a half cent is never mistaken for an exact tie.
const moneyExponent = -40

// RoundMoney rounds the exact binary value of v to cents; exact ties go to even.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, moneyExponent).RoundBank(2).InexactFloat64()
}

type Quote struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// NewQuote takes the raw float subtotal and the restaurant fee. The total is
// rounded from the unrounded subtotal, not from the rounded one.
func NewQuote(rawSubtotal, deliveryFee float64) Quote {
	return Quote{
		Subtotal:    RoundMoney(rawSubtotal),
		DeliveryFee: deliveryFee,
		Total:       RoundMoney(rawSubtotal + deliveryFee),
	}
}
