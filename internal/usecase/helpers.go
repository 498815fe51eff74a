package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Clock returns the current time. Tests swap it for a fixed one.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }

func newID() string { return uuid.NewString() }

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// mul multiplies two amounts without float drift.
func mul(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).InexactFloat64()
}

// amountSum accumulates money amounts as decimals.
type amountSum struct {
	total decimal.Decimal
}

func (s *amountSum) add(v float64) {
	s.total = s.total.Add(decimal.NewFromFloat(v))
}

func (s *amountSum) value() float64 {
	return s.total.InexactFloat64()
}

func decimalSub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}
