package model

import "github.com/shopspring/decimal"

// Payout выплата по множителю: floor(bet * m)
func Payout(bet int, m decimal.Decimal) int {
	if m.Sign() <= 0 || bet <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(bet)).Mul(m).Floor().IntPart())
}

// Truncate2 отбрасывает знаки множителя после второго
func Truncate2(m decimal.Decimal) decimal.Decimal {
	return m.Truncate(2)
}
