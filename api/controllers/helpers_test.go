package controllers

import "github.com/shopspring/decimal"

func priceFromInt(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}
