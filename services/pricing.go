package services

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Subtotal is the sum of unit price times quantity over all lines.
func Subtotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ApplyDiscount subtracts a percentage discount from total. Discount is a
// percentage in [1, 100]; 0 means no coupon.
func ApplyDiscount(total decimal.Decimal, discount int) decimal.Decimal {
	if discount <= 0 {
		return total
	}
	d := decimal.NewFromInt(int64(discount)).Div(oneHundred)
	return total.Sub(total.Mul(d))
}

// OrderTotal layers tax and shipping onto a discounted subtotal. The
// evaluation order is fixed: discount, then tax, then shipping subtraction.
func OrderTotal(subtotal decimal.Decimal, discount, tax int, shippingRate decimal.Decimal) decimal.Decimal {
	total := ApplyDiscount(subtotal, discount)
	if tax > 0 {
		t := decimal.NewFromInt(int64(tax)).Div(oneHundred)
		total = total.Sub(total.Mul(t))
	}
	return total.Sub(shippingRate)
}

// MinorUnits converts a decimal amount to provider minor units (cents),
// rounded to the nearest cent.
func MinorUnits(total decimal.Decimal) int64 {
	return total.Mul(oneHundred).Round(0).IntPart()
}
