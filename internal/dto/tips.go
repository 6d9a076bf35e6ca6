package dto

import "github.com/shopspring/decimal"

// SetTipsRequest sets every assignment's tip share on a shift. Repeated
// calls overwrite, they never accumulate.
type SetTipsRequest struct {
	PerPersonAmount decimal.Decimal `json:"perPersonAmount" binding:"required"`
}
