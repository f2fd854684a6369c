package bid

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	parts := []Part{
		{Name: "compressor", Quantity: 1, Cost: decimal.NewFromInt(300)},
		{Name: "refrigerant", Quantity: 2, Cost: decimal.NewFromInt(45)},
	}

	total := ComputeTotal(decimal.NewFromInt(90), decimal.NewFromInt(4), parts)

	assert.True(t, total.Equal(decimal.NewFromInt(750)), "total = %s", total)
}

func TestComputeTotalNoParts(t *testing.T) {
	total := ComputeTotal(decimal.NewFromFloat(62.50), decimal.NewFromInt(2), nil)
	assert.True(t, total.Equal(decimal.NewFromInt(125)))
}
