package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoicelab/accounting-backbone/internal/utils"
)

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "123.45", utils.FormatMinorUnits(12345, 2))
	assert.Equal(t, "0.01", utils.FormatMinorUnits(1, 2))
	assert.Equal(t, "0.00", utils.FormatMinorUnits(0, 2))
	assert.Equal(t, "-42.00", utils.FormatMinorUnits(-4200, 2))
	assert.Equal(t, "12345", utils.FormatMinorUnits(12345, 0))
	assert.Equal(t, "12.345", utils.FormatMinorUnits(12345, 3))
}
