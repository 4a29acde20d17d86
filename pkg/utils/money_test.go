package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 0,05", FormatBRL(5))
	assert.Equal(t, "R$ 12,34", FormatBRL(1234))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(123456))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(123456789))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-1000))
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "abc", TruncateToken("abc"))
	assert.Equal(t, "vstWEUyF...", TruncateToken("vstWEUyFwEXYqe7z"))
}
