package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Speelgoed").Valid())
	assert.False(t, Category("").Valid())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Mode")
	require.NoError(t, err)
	assert.Equal(t, CategoryFashion, c)

	_, err = ParseCategory("mode")
	assert.Error(t, err)

	_, err = ParseCategory("onbekend")
	assert.Error(t, err)
}

func TestProduct_Validate(t *testing.T) {
	valid := testProduct(1, "A", 10.00)
	assert.NoError(t, valid.Validate())

	sentinel := valid
	sentinel.Category = CategoryAll
	assert.Error(t, sentinel.Validate())

	unknown := valid
	unknown.Category = "Speelgoed"
	assert.Error(t, unknown.Validate())

	negative := valid
	negative.Price = -1
	assert.Error(t, negative.Validate())

	rated := valid
	rated.Rating = 5.1
	assert.Error(t, rated.Validate())
}
