package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	names, err := DefaultCategories()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUBG Mobile",
		"nick dưới 20 triệu",
		"nick dưới 30 triệu",
		"nick vip trên 30 triệu",
	}, names)
}
