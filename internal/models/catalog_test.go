package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestListingFreeTextColumnsAreUnbounded(t *testing.T) {
	s, err := schema.Parse(&Listing{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Title", "Details", "FacebookLink"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Zero(t, field.Size, "%s should not carry a length limit", name)
	}

	// Indexed columns keep a bounded length so every dialect can index them
	assert.Equal(t, 255, s.LookUpField("Category").Size)
}

func TestCategoryNameIsBounded(t *testing.T) {
	s, err := schema.Parse(&Category{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, 255, s.LookUpField("Name").Size)
}
