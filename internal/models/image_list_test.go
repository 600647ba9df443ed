package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListValueNormalizesNil(t *testing.T) {
	var l ImageList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", toString(v))
}

func TestImageListScan(t *testing.T) {
	var l ImageList
	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Empty(t, l)

	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, ImageList{"a", "b"}, l)

	require.NoError(t, l.Scan(`null`))
	assert.NotNil(t, l)
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
}

func TestImageListMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Images ImageList `json:"images"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"images":[]}`, string(out))
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}
