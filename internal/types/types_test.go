package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexListAcceptsSingleValueOrArray(t *testing.T) {
	var body struct {
		Images FlexList[string] `json:"images"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"images":"https://img/1.png"}`), &body))
	assert.Equal(t, []string{"https://img/1.png"}, body.Images.Slice())

	require.NoError(t, json.Unmarshal([]byte(`{"images":["b","a"]}`), &body))
	assert.Equal(t, []string{"b", "a"}, body.Images.Slice())

	body.Images = nil
	require.NoError(t, json.Unmarshal([]byte(`{"images":null}`), &body))
	assert.Nil(t, body.Images.Slice())
}

func TestFlexFloat64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "number", input: `250000`, want: 250000},
		{name: "fraction", input: `12.5`, want: 12.5},
		{name: "numeric string", input: `"1500000"`, want: 1500000},
		{name: "padded string", input: `" 3.25 "`, want: 3.25},
		{name: "word", input: `"cheap"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat64
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Float64())
		})
	}
}

func TestCustomErrorMessage(t *testing.T) {
	err := &CustomError{Code: 422, Message: "Invalid input", Type: "validation"}
	assert.Equal(t, "validation (422): Invalid input", err.Error())

	built := NewCustomError(400, "version", "Unsupported API version %q", "2.0")
	assert.Equal(t, 400, built.Code)
	assert.Equal(t, `Unsupported API version "2.0"`, built.Message)
}

func TestFlexListMarshalsAsArray(t *testing.T) {
	out, err := json.Marshal(struct {
		Images FlexList[string] `json:"images"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"images":[]}`, string(out))
}
