package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "number", input: `99.99`, want: 99.99},
		{name: "decimal string", input: `"1234.50"`, want: 1234.5},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "garbage string", input: `"abc"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), m.Float64(), 1e-9)
		})
	}
}

func TestProduct_DecodesAPIShape(t *testing.T) {
	body := `{
		"id": 7,
		"name": "Notebook",
		"description": "14 polegadas",
		"price": "3499.90",
		"stock": 4,
		"categoryId": 2,
		"category": {"id": 2, "name": "Eletrônicos"},
		"createdAt": "2024-03-05T14:30:00.000Z",
		"updatedAt": null
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, int64(7), p.ID)
	assert.InDelta(t, 3499.90, p.Price.Float64(), 1e-9)
	assert.Equal(t, "Eletrônicos", p.CategoryName())
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, 2024, p.CreatedAt.Year())
	assert.Nil(t, p.UpdatedAt)
}
