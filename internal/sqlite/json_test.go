package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "nil payload becomes empty mapping",
			in:   nil,
			want: map[string]any{},
		},
		{
			name: "flat mapping",
			in:   map[string]any{"value": "erd1abc"},
			want: map[string]any{"value": "erd1abc"},
		},
		{
			name: "nested structure",
			in: map[string]any{
				"token": map[string]any{"identifier": "GLD-abcdef", "decimals": float64(18)},
				"tags":  []any{"a", "b"},
			},
			want: map[string]any{
				"token": map[string]any{"identifier": "GLD-abcdef", "decimals": float64(18)},
				"tags":  []any{"a", "b"},
			},
		},
		{
			name: "list",
			in:   []any{float64(1), float64(2), float64(3)},
			want: []any{float64(1), float64(2), float64(3)},
		},
		{
			name: "bare string",
			in:   "erd1abc",
			want: "erd1abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := serializeItem(tt.in)
			require.NoError(t, err)

			out, err := deserializeItem(text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDeserializeEmptyText(t *testing.T) {
	out, err := deserializeItem("")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, out)
}

func TestDeserializeIntoTypedShape(t *testing.T) {
	text, err := serializeItem([]map[string]any{{"identifier": "GLD-abcdef", "balance": "500"}})
	require.NoError(t, err)

	var dest []struct {
		Identifier string `json:"identifier"`
		Balance    string `json:"balance"`
	}
	require.NoError(t, deserializeInto(text, &dest))
	require.Len(t, dest, 1)
	assert.Equal(t, "GLD-abcdef", dest[0].Identifier)
	assert.Equal(t, "500", dest[0].Balance)
}
