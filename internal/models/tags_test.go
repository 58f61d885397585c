package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagListValueFiltersEmptyEntries(t *testing.T) {
	t.Parallel()

	v, err := TagList{"alpha", "", "beta"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["alpha","beta"]`, v)
}

func TestTagListValueNil(t *testing.T) {
	t.Parallel()

	v, err := TagList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestTagListScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
		want  TagList
	}{
		{"valid json", `["a","b"]`, TagList{"a", "b"}},
		{"valid json bytes", []byte(`["x"]`), TagList{"x"}},
		{"empty entries dropped", `["a","","b"]`, TagList{"a", "b"}},
		{"malformed json", `not-json`, TagList{}},
		{"json object", `{"a":1}`, TagList{}},
		{"nil value", nil, TagList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagList
			require.NoError(t, got.Scan(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagListScanUnsupportedType(t *testing.T) {
	t.Parallel()

	var got TagList
	assert.Error(t, got.Scan(42))
}

func TestTagListMarshalJSONNilIsEmptyArray(t *testing.T) {
	t.Parallel()

	data, err := TagList(nil).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}
