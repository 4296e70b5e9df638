package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_String(t *testing.T) {
	p := Params{"name": "  Ana ", "age": 3.0}

	v, ok := p.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)

	_, ok = p.String("age")
	assert.False(t, ok)
	_, ok = p.String("missing")
	assert.False(t, ok)
}

func TestParams_StringSlice(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    []string
		wantErr bool
	}{
		{name: "list", value: []any{"cough", " fever "}, want: []string{"cough", "fever"}},
		{name: "empty list", value: []any{}, want: []string{}},
		{name: "comma string", value: "cough, fever,", want: []string{"cough", "fever"}},
		{name: "typed slice", value: []string{"a"}, want: []string{"a"}},
		{name: "non string item", value: []any{"a", 1.0}, wantErr: true},
		{name: "number", value: 1.0, wantErr: true},
		{name: "null", value: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Params{"symptoms": tt.value}.StringSlice("symptoms")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParams_Has(t *testing.T) {
	p := Params{"symptoms": []any{}}
	assert.True(t, p.Has("symptoms"))
	assert.False(t, p.Has("notes"))
}
