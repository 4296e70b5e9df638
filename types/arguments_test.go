package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcall/utils"
)

func TestArguments_StringAndObjectResolveIdentically(t *testing.T) {
	var fromString, fromObject Arguments
	require.NoError(t, utils.Unmarshal([]byte(`"{\"patientName\":\"Ana\",\"symptoms\":[\"cough\"],\"age\":42}"`), &fromString))
	require.NoError(t, utils.Unmarshal([]byte(`{"patientName":"Ana","symptoms":["cough"],"age":42}`), &fromObject))

	assert.Equal(t, ArgumentsRawJSON, fromString.Kind())
	assert.Equal(t, ArgumentsDecoded, fromObject.Kind())

	a, err := fromString.Resolve()
	require.NoError(t, err)
	b, err := fromObject.Resolve()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestArguments_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Params
		wantErr bool
	}{
		{name: "null", body: `null`, want: Params{}},
		{name: "empty string", body: `"  "`, want: Params{}},
		{name: "string null", body: `"null"`, want: Params{}},
		{name: "empty object", body: `{}`, want: Params{}},
		{name: "malformed string", body: `"{not json"`, wantErr: true},
		{name: "string holding array", body: `"[1,2]"`, wantErr: true},
		{name: "number", body: `42`, wantErr: true},
		{name: "array", body: `[1]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Arguments
			require.NoError(t, utils.Unmarshal([]byte(tt.body), &a))
			got, err := a.Resolve()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArguments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArguments_MarshalKeepsForm(t *testing.T) {
	raw, err := utils.Marshal(RawJSONArguments(`{"a":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `"{\"a\":1}"`, string(raw))

	obj, err := utils.Marshal(DecodedArguments(map[string]any{"a": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(obj))

	empty, err := utils.Marshal(Arguments{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(empty))
}
