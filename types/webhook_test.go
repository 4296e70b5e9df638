package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcall/utils"
)

func TestToolCallRequest_NestedAndFlatShapes(t *testing.T) {
	body := `{
		"message": {
			"type": "tool-calls",
			"toolCallList": [
				{"id": "call_1", "type": "function", "function": {"name": "log_health_status", "arguments": {"mood": "good"}}},
				{"id": "call_2", "functionName": "log_health_status", "arguments": "{\"mood\":\"fair\"}"},
				{"id": "call_3", "name": "schedule_followup"}
			]
		}
	}`

	var req ToolCallRequest
	require.NoError(t, utils.UnmarshalFromString(body, &req))
	require.Len(t, req.Message.ToolCallList, 3)

	first := req.Message.ToolCallList[0]
	assert.Equal(t, "call_1", first.ID)
	assert.Equal(t, "log_health_status", first.Function.Name)
	assert.Equal(t, ArgumentsDecoded, first.Function.Arguments.Kind())

	second := req.Message.ToolCallList[1]
	assert.Equal(t, "log_health_status", second.Function.Name)
	assert.Equal(t, ArgumentsRawJSON, second.Function.Arguments.Kind())
	params, err := second.Function.Arguments.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "fair", params["mood"])

	third := req.Message.ToolCallList[2]
	assert.Equal(t, "schedule_followup", third.Function.Name)
	assert.Equal(t, ArgumentsEmpty, third.Function.Arguments.Kind())
}

func TestToolCallRequest_MissingListDecodesEmpty(t *testing.T) {
	var req ToolCallRequest
	require.NoError(t, utils.UnmarshalFromString(`{"message": {}}`, &req))
	assert.Empty(t, req.Message.ToolCallList)
}

func TestToolCallResponse_JSONShape(t *testing.T) {
	out := utils.MarshalToString(ToolCallResponse{Results: []ToolResult{{ToolCallID: "c1", Result: "ok"}}})
	assert.JSONEq(t, `{"results":[{"toolCallId":"c1","result":"ok"}]}`, out)
}
