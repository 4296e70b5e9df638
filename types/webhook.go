package types

import "healthcall/utils"

// ToolCallRequest is the webhook body sent by the voice platform for tool calls.
type ToolCallRequest struct {
	Message ToolCallMessage `json:"message"`
}

// ToolCallMessage carries the batch of tool calls.
type ToolCallMessage struct {
	Type         string     `json:"type,omitempty"`
	ToolCallList []ToolCall `json:"toolCallList"`
}

// ToolCall represents a function call made by the hosted agent
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type,omitempty"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction represents the function details in a tool call
type ToolCallFunction struct {
	Name      string    `json:"name"`
	Arguments Arguments `json:"arguments"`
}

// UnmarshalJSON accepts the nested platform shape and the flat
// {id, name|functionName, arguments} shape.
func (tc *ToolCall) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID           string            `json:"id"`
		Type         string            `json:"type"`
		Function     *ToolCallFunction `json:"function"`
		Name         string            `json:"name"`
		FunctionName string            `json:"functionName"`
		Arguments    Arguments         `json:"arguments"`
	}
	if err := utils.Unmarshal(data, &wire); err != nil {
		return err
	}

	tc.ID = wire.ID
	tc.Type = wire.Type
	if wire.Function != nil {
		tc.Function = *wire.Function
		return nil
	}

	tc.Function.Name = wire.FunctionName
	if tc.Function.Name == "" {
		tc.Function.Name = wire.Name
	}
	tc.Function.Arguments = wire.Arguments
	return nil
}

// ToolResult is the answer for a single tool call.
type ToolResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

// ToolCallResponse 工具调用响应, 每个调用对应一条结果
type ToolCallResponse struct {
	Results []ToolResult `json:"results"`
}
