package types

// FunctionDef defines a function's metadata
type FunctionDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// ToolOutput is what a tool handler hands back to the dispatcher.
type ToolOutput struct {
	Result string `json:"result"`
}
