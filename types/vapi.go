package types

// ModelMessage 模型消息
type ModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantModel is the LLM block of a Vapi assistant.
type AssistantModel struct {
	Provider    string         `json:"provider"`
	Model       string         `json:"model"`
	Temperature float64        `json:"temperature,omitempty"`
	Messages    []ModelMessage `json:"messages,omitempty"`
	ToolIDs     []string       `json:"toolIds,omitempty"`
}

// AssistantVoice 语音配置
type AssistantVoice struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

// Assistant is both the create/patch payload and the transient assistant of a call.
type Assistant struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name,omitempty"`
	FirstMessage   string          `json:"firstMessage,omitempty"`
	Model          *AssistantModel `json:"model,omitempty"`
	Voice          *AssistantVoice `json:"voice,omitempty"`
	EndCallMessage string          `json:"endCallMessage,omitempty"`
}

// Customer 被呼叫方
type Customer struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

// SchedulePlan delays an outbound call until EarliestAt.
type SchedulePlan struct {
	EarliestAt string `json:"earliestAt"`
	LatestAt   string `json:"latestAt,omitempty"`
}

// CreateCallRequest POST /call
type CreateCallRequest struct {
	Name          string        `json:"name,omitempty"`
	PhoneNumberID string        `json:"phoneNumberId"`
	Customer      Customer      `json:"customer"`
	Assistant     *Assistant    `json:"assistant,omitempty"`
	AssistantID   string        `json:"assistantId,omitempty"`
	SchedulePlan  *SchedulePlan `json:"schedulePlan,omitempty"`
}

// Call Vapi 通话资源
type Call struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// ToolServer is where the platform posts tool calls.
type ToolServer struct {
	URL string `json:"url"`
}

// Tool is a Vapi tool resource.
type Tool struct {
	ID       string      `json:"id,omitempty"`
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
	Server   *ToolServer `json:"server,omitempty"`
}

// CreatePhoneNumberRequest POST /phone-number
type CreatePhoneNumberRequest struct {
	Provider              string `json:"provider"`
	Name                  string `json:"name,omitempty"`
	AssistantID           string `json:"assistantId,omitempty"`
	NumberDesiredAreaCode string `json:"numberDesiredAreaCode,omitempty"`
}

// PhoneNumber Vapi 号码资源
type PhoneNumber struct {
	ID          string `json:"id"`
	Number      string `json:"number,omitempty"`
	Name        string `json:"name,omitempty"`
	AssistantID string `json:"assistantId,omitempty"`
}
