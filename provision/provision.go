// Package provision creates the remote voice-platform resources the webhook relies on.
package provision

import (
	"context"
	"fmt"
	"strings"

	"healthcall/logger"
	"healthcall/prompt"
	"healthcall/types"
)

// Platform is the subset of the Vapi API used for provisioning.
type Platform interface {
	CreateTool(ctx context.Context, tool types.Tool) (*types.Tool, error)
	CreateAssistant(ctx context.Context, assistant types.Assistant) (*types.Assistant, error)
	UpdateAssistant(ctx context.Context, id string, assistant types.Assistant) (*types.Assistant, error)
	CreatePhoneNumber(ctx context.Context, number types.CreatePhoneNumberRequest) (*types.PhoneNumber, error)
}

// AssistantName is the display name of the check-in assistant.
const AssistantName = "Health Check-in"

// Provisioner 远端资源部署器
type Provisioner struct {
	platform Platform
}

// New 创建部署器
func New(platform Platform) *Provisioner {
	return &Provisioner{platform: platform}
}

// Result lists what was created or updated.
type Result struct {
	ToolIDs       map[string]string
	AssistantID   string
	PhoneNumberID string
	PhoneNumber   string
}

// EnvLines renders the values to paste into .env.
func (r Result) EnvLines() []string {
	var lines []string
	if r.AssistantID != "" {
		lines = append(lines, "VAPI_ASSISTANT_ID="+r.AssistantID)
	}
	if r.PhoneNumberID != "" {
		lines = append(lines, "VAPI_PHONE_NUMBER_ID="+r.PhoneNumberID)
	}
	return lines
}

// ToolURL is where the platform posts calls of tool name.
func ToolURL(serverURL, name string) string {
	return strings.TrimRight(serverURL, "/") + "/tool/" + name
}

// CreateTools creates one function tool per definition, each pointing at this server.
// Definitions are processed in order; the first failure stops the run.
func (p *Provisioner) CreateTools(ctx context.Context, serverURL string, defs []types.FunctionDef) (map[string]string, error) {
	if strings.TrimSpace(serverURL) == "" {
		return nil, fmt.Errorf("server URL is required to create tools")
	}

	ids := make(map[string]string, len(defs))
	for _, def := range defs {
		tool, err := p.platform.CreateTool(ctx, types.Tool{
			Type:     "function",
			Function: def,
			Server:   &types.ToolServer{URL: ToolURL(serverURL, def.Name)},
		})
		if err != nil {
			return ids, fmt.Errorf("create tool %s: %w", def.Name, err)
		}
		logger.Info("🔧 Tool created | name=%s id=%s", def.Name, tool.ID)
		ids[def.Name] = tool.ID
	}
	return ids, nil
}

// CheckInAssistant builds the check-in assistant definition.
func CheckInAssistant(toolIDs []string) types.Assistant {
	return types.Assistant{
		Name:         AssistantName,
		FirstMessage: prompt.CheckInFirstMessage,
		Model: &types.AssistantModel{
			Provider:    "openai",
			Model:       "gpt-4o",
			Temperature: 0.3,
			Messages:    []types.ModelMessage{{Role: "system", Content: prompt.CheckInSystemPrompt}},
			ToolIDs:     toolIDs,
		},
		Voice:          &types.AssistantVoice{Provider: "11labs", VoiceID: "paula"},
		EndCallMessage: "Thank you, take care. Goodbye.",
	}
}

// UpsertAssistant patches assistantID when set, otherwise creates a new assistant.
func (p *Provisioner) UpsertAssistant(ctx context.Context, assistantID string, toolIDs []string) (string, error) {
	assistant := CheckInAssistant(toolIDs)
	if assistantID != "" {
		updated, err := p.platform.UpdateAssistant(ctx, assistantID, assistant)
		if err != nil {
			return "", fmt.Errorf("update assistant %s: %w", assistantID, err)
		}
		logger.Info("🤖 Assistant updated | id=%s", updated.ID)
		return updated.ID, nil
	}

	created, err := p.platform.CreateAssistant(ctx, assistant)
	if err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	logger.Info("🤖 Assistant created | id=%s", created.ID)
	return created.ID, nil
}

// CreatePhoneNumber buys a platform number bound to the assistant.
func (p *Provisioner) CreatePhoneNumber(ctx context.Context, assistantID, areaCode string) (*types.PhoneNumber, error) {
	number, err := p.platform.CreatePhoneNumber(ctx, types.CreatePhoneNumberRequest{
		Provider:              "vapi",
		Name:                  AssistantName,
		AssistantID:           assistantID,
		NumberDesiredAreaCode: areaCode,
	})
	if err != nil {
		return nil, fmt.Errorf("create phone number: %w", err)
	}
	logger.Info("📞 Phone number created | id=%s number=%s", number.ID, number.Number)
	return number, nil
}

// All runs tools -> assistant -> phone number. Partial results are returned on failure.
func (p *Provisioner) All(ctx context.Context, serverURL, assistantID, areaCode string, defs []types.FunctionDef) (Result, error) {
	var result Result

	ids, err := p.CreateTools(ctx, serverURL, defs)
	result.ToolIDs = ids
	if err != nil {
		return result, err
	}

	toolIDs := make([]string, 0, len(defs))
	for _, def := range defs {
		toolIDs = append(toolIDs, ids[def.Name])
	}

	result.AssistantID, err = p.UpsertAssistant(ctx, assistantID, toolIDs)
	if err != nil {
		return result, err
	}

	number, err := p.CreatePhoneNumber(ctx, result.AssistantID, areaCode)
	if err != nil {
		return result, err
	}
	result.PhoneNumberID = number.ID
	result.PhoneNumber = number.Number
	return result, nil
}
