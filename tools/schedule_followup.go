package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthcall/logger"
	"healthcall/prompt"
	"healthcall/service"
	"healthcall/types"
)

// ScheduleFollowUpName 工具名
const ScheduleFollowUpName = "schedule_followup"

// CallScheduler creates outbound call resources on the voice platform.
type CallScheduler interface {
	CreateCall(ctx context.Context, call types.CreateCallRequest) (*types.Call, error)
}

// FollowUpAgent configures the transient agent defined for each scheduled call.
type FollowUpAgent struct {
	ModelProvider string
	Model         string
	VoiceProvider string
	VoiceID       string
}

// DefaultFollowUpAgent 默认的回访助手模型与语音
var DefaultFollowUpAgent = FollowUpAgent{
	ModelProvider: "openai",
	Model:         "gpt-4o",
	VoiceProvider: "11labs",
	VoiceID:       "paula",
}

// followUpLayouts are tried in order; layouts without a zone are read as UTC.
var followUpLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ScheduleFollowUp schedules a future call with a freshly defined agent.
// followUpDate is an absolute ISO-8601 timestamp and is not checked to be in the future.
type ScheduleFollowUp struct {
	calls         CallScheduler
	phoneNumberID string
	agent         FollowUpAgent
}

// NewScheduleFollowUp 创建 schedule_followup 处理器
func NewScheduleFollowUp(calls CallScheduler, phoneNumberID string, agent FollowUpAgent) *ScheduleFollowUp {
	return &ScheduleFollowUp{calls: calls, phoneNumberID: phoneNumberID, agent: agent}
}

func (s *ScheduleFollowUp) Name() string { return ScheduleFollowUpName }

func (s *ScheduleFollowUp) Definition() types.FunctionDef {
	return types.FunctionDef{
		Name:        ScheduleFollowUpName,
		Description: "Schedule a follow-up phone call to the patient at a specific date and time.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"patientName":  map[string]interface{}{"type": "string", "description": "Full name of the patient."},
				"patientPhone": map[string]interface{}{"type": "string", "description": "Patient phone number in E.164 format, e.g. +15551234567."},
				"followUpDate": map[string]interface{}{"type": "string", "format": "date-time", "description": "When to call, as an ISO-8601 timestamp with timezone."},
				"reason":       map[string]interface{}{"type": "string", "description": "Why the follow-up is needed."},
			},
			"required": []string{"patientName", "patientPhone", "followUpDate", "reason"},
		},
	}
}

// Handle submits the scheduled call. A non-2xx answer from the platform is a result;
// transport failures are returned as errors.
func (s *ScheduleFollowUp) Handle(ctx context.Context, params types.Params) (types.ToolOutput, error) {
	req, err := s.parse(params)
	if err != nil {
		logger.Warn("⚠️  schedule_followup rejected parameters | error=%v", err)
		return failure("%v", err), nil
	}

	earliestAt := req.FollowUpDate.UTC().Format(time.RFC3339Nano)
	call, err := s.calls.CreateCall(ctx, s.buildCall(req, earliestAt))
	if err != nil {
		var apiErr *service.APIError
		if errors.As(err, &apiErr) {
			return failure("could not schedule the follow-up call (HTTP %d): %s", apiErr.StatusCode, apiErr.Body), nil
		}
		return types.ToolOutput{}, fmt.Errorf("schedule follow-up call: %w", err)
	}

	logger.Info("📅 Follow-up call scheduled | call_id=%s earliest_at=%s", call.ID, earliestAt)
	return types.ToolOutput{
		Result: fmt.Sprintf("Follow-up call scheduled for %s at %s. Call ID: %s.", req.PatientName, earliestAt, call.ID),
	}, nil
}

func (s *ScheduleFollowUp) parse(params types.Params) (types.FollowUpRequest, error) {
	fields, missing := requireStrings(params, "patientName", "patientPhone", "followUpDate", "reason")
	if missing != "" {
		return types.FollowUpRequest{}, fmt.Errorf("%s is required", missing)
	}
	when, err := parseFollowUpDate(fields["followUpDate"])
	if err != nil {
		return types.FollowUpRequest{}, err
	}
	return types.FollowUpRequest{
		PatientName:  fields["patientName"],
		PatientPhone: fields["patientPhone"],
		FollowUpDate: when,
		Reason:       fields["reason"],
	}, nil
}

func (s *ScheduleFollowUp) buildCall(req types.FollowUpRequest, earliestAt string) types.CreateCallRequest {
	return types.CreateCallRequest{
		Name:          "Follow-up: " + req.PatientName,
		PhoneNumberID: s.phoneNumberID,
		Customer: types.Customer{
			Number: req.PatientPhone,
			Name:   req.PatientName,
		},
		Assistant: &types.Assistant{
			Name:         "Health follow-up",
			FirstMessage: prompt.FollowUpFirstMessage(req.PatientName),
			Model: &types.AssistantModel{
				Provider: s.agent.ModelProvider,
				Model:    s.agent.Model,
				Messages: []types.ModelMessage{
					{Role: "system", Content: prompt.FollowUpSystemPrompt(req.PatientName, req.Reason)},
				},
			},
			Voice: &types.AssistantVoice{
				Provider: s.agent.VoiceProvider,
				VoiceID:  s.agent.VoiceID,
			},
		},
		SchedulePlan: &types.SchedulePlan{EarliestAt: earliestAt},
	}
}

func parseFollowUpDate(value string) (time.Time, error) {
	for _, layout := range followUpLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("followUpDate must be an ISO-8601 timestamp such as 2025-06-01T15:00:00Z (got %q)", value)
}
