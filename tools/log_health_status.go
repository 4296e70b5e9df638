package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthcall/logger"
	"healthcall/service"
	"healthcall/types"
)

// LogHealthStatusName 工具名
const LogHealthStatusName = "log_health_status"

// SheetAppender is the append-only tabular store behind the health log.
type SheetAppender interface {
	AppendRow(ctx context.Context, row []interface{}) (string, error)
}

// LogHealthStatus appends one health-status row per call. Repeated calls create duplicate rows.
type LogHealthStatus struct {
	store SheetAppender
	now   func() time.Time
}

// NewLogHealthStatus 创建 log_health_status 处理器
func NewLogHealthStatus(store SheetAppender) *LogHealthStatus {
	return &LogHealthStatus{store: store, now: time.Now}
}

func (l *LogHealthStatus) Name() string { return LogHealthStatusName }

func (l *LogHealthStatus) Definition() types.FunctionDef {
	return types.FunctionDef{
		Name:        LogHealthStatusName,
		Description: "Record the patient's current health status (symptoms, mood and notes) in the care team's health log.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"patientName":  map[string]interface{}{"type": "string", "description": "Full name of the patient."},
				"patientPhone": map[string]interface{}{"type": "string", "description": "Patient phone number in E.164 format, e.g. +15551234567."},
				"symptoms": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Symptoms the patient reported; empty if none.",
				},
				"mood":  map[string]interface{}{"type": "string", "enum": []string{"good", "fair", "poor"}, "description": "Overall mood as rated by the patient."},
				"notes": map[string]interface{}{"type": "string", "description": "Anything else the care team should know."},
			},
			"required": []string{"patientName", "patientPhone", "symptoms", "mood"},
		},
	}
}

// Handle validates the parameters, stamps the record and appends it.
// Store failures are returned as results, never as errors.
func (l *LogHealthStatus) Handle(ctx context.Context, params types.Params) (types.ToolOutput, error) {
	record, err := l.parse(params)
	if err != nil {
		logger.Warn("⚠️  log_health_status rejected parameters | error=%v", err)
		return failure("%v", err), nil
	}

	if _, err := l.store.AppendRow(ctx, record.Row()); err != nil {
		if errors.Is(err, service.ErrSheetsAuth) {
			return failure("could not authenticate with the health log: %v", err), nil
		}
		return failure("could not save the health status: %v", err), nil
	}

	symptoms := "none reported"
	if len(record.Symptoms) > 0 {
		symptoms = strings.Join(record.Symptoms, ", ")
	}
	return types.ToolOutput{
		Result: fmt.Sprintf("Health status logged for %s. Symptoms: %s. Mood: %s.", record.PatientName, symptoms, record.Mood),
	}, nil
}

func (l *LogHealthStatus) parse(params types.Params) (types.HealthStatusRecord, error) {
	fields, missing := requireStrings(params, "patientName", "patientPhone", "mood")
	if missing != "" {
		return types.HealthStatusRecord{}, fmt.Errorf("%s is required", missing)
	}
	if !params.Has("symptoms") {
		return types.HealthStatusRecord{}, fmt.Errorf("symptoms is required")
	}
	symptoms, err := params.StringSlice("symptoms")
	if err != nil {
		return types.HealthStatusRecord{}, err
	}
	mood, err := types.ParseMood(fields["mood"])
	if err != nil {
		return types.HealthStatusRecord{}, err
	}
	notes, _ := params.String("notes")

	return types.HealthStatusRecord{
		PatientName:  fields["patientName"],
		PatientPhone: fields["patientPhone"],
		Symptoms:     symptoms,
		Mood:         mood,
		Notes:        notes,
		Timestamp:    l.now(),
	}, nil
}
