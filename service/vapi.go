package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imroc/req/v3"

	"healthcall/config"
	"healthcall/logger"
	"healthcall/types"
	"healthcall/utils"
)

// APIError is a non-2xx answer from the Vapi API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vapi %s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, utils.Truncate(e.Body, 300))
}

// VapiClient Vapi REST API 客户端
type VapiClient struct {
	client *req.Client
}

// NewVapiClient 创建 Vapi 客户端
func NewVapiClient(cfg config.VapiConfig) *VapiClient {
	client := req.C().
		SetBaseURL(cfg.BaseURL).
		SetCommonBearerAuthToken(cfg.APIKey).
		SetUserAgent("healthcall/1.0").
		SetJsonMarshal(utils.Marshal).
		SetJsonUnmarshal(utils.Unmarshal)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &VapiClient{client: client}
}

// CreateCall creates a (possibly scheduled) outbound call.
func (v *VapiClient) CreateCall(ctx context.Context, call types.CreateCallRequest) (*types.Call, error) {
	var out types.Call
	if err := v.send(ctx, http.MethodPost, "/call", call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTool 创建工具资源
func (v *VapiClient) CreateTool(ctx context.Context, tool types.Tool) (*types.Tool, error) {
	var out types.Tool
	if err := v.send(ctx, http.MethodPost, "/tool", tool, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAssistant 创建助手
func (v *VapiClient) CreateAssistant(ctx context.Context, assistant types.Assistant) (*types.Assistant, error) {
	var out types.Assistant
	if err := v.send(ctx, http.MethodPost, "/assistant", assistant, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAssistant PATCHes an existing assistant in place.
func (v *VapiClient) UpdateAssistant(ctx context.Context, id string, assistant types.Assistant) (*types.Assistant, error) {
	assistant.ID = ""
	var out types.Assistant
	if err := v.send(ctx, http.MethodPatch, "/assistant/"+id, assistant, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePhoneNumber 申请号码并绑定助手
func (v *VapiClient) CreatePhoneNumber(ctx context.Context, number types.CreatePhoneNumberRequest) (*types.PhoneNumber, error) {
	var out types.PhoneNumber
	if err := v.send(ctx, http.MethodPost, "/phone-number", number, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VapiClient) send(ctx context.Context, method, path string, body, result any) error {
	logger.Debug("🔵 Vapi request | method=%s path=%s", method, path)
	logger.Verbose("  └─ Request Body:\n%s", utils.MarshalIndentToString(body))

	resp, err := v.client.R().
		SetContext(ctx).
		SetBody(body).
		SetSuccessResult(result).
		Send(method, path)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("⚠️  Vapi request cancelled | method=%s path=%s error=%v", method, path, ctx.Err())
			return ctx.Err()
		}
		logger.Error("❌ Vapi request failed | method=%s path=%s error=%v", method, path, err)
		return fmt.Errorf("vapi %s %s: %w", method, path, err)
	}

	if !resp.IsSuccessState() {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: resp.String()}
		logger.Warn("❌ Vapi HTTP error | method=%s path=%s status=%d", method, path, resp.StatusCode)
		logger.Verbose("  └─ Response: %s", apiErr.Body)
		return apiErr
	}

	logger.Debug("✅ Vapi response | method=%s path=%s status=%d", method, path, resp.StatusCode)
	logger.Verbose("  └─ Response: %s", resp.String())
	return nil
}
