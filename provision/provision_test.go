package provision

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcall/types"
)

type fakePlatform struct {
	tools     []types.Tool
	created   []types.Assistant
	updated   map[string]types.Assistant
	numbers   []types.CreatePhoneNumberRequest
	failTool  string
	failPhone bool
}

func (f *fakePlatform) CreateTool(_ context.Context, tool types.Tool) (*types.Tool, error) {
	if tool.Function.Name == f.failTool {
		return nil, errors.New("HTTP 400")
	}
	f.tools = append(f.tools, tool)
	tool.ID = fmt.Sprintf("tool_%d", len(f.tools))
	return &tool, nil
}

func (f *fakePlatform) CreateAssistant(_ context.Context, a types.Assistant) (*types.Assistant, error) {
	f.created = append(f.created, a)
	a.ID = "asst_new"
	return &a, nil
}

func (f *fakePlatform) UpdateAssistant(_ context.Context, id string, a types.Assistant) (*types.Assistant, error) {
	if f.updated == nil {
		f.updated = map[string]types.Assistant{}
	}
	f.updated[id] = a
	a.ID = id
	return &a, nil
}

func (f *fakePlatform) CreatePhoneNumber(_ context.Context, n types.CreatePhoneNumberRequest) (*types.PhoneNumber, error) {
	if f.failPhone {
		return nil, errors.New("no numbers available")
	}
	f.numbers = append(f.numbers, n)
	return &types.PhoneNumber{ID: "pn_1", Number: "+14155550100"}, nil
}

var testDefs = []types.FunctionDef{{Name: "log_health_status"}, {Name: "schedule_followup"}}

func TestCreateTools_PointAtWebhook(t *testing.T) {
	platform := &fakePlatform{}

	ids, err := New(platform).CreateTools(context.Background(), "https://hooks.example.com/", testDefs)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"log_health_status": "tool_1", "schedule_followup": "tool_2"}, ids)
	require.Len(t, platform.tools, 2)
	assert.Equal(t, "function", platform.tools[0].Type)
	assert.Equal(t, "https://hooks.example.com/tool/log_health_status", platform.tools[0].Server.URL)
	assert.Equal(t, "https://hooks.example.com/tool/schedule_followup", platform.tools[1].Server.URL)
}

func TestCreateTools_RequiresServerURL(t *testing.T) {
	_, err := New(&fakePlatform{}).CreateTools(context.Background(), " ", testDefs)
	assert.Error(t, err)
}

func TestUpsertAssistant(t *testing.T) {
	platform := &fakePlatform{}
	p := New(platform)

	id, err := p.UpsertAssistant(context.Background(), "", []string{"t1"})
	require.NoError(t, err)
	assert.Equal(t, "asst_new", id)
	require.Len(t, platform.created, 1)
	assert.Equal(t, []string{"t1"}, platform.created[0].Model.ToolIDs)

	id, err = p.UpsertAssistant(context.Background(), "asst_existing", []string{"t2"})
	require.NoError(t, err)
	assert.Equal(t, "asst_existing", id)
	assert.Contains(t, platform.updated, "asst_existing")
	assert.Len(t, platform.created, 1)
}

func TestAll(t *testing.T) {
	platform := &fakePlatform{}

	result, err := New(platform).All(context.Background(), "https://hooks.example.com", "", "415", testDefs)

	require.NoError(t, err)
	assert.Equal(t, "asst_new", result.AssistantID)
	assert.Equal(t, "pn_1", result.PhoneNumberID)
	assert.Equal(t, []string{"tool_1", "tool_2"}, platform.created[0].Model.ToolIDs)
	require.Len(t, platform.numbers, 1)
	assert.Equal(t, "asst_new", platform.numbers[0].AssistantID)
	assert.Equal(t, "415", platform.numbers[0].NumberDesiredAreaCode)
	assert.Equal(t, []string{"VAPI_ASSISTANT_ID=asst_new", "VAPI_PHONE_NUMBER_ID=pn_1"}, result.EnvLines())
}

func TestAll_StopsAtFirstFailure(t *testing.T) {
	platform := &fakePlatform{failTool: "schedule_followup"}

	result, err := New(platform).All(context.Background(), "https://hooks.example.com", "", "", testDefs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule_followup")
	assert.Equal(t, map[string]string{"log_health_status": "tool_1"}, result.ToolIDs)
	assert.Empty(t, platform.created)
	assert.Empty(t, platform.numbers)
}

func TestAll_PhoneFailureKeepsAssistant(t *testing.T) {
	platform := &fakePlatform{failPhone: true}

	result, err := New(platform).All(context.Background(), "https://hooks.example.com", "asst_9", "", testDefs)

	require.Error(t, err)
	assert.Equal(t, "asst_9", result.AssistantID)
	assert.Empty(t, result.PhoneNumberID)
}
