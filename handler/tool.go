package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthcall/logger"
	"healthcall/tools"
	"healthcall/types"
	"healthcall/utils"
)

// HandleToolCalls handles POST /tool/:toolName.
//
// Every call of the batch goes to the handler named in the path, strictly in order.
// The first returned error aborts the batch with 500 and discards earlier results;
// the caller resubmits the whole batch.
func (h *APIHandler) HandleToolCalls(c *gin.Context) {
	toolName := c.Param("toolName")

	tool, ok := h.registry.Lookup(toolName)
	if !ok {
		logger.Warn("❌ Unknown tool requested | tool=%s client_ip=%s", toolName, c.ClientIP())
		writeError(c, http.StatusNotFound, fmt.Sprintf("Unknown tool: %s", toolName))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req types.ToolCallRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := utils.Unmarshal(body, &req); err != nil {
			logger.Warn("❌ Invalid webhook JSON | tool=%s error=%v", toolName, err)
			writeError(c, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}

	calls := req.Message.ToolCallList
	logger.Info("📩 Tool call batch received | tool=%s calls=%d", toolName, len(calls))

	results, err := h.dispatch(c.Request.Context(), tool, calls)
	if err != nil {
		logger.Error("❌ Tool call batch aborted | tool=%s completed=%d total=%d error=%v", toolName, len(results), len(calls), err)
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, types.ToolCallResponse{Results: results})
}

// dispatch runs the calls sequentially; results keep the input order.
func (h *APIHandler) dispatch(ctx context.Context, tool tools.Handler, calls []types.ToolCall) ([]types.ToolResult, error) {
	results := make([]types.ToolResult, 0, len(calls))
	for _, call := range calls {
		if call.Function.Name != "" && call.Function.Name != tool.Name() {
			logger.Warn("⚠️  Tool call name differs from route | call_id=%s call_name=%s route=%s", call.ID, call.Function.Name, tool.Name())
		}

		params, err := call.Function.Arguments.Resolve()
		if err != nil {
			return results, fmt.Errorf("tool call %s: %w", call.ID, err)
		}

		if logger.IsVerbose() {
			logger.Verbose("  └─ Arguments: %s", utils.Truncate(utils.MarshalToString(params), 1000))
		}

		start := time.Now()
		out, err := tool.Handle(ctx, params)
		if err != nil {
			return results, fmt.Errorf("tool call %s: %w", call.ID, err)
		}

		logger.Info("✅ Tool call handled | tool=%s call_id=%s duration=%v", tool.Name(), call.ID, time.Since(start).Round(time.Millisecond))
		logger.Verbose("  └─ Result: %s", out.Result)
		results = append(results, types.ToolResult{ToolCallID: call.ID, Result: out.Result})
	}
	return results, nil
}
