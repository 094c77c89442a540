// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bborbe/errors"
	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRegistry is the explicit list of tools a server exposes, in registration order.
type ToolRegistry struct {
	metrics Metrics
	tools   []server.ServerTool
}

func NewToolRegistry(metrics Metrics) *ToolRegistry {
	return &ToolRegistry{
		metrics: metrics,
	}
}

// Add registers tool. Tool names must be unique.
func (r *ToolRegistry) Add(ctx context.Context, tool server.ServerTool) error {
	if tool.Tool.Name == "" {
		return errors.Errorf(ctx, "tool name is empty")
	}
	if tool.Handler == nil {
		return errors.Errorf(ctx, "tool %s has no handler", tool.Tool.Name)
	}
	if _, ok := r.Lookup(tool.Tool.Name); ok {
		return errors.Errorf(ctx, "tool %s already registered", tool.Tool.Name)
	}
	r.tools = append(r.tools, server.ServerTool{
		Tool:    tool.Tool,
		Handler: instrumentToolHandler(r.metrics, tool.Tool.Name, tool.Handler),
	})
	return nil
}

func (r *ToolRegistry) Lookup(name string) (server.ServerTool, bool) {
	for _, tool := range r.tools {
		if tool.Tool.Name == name {
			return tool, true
		}
	}
	return server.ServerTool{}, false
}

func (r *ToolRegistry) Names() []string {
	result := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool.Tool.Name)
	}
	return result
}

func (r *ToolRegistry) Tools() []server.ServerTool {
	result := make([]server.ServerTool, len(r.tools))
	copy(result, r.tools)
	return result
}

func instrumentToolHandler(
	metrics Metrics,
	name string,
	handler server.ToolHandlerFunc,
) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := handler(ctx, request)
		switch {
		case err != nil:
			metrics.ToolCallsCounterInc(name, ToolResultFailed)
		case result != nil && result.IsError:
			metrics.ToolCallsCounterInc(name, ToolResultError)
		default:
			metrics.ToolCallsCounterInc(name, ToolResultSuccess)
		}
		return result, err
	}
}

// NewInputSchema reflects the json schema of the argument struct T.
func NewInputSchema[T any]() mcp.ToolInputSchema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	content, err := json.Marshal(reflector.Reflect(new(T)))
	if err != nil {
		panic(fmt.Sprintf("marshal schema of %T failed: %v", *new(T), err))
	}
	var inputSchema mcp.ToolInputSchema
	if err := json.Unmarshal(content, &inputSchema); err != nil {
		panic(fmt.Sprintf("unmarshal schema of %T failed: %v", *new(T), err))
	}
	return inputSchema
}
