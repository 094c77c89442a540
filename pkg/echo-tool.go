// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type EchoArgs struct {
	Text string `json:"text" jsonschema:"description=Text to return unchanged"`
}

func NewEchoTool() server.ServerTool {
	tool := mcp.Tool{
		Name:        "echo",
		Description: "Echo the provided text unchanged",
		InputSchema: NewInputSchema[EchoArgs](),
	}
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args EchoArgs,
	) (*mcp.CallToolResult, error) {
		if _, ok := request.GetArguments()["text"]; !ok {
			return mcp.NewToolResultError("text is required"), nil
		}
		return mcp.NewToolResultText(args.Text), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
