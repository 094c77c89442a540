// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type AddArgs struct {
	A int `json:"a" jsonschema:"description=First summand"`
	B int `json:"b" jsonschema:"description=Second summand"`
}

func NewAddTool() server.ServerTool {
	tool := mcp.Tool{
		Name:        "add",
		Description: "Return the integer sum of a and b",
		InputSchema: NewInputSchema[AddArgs](),
	}
	handler := mcp.NewTypedToolHandler(func(
		ctx context.Context,
		request mcp.CallToolRequest,
		args AddArgs,
	) (*mcp.CallToolResult, error) {
		arguments := request.GetArguments()
		for _, name := range []string{"a", "b"} {
			if _, ok := arguments[name]; !ok {
				return mcp.NewToolResultError(name + " is required"), nil
			}
		}
		sum := args.A + args.B
		if (args.B > 0 && sum < args.A) || (args.B < 0 && sum > args.A) {
			return mcp.NewToolResultError(fmt.Sprintf("sum of %d and %d overflows int", args.A, args.B)), nil
		}
		return mcp.NewToolResultText(strconv.Itoa(sum)), nil
	})
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
