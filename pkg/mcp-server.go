// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "MCP Starter Server"
	ServerVersion = "1.0.0"
)

// NewToolRegistryWithDefaults returns a registry holding the echo and add tools.
func NewToolRegistryWithDefaults(ctx context.Context, metrics Metrics) (*ToolRegistry, error) {
	registry := NewToolRegistry(metrics)
	for _, tool := range []server.ServerTool{
		NewEchoTool(),
		NewAddTool(),
	} {
		if err := registry.Add(ctx, tool); err != nil {
			return nil, errors.Wrapf(ctx, err, "add tool %s failed", tool.Tool.Name)
		}
	}
	return registry, nil
}

func NewMCPServer(registry *ToolRegistry) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)
	s.AddTools(registry.Tools()...)
	return s
}

// NewStreamableHTTPServer serves mcpServer over streamable HTTP. In stateless
// mode no session id is issued and sessionIDManager is unused.
func NewStreamableHTTPServer(
	mcpServer *server.MCPServer,
	sessionIDManager server.SessionIdManager,
	stateless bool,
) *server.StreamableHTTPServer {
	if stateless {
		return server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true))
	}
	return server.NewStreamableHTTPServer(mcpServer, server.WithSessionIdManager(sessionIDManager))
}
