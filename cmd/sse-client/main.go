// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultURL = "http://localhost:8080/sse"
)

func main() {
	url := flag.String("url", defaultURL, "MCP server SSE URL")
	text := flag.String("text", "Hello from Go client", "text passed to echo")
	flag.Parse()

	sseTransport, err := transport.NewSSE(*url)
	if err != nil {
		log.Fatalf("Failed to create SSE transport: %v", err)
	}
	defer sseTransport.Close()

	mcpClient := client.NewClient(sseTransport)

	ctx := context.Background()
	if err := mcpClient.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	initRequest := mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "sse-client",
				Version: "1.0.0",
			},
		},
	}
	if _, err := mcpClient.Initialize(ctx, initRequest); err != nil {
		log.Fatalf("Failed to initialize MCP session: %v", err)
	}

	tools, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}
	fmt.Printf("Available Tools (%d):\n", len(tools.Tools))
	for i, tool := range tools.Tools {
		fmt.Printf("%d. %s: %s\n", i+1, tool.Name, tool.Description)
	}

	callRequest := mcp.CallToolRequest{}
	callRequest.Params.Name = "echo"
	callRequest.Params.Arguments = map[string]any{"text": *text}
	result, err := mcpClient.CallTool(ctx, callRequest)
	if err != nil {
		log.Fatalf("call echo failed: %v", err)
	}
	_ = json.NewEncoder(os.Stdout).Encode(result)
}
