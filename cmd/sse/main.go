// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/mcp_starter/pkg"
)

func main() {
	listen := flag.String("listen", ":8080", "address to listen on")
	flag.Parse()

	registry, err := pkg.NewToolRegistryWithDefaults(context.Background(), pkg.NewMetrics())
	if err != nil {
		log.Fatalf("create tool registry failed: %v", err)
	}

	sseServer := server.NewSSEServer(pkg.NewMCPServer(registry))

	log.Printf("Starting SSE MCP server on %s", *listen)
	log.Printf("Endpoint: http://localhost%s/sse", *listen)
	log.Printf("Available tools: %v", registry.Names())

	if err := sseServer.Start(*listen); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
