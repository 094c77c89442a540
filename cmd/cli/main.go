// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bborbe/mcp_starter/pkg"
)

func main() {
	registry, err := pkg.NewToolRegistryWithDefaults(context.Background(), pkg.NewMetrics())
	if err != nil {
		fmt.Fprintf(os.Stderr, "create tool registry failed: %v\n", err)
		os.Exit(1)
	}

	// Start the stdio server
	if err := server.ServeStdio(pkg.NewMCPServer(registry)); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
