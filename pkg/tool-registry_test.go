// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_starter/mocks"
	"github.com/bborbe/mcp_starter/pkg"
)

var _ = Describe("ToolRegistry", func() {
	var ctx context.Context
	var metrics *mocks.Metrics
	var registry *pkg.ToolRegistry
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		metrics = &mocks.Metrics{}
		registry, err = pkg.NewToolRegistryWithDefaults(ctx, metrics)
		Expect(err).To(BeNil())
	})

	It("lists tools in registration order", func() {
		Expect(registry.Names()).To(Equal([]string{"echo", "add"}))
		Expect(registry.Tools()).To(HaveLen(2))
	})

	It("rejects a duplicate name", func() {
		Expect(registry.Add(ctx, pkg.NewEchoTool())).NotTo(Succeed())
		Expect(registry.Names()).To(HaveLen(2))
	})

	It("rejects a tool without handler", func() {
		tool := pkg.NewEchoTool()
		tool.Tool.Name = "other"
		tool.Handler = nil
		Expect(registry.Add(ctx, tool)).NotTo(Succeed())
	})

	It("finds tools by name", func() {
		tool, ok := registry.Lookup("add")
		Expect(ok).To(BeTrue())
		Expect(tool.Tool.Name).To(Equal("add"))
		_, ok = registry.Lookup("unknown")
		Expect(ok).To(BeFalse())
	})

	Context("instrumentation", func() {
		It("counts successful calls", func() {
			tool, _ := registry.Lookup("echo")
			_, err := tool.Handler(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "echo", Arguments: map[string]interface{}{"text": "x"}}})
			Expect(err).To(BeNil())
			Expect(metrics.ToolCallsCounterIncCallCount()).To(Equal(1))
			name, result := metrics.ToolCallsCounterIncArgsForCall(0)
			Expect(name).To(Equal("echo"))
			Expect(result).To(Equal(pkg.ToolResultSuccess))
		})

		It("counts error results", func() {
			tool, _ := registry.Lookup("add")
			_, err := tool.Handler(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "add", Arguments: map[string]interface{}{}}})
			Expect(err).To(BeNil())
			_, result := metrics.ToolCallsCounterIncArgsForCall(0)
			Expect(result).To(Equal(pkg.ToolResultError))
		})

		It("counts failed calls", func() {
			Expect(registry.Add(ctx, server.ServerTool{
				Tool: mcp.NewTool("broken"),
				Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
					return nil, errors.New("banana")
				},
			})).To(Succeed())
			tool, _ := registry.Lookup("broken")
			_, err := tool.Handler(ctx, mcp.CallToolRequest{})
			Expect(err).To(MatchError("banana"))
			name, result := metrics.ToolCallsCounterIncArgsForCall(0)
			Expect(name).To(Equal("broken"))
			Expect(result).To(Equal(pkg.ToolResultFailed))
		})
	})
})
