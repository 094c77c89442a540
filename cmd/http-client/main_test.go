// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/bborbe/mcp_starter/pkg"
)

var _ = Describe("run", func() {
	var ctx context.Context
	var server *ghttp.Server
	var arguments string
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		server = ghttp.NewServer()
		arguments = `{"text":"Hello"}`
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		err = run(ctx, server.URL()+"/mcp/", "echo", arguments, time.Second)
	})

	Context("with a responding server", func() {
		BeforeEach(func() {
			header := http.Header{
				"Content-Type":      []string{"application/json"},
				pkg.HeaderSessionID: []string{"session-1"},
			}
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":{"protocolVersion":"2025-11-25","capabilities":{},"serverInfo":{"name":"test","version":"1"}}}`, header),
				ghttp.RespondWith(http.StatusAccepted, nil),
				ghttp.RespondWith(http.StatusOK, `{"jsonrpc":"2.0","id":2,"result":{"tools":[]}}`, header),
				ghttp.CombineHandlers(
					ghttp.VerifyJSON(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"text":"Hello"}}}`),
					ghttp.RespondWith(http.StatusOK, `{"jsonrpc":"2.0","id":3,"result":{"content":[{"type":"text","text":"Hello"}]}}`, header),
				),
			)
		})

		It("completes the handshake", func() {
			Expect(err).To(BeNil())
			Expect(server.ReceivedRequests()).To(HaveLen(4))
		})
	})

	Context("with invalid arguments", func() {
		BeforeEach(func() {
			arguments = `{"text":`
		})

		It("returns an error without contacting the server", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid arguments"))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Context("when initialize fails", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "boom"))
		})

		It("returns the handshake error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("handshake failed"))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})
	})
})
