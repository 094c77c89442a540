// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"bytes"
	"context"
	"io"
	"net/http"

	libhttp "github.com/bborbe/http"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServiceName = "mcp-starter"
	MCPPath     = "/mcp"
)

// NewRouter mounts the MCP handler at /mcp (with and without trailing slash)
// next to health, readiness and metrics routes.
func NewRouter(mcpHandler http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Path("/healthz").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/readiness").Handler(libhttp.NewPrintHandler("OK"))
	router.Path("/metrics").Handler(promhttp.Handler())
	router.Path("/health").Methods(http.MethodGet).Handler(NewHealthHandler(ServiceName, MCPPath))

	router.Use(NewRequestLogMiddleware)

	router.Path(MCPPath).Handler(mcpHandler)
	router.Path(MCPPath + "/").Handler(mcpHandler)
	return router
}

type HealthStatus struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	MCP     string `json:"mcp"`
}

// NewHealthHandler returns a fixed liveness payload.
func NewHealthHandler(service string, mcpPath string) http.Handler {
	return libhttp.NewErrorHandler(
		libhttp.NewJsonHandler(
			libhttp.JsonHandlerFunc(func(ctx context.Context, req *http.Request) (interface{}, error) {
				return HealthStatus{
					OK:      true,
					Service: service,
					MCP:     mcpPath,
				}, nil
			}),
		),
	)
}

func NewRequestLogMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if glog.V(4) && r.Body != nil {
			c, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(c))
			glog.Infof("%s %s %s", r.Method, r.URL, string(c))
		}
		handler.ServeHTTP(w, r)
	})
}
