// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pkg contains a demo MCP server exposing echo and add tools over
// streamable HTTP, and a client that performs the MCP handshake by hand
// (initialize, notifications/initialized, tools/list, tools/call).
package pkg

//go:generate go run -mod=mod github.com/maxbrunsfeld/counterfeiter/v6 -generate
