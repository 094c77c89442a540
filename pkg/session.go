// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"net/http"
)

const (
	HeaderSessionID       = "Mcp-Session-Id"
	HeaderProtocolVersion = "Mcp-Protocol-Version"

	contentTypeJSON = "application/json"
	acceptJSONOrSSE = "application/json, text/event-stream"
)

// Session tracks the correlation state of one client conversation with an MCP server.
// A Session is not safe for concurrent use; run one sequence per Session.
type Session struct {
	sessionID       string
	protocolVersion string
	nextRequestID   int64
}

func NewSession() *Session {
	return &Session{
		nextRequestID: 1,
	}
}

// AllocateID returns the next request id and advances the counter.
func (s *Session) AllocateID() int64 {
	id := s.nextRequestID
	s.nextRequestID++
	return id
}

// RecordSessionID stores the token issued by the server. The server is
// authoritative, so a later value replaces an earlier one.
func (s *Session) RecordSessionID(value string) {
	if value == "" {
		return
	}
	s.sessionID = value
}

func (s *Session) SessionID() string {
	return s.sessionID
}

func (s *Session) RecordProtocolVersion(value string) {
	if value == "" {
		return
	}
	s.protocolVersion = value
}

func (s *Session) ProtocolVersion() string {
	return s.protocolVersion
}

// Headers returns the transport headers for the next request.
func (s *Session) Headers() http.Header {
	header := http.Header{}
	header.Set("Content-Type", contentTypeJSON)
	header.Set("Accept", acceptJSONOrSSE)
	if s.sessionID != "" {
		header.Set(HeaderSessionID, s.sessionID)
	}
	if s.protocolVersion != "" {
		header.Set(HeaderProtocolVersion, s.protocolVersion)
	}
	return header
}
