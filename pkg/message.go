// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bborbe/errors"
)

const (
	JSONRPCVersion = "2.0"

	// ProtocolVersion is the MCP revision the client asks for during initialize.
	ProtocolVersion = "2025-11-25"

	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodToolsList   = "tools/list"
	MethodToolsCall   = "tools/call"
)

// Message is a JSON-RPC 2.0 message sent by the client.
// It is either a Call or a Notification.
type Message interface {
	MethodName() string
	isMessage()
}

// Call expects a response correlated by ID.
type Call struct {
	ID     int64
	Method string
	Params any
}

func (c Call) MethodName() string { return c.Method }

func (c Call) isMessage() {}

func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		ID      int64  `json:"id"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
	}{
		JSONRPC: JSONRPCVersion,
		ID:      c.ID,
		Method:  c.Method,
		Params:  c.Params,
	})
}

// Notification is one-way and never carries an id.
type Notification struct {
	Method string
	Params any
}

func (n Notification) MethodName() string { return n.Method }

func (n Notification) isMessage() {}

func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
	}{
		JSONRPC: JSONRPCVersion,
		Method:  n.Method,
		Params:  n.Params,
	})
}

// NewCall allocates the next id from session.
func NewCall(session *Session, method string, params any) Call {
	return Call{
		ID:     session.AllocateID(),
		Method: method,
		Params: params,
	}
}

func NewNotification(method string, params any) Notification {
	return Notification{
		Method: method,
		Params: params,
	}
}

// Response is the server reply to a Call.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// DecodeResult unmarshals the result payload into target.
func (r *Response) DecodeResult(ctx context.Context, target any) error {
	if r.Error != nil {
		return r.Error
	}
	if len(r.Result) == 0 {
		return errors.Errorf(ctx, "response has no result")
	}
	if err := json.Unmarshal(r.Result, target); err != nil {
		return errors.Wrapf(ctx, err, "unmarshal result failed")
	}
	return nil
}

// RPCError is the JSON-RPC error object of a Response.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type InitializeParams struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ClientInfo      Implementation `json:"clientInfo"`
}

type InitializeResult struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Capabilities    json.RawMessage `json:"capabilities,omitempty"`
	ServerInfo      Implementation  `json:"serverInfo"`
}

type CallToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type ToolDescription struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

type ListToolsResult struct {
	Tools []ToolDescription `json:"tools"`
}

type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type CallToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// Text joins all text content of the result.
func (c CallToolResult) Text() string {
	var result string
	for _, content := range c.Content {
		if content.Type == "text" {
			result += content.Text
		}
	}
	return result
}
