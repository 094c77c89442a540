// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/bborbe/errors"
	"github.com/elnormous/contenttype"
	"github.com/golang/glog"
)

var (
	jsonMediaType        = contenttype.NewMediaType("application/json")
	eventStreamMediaType = contenttype.NewMediaType("text/event-stream")
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HandshakeResult collects the responses of a complete handshake.
type HandshakeResult struct {
	Initialize *Response
	Tools      *Response
	Call       *Response
}

// HandshakeSequencer drives the MCP handshake over streamable HTTP:
// initialize, notifications/initialized, tools/list and tools/call.
// Every step waits for the previous HTTP exchange and any failure aborts the sequence.
type HandshakeSequencer struct {
	httpClient HTTPClient
	url        string
	clientInfo Implementation
}

func NewHandshakeSequencer(
	httpClient HTTPClient,
	url string,
	clientInfo Implementation,
) *HandshakeSequencer {
	return &HandshakeSequencer{
		httpClient: httpClient,
		url:        url,
		clientInfo: clientInfo,
	}
}

// Run executes all four steps and calls the tool name with arguments.
func (h *HandshakeSequencer) Run(
	ctx context.Context,
	session *Session,
	name string,
	arguments map[string]any,
) (*HandshakeResult, error) {
	var result HandshakeResult
	var err error
	if result.Initialize, err = h.Initialize(ctx, session); err != nil {
		return nil, errors.Wrapf(ctx, err, "initialize failed")
	}
	if err = h.NotifyInitialized(ctx, session); err != nil {
		return nil, errors.Wrapf(ctx, err, "notify initialized failed")
	}
	if result.Tools, err = h.ListTools(ctx, session); err != nil {
		return nil, errors.Wrapf(ctx, err, "list tools failed")
	}
	if result.Call, err = h.CallTool(ctx, session, name, arguments); err != nil {
		return nil, errors.Wrapf(ctx, err, "call tool %s failed", name)
	}
	return &result, nil
}

func (h *HandshakeSequencer) Initialize(ctx context.Context, session *Session) (*Response, error) {
	call := NewCall(session, MethodInitialize, InitializeParams{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    map[string]any{},
		ClientInfo:      h.clientInfo,
	})
	response, err := h.send(ctx, session, call, isSuccess)
	if err != nil {
		return nil, err
	}
	if response != nil && response.Error == nil {
		var initializeResult InitializeResult
		if err := response.DecodeResult(ctx, &initializeResult); err != nil {
			return nil, errors.Wrapf(ctx, err, "decode initialize result failed")
		}
		session.RecordProtocolVersion(initializeResult.ProtocolVersion)
	}
	glog.V(2).Infof("initialized session %q with protocol %q", session.SessionID(), session.ProtocolVersion())
	return response, nil
}

func (h *HandshakeSequencer) NotifyInitialized(ctx context.Context, session *Session) error {
	_, err := h.send(ctx, session, NewNotification(MethodInitialized, map[string]any{}), isOKOrAccepted)
	return err
}

// ListTools returns the raw tool catalog response.
func (h *HandshakeSequencer) ListTools(ctx context.Context, session *Session) (*Response, error) {
	return h.send(ctx, session, NewCall(session, MethodToolsList, map[string]any{}), isSuccess)
}

// CallTool returns the tool output unchanged, including JSON-RPC errors.
func (h *HandshakeSequencer) CallTool(
	ctx context.Context,
	session *Session,
	name string,
	arguments map[string]any,
) (*Response, error) {
	if arguments == nil {
		arguments = map[string]any{}
	}
	call := NewCall(session, MethodToolsCall, CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	return h.send(ctx, session, call, isSuccess)
}

func (h *HandshakeSequencer) send(
	ctx context.Context,
	session *Session,
	message Message,
	accepted func(statusCode int) bool,
) (*Response, error) {
	method := message.MethodName()
	body, err := json.Marshal(message)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "marshal %s failed", method)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "build request for %s failed", method)
	}
	req.Header = session.Headers()
	glog.V(3).Infof("POST %s %s", h.url, string(body))

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	glog.V(3).Infof("%s => %d %s", method, resp.StatusCode, string(content))
	if !accepted(resp.StatusCode) {
		return nil, &StatusError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       string(content),
		}
	}
	session.RecordSessionID(resp.Header.Get(HeaderSessionID))

	call, ok := message.(Call)
	if !ok {
		return nil, nil
	}
	response, err := decodeResponse(ctx, resp.Header.Get("Content-Type"), content, call.ID)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "decode %s response failed", method)
	}
	return response, nil
}

// incomingMessage is any JSON-RPC message the server sends back.
// Requests and notifications carry a method, responses never do.
type incomingMessage struct {
	Response
	Method string `json:"method,omitempty"`
}

// isReplyTo reports whether the message is the response to the call with id.
// An error response with a null id answers a request the server could not parse.
func (m incomingMessage) isReplyTo(id int64) bool {
	if m.Method != "" {
		return false
	}
	if len(m.ID) == 0 || string(m.ID) == "null" {
		return m.Error != nil
	}
	var responseID int64
	if err := json.Unmarshal(m.ID, &responseID); err != nil {
		return false
	}
	return responseID == id
}

func decodeResponse(ctx context.Context, contentType string, content []byte, id int64) (*Response, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}
	if contentType != "" {
		mediaType, err := contenttype.ParseMediaType(contentType)
		if err == nil && mediaType.Type == eventStreamMediaType.Type && mediaType.Subtype == eventStreamMediaType.Subtype {
			return decodeEventStream(ctx, content, id)
		}
		if err == nil && (mediaType.Type != jsonMediaType.Type || mediaType.Subtype != jsonMediaType.Subtype) {
			glog.V(2).Infof("unexpected content type %q, try to decode as json", contentType)
		}
	}
	var message incomingMessage
	if err := json.Unmarshal(content, &message); err != nil {
		return nil, errors.Wrapf(ctx, err, "unmarshal json failed")
	}
	if message.Method != "" {
		return nil, errors.Errorf(ctx, "expected response to id %d but got %s", id, message.Method)
	}
	if !message.isReplyTo(id) {
		return nil, errors.Errorf(ctx, "response id %s does not match request id %d", string(message.ID), id)
	}
	return &message.Response, nil
}

// decodeEventStream returns the response to id carried by a data event.
// Server requests, notifications and responses to other ids are skipped.
func decodeEventStream(ctx context.Context, content []byte, id int64) (*Response, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	var data []string
	flush := func() (*Response, error) {
		if len(data) == 0 {
			return nil, nil
		}
		payload := strings.Join(data, "\n")
		data = nil
		var message incomingMessage
		if err := json.Unmarshal([]byte(payload), &message); err != nil {
			return nil, errors.Wrapf(ctx, err, "unmarshal event failed")
		}
		if !message.isReplyTo(id) {
			glog.V(3).Infof("skip event %s while waiting for id %d", payload, id)
			return nil, nil
		}
		return &message.Response, nil
	}
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			response, err := flush()
			if err != nil || response != nil {
				return response, err
			}
			continue
		}
		if value, ok := strings.CutPrefix(line, "data:"); ok {
			data = append(data, strings.TrimPrefix(value, " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ctx, err, "read event stream failed")
	}
	response, err := flush()
	if err != nil || response != nil {
		return response, err
	}
	return nil, errors.Errorf(ctx, "event stream carries no response to id %d", id)
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func isOKOrAccepted(statusCode int) bool {
	return statusCode == http.StatusOK || statusCode == http.StatusAccepted
}
