// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"sync"
	"time"

	"github.com/bborbe/errors"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
)

const (
	DefaultSessionIdleTimeout    = 30 * time.Minute
	DefaultMaxTerminatedSessions = 10000
)

var _ server.SessionIdManager = &SessionIDManager{}

// SessionIDManager issues the Mcp-Session-Id tokens of the streamable HTTP
// transport and keeps track of live and terminated sessions.
// Live sessions idle longer than idleTimeout are terminated by Run,
// at most maxTerminated terminated ids are remembered.
type SessionIDManager struct {
	metrics       Metrics
	idleTimeout   time.Duration
	maxTerminated int

	mux             sync.Mutex
	live            map[string]time.Time
	terminated      map[string]struct{}
	terminatedOrder []string
}

func NewSessionIDManager(
	metrics Metrics,
	idleTimeout time.Duration,
	maxTerminated int,
) *SessionIDManager {
	return &SessionIDManager{
		metrics:       metrics,
		idleTimeout:   idleTimeout,
		maxTerminated: maxTerminated,
		live:          map[string]time.Time{},
		terminated:    map[string]struct{}{},
	}
}

func (s *SessionIDManager) Generate() string {
	sessionID := uuid.NewString()

	s.mux.Lock()
	defer s.mux.Unlock()
	s.live[sessionID] = time.Now()
	s.metrics.SessionsCreatedCounterInc()
	s.metrics.SessionsActiveSet(len(s.live))
	glog.V(2).Infof("session %s created", sessionID)
	return sessionID
}

// Validate reports isTerminated for sessions closed earlier and an error for unknown ids.
// A successful validation counts as activity of the session.
func (s *SessionIDManager) Validate(sessionID string) (bool, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.terminated[sessionID]; ok {
		return true, nil
	}
	if _, ok := s.live[sessionID]; ok {
		s.live[sessionID] = time.Now()
		return false, nil
	}
	return false, errors.Errorf(context.Background(), "unknown session id %q", sessionID)
}

func (s *SessionIDManager) Terminate(sessionID string) (bool, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.live[sessionID]; !ok {
		if _, ok := s.terminated[sessionID]; ok {
			return false, nil
		}
		return false, errors.Errorf(context.Background(), "unknown session id %q", sessionID)
	}
	s.terminateLocked(sessionID)
	return false, nil
}

func (s *SessionIDManager) ActiveSessions() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.live)
}

// TerminatedSessions returns the number of remembered terminated ids.
func (s *SessionIDManager) TerminatedSessions() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.terminated)
}

// ExpireIdle terminates all live sessions without activity since now minus idleTimeout
// and returns how many were terminated.
func (s *SessionIDManager) ExpireIdle(now time.Time) int {
	if s.idleTimeout <= 0 {
		return 0
	}
	deadline := now.Add(-s.idleTimeout)

	s.mux.Lock()
	defer s.mux.Unlock()
	var count int
	for sessionID, lastSeen := range s.live {
		if lastSeen.Before(deadline) {
			s.terminateLocked(sessionID)
			count++
		}
	}
	if count > 0 {
		glog.V(2).Infof("%d idle sessions expired", count)
	}
	return count
}

// Run expires idle sessions until ctx is done and then terminates all live sessions.
func (s *SessionIDManager) Run(ctx context.Context) error {
	glog.V(2).Infof("session manager started")
	var tick <-chan time.Time
	if s.idleTimeout > 0 {
		ticker := time.NewTicker(max(s.idleTimeout/2, time.Millisecond))
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			s.mux.Lock()
			defer s.mux.Unlock()
			count := len(s.live)
			for sessionID := range s.live {
				s.terminateLocked(sessionID)
			}
			glog.Infof("session manager stopped, %d sessions terminated", count)
			return nil
		case now := <-tick:
			s.ExpireIdle(now)
		}
	}
}

func (s *SessionIDManager) terminateLocked(sessionID string) {
	delete(s.live, sessionID)
	s.terminated[sessionID] = struct{}{}
	s.terminatedOrder = append(s.terminatedOrder, sessionID)
	for s.maxTerminated > 0 && len(s.terminatedOrder) > s.maxTerminated {
		delete(s.terminated, s.terminatedOrder[0])
		s.terminatedOrder = s.terminatedOrder[1:]
	}
	s.metrics.SessionsTerminatedCounterInc()
	s.metrics.SessionsActiveSet(len(s.live))
	glog.V(2).Infof("session %s terminated", sessionID)
}
