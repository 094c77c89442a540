// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_starter/pkg"
)

var _ = Describe("Session", func() {
	var session *pkg.Session

	BeforeEach(func() {
		session = pkg.NewSession()
	})

	Context("AllocateID", func() {
		It("starts at 1 and increments by one", func() {
			Expect(session.AllocateID()).To(Equal(int64(1)))
			Expect(session.AllocateID()).To(Equal(int64(2)))
			Expect(session.AllocateID()).To(Equal(int64(3)))
		})

		It("is not consumed by notifications", func() {
			Expect(pkg.NewCall(session, pkg.MethodInitialize, nil).ID).To(Equal(int64(1)))
			pkg.NewNotification(pkg.MethodInitialized, map[string]any{})
			Expect(pkg.NewCall(session, pkg.MethodToolsList, nil).ID).To(Equal(int64(2)))
		})
	})

	Context("RecordSessionID", func() {
		It("is unset initially", func() {
			Expect(session.SessionID()).To(BeEmpty())
		})

		It("keeps the last value supplied", func() {
			session.RecordSessionID("first")
			session.RecordSessionID("second")
			Expect(session.SessionID()).To(Equal("second"))
		})

		It("ignores an empty value", func() {
			session.RecordSessionID("abc")
			session.RecordSessionID("")
			Expect(session.SessionID()).To(Equal("abc"))
		})
	})

	Context("Headers", func() {
		It("always negotiates json and event-stream", func() {
			headers := session.Headers()
			Expect(headers.Get("Content-Type")).To(Equal("application/json"))
			Expect(headers.Get("Accept")).To(Equal("application/json, text/event-stream"))
		})

		It("has no session header without session id", func() {
			Expect(session.Headers()).NotTo(HaveKey(pkg.HeaderSessionID))
			Expect(session.Headers()).NotTo(HaveKey(pkg.HeaderProtocolVersion))
		})

		It("attaches session id and protocol version when known", func() {
			session.RecordSessionID("abc")
			session.RecordProtocolVersion("2025-03-26")
			headers := session.Headers()
			Expect(headers.Get(pkg.HeaderSessionID)).To(Equal("abc"))
			Expect(headers.Get(pkg.HeaderProtocolVersion)).To(Equal("2025-03-26"))
		})
	})

	It("shares no state with another session", func() {
		other := pkg.NewSession()
		session.AllocateID()
		session.AllocateID()
		session.RecordSessionID("mine")
		Expect(other.AllocateID()).To(Equal(int64(1)))
		Expect(other.SessionID()).To(BeEmpty())
		Expect(session.AllocateID()).To(Equal(int64(3)))
	})
})
