// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/mcp_starter/mocks"
	"github.com/bborbe/mcp_starter/pkg"
)

var _ = Describe("SessionIDManager", func() {
	var metrics *mocks.Metrics
	var idleTimeout time.Duration
	var maxTerminated int
	var manager *pkg.SessionIDManager

	BeforeEach(func() {
		metrics = &mocks.Metrics{}
		idleTimeout = time.Hour
		maxTerminated = pkg.DefaultMaxTerminatedSessions
	})

	JustBeforeEach(func() {
		manager = pkg.NewSessionIDManager(metrics, idleTimeout, maxTerminated)
	})

	It("issues unique session ids", func() {
		first := manager.Generate()
		second := manager.Generate()
		Expect(first).NotTo(BeEmpty())
		Expect(second).NotTo(Equal(first))
		Expect(manager.ActiveSessions()).To(Equal(2))
		Expect(metrics.SessionsCreatedCounterIncCallCount()).To(Equal(2))
	})

	It("validates issued ids", func() {
		isTerminated, err := manager.Validate(manager.Generate())
		Expect(err).To(BeNil())
		Expect(isTerminated).To(BeFalse())
	})

	It("rejects unknown ids", func() {
		_, err := manager.Validate("unknown")
		Expect(err).To(HaveOccurred())
	})

	It("reports terminated ids", func() {
		sessionID := manager.Generate()
		isNotAllowed, err := manager.Terminate(sessionID)
		Expect(err).To(BeNil())
		Expect(isNotAllowed).To(BeFalse())

		isTerminated, err := manager.Validate(sessionID)
		Expect(err).To(BeNil())
		Expect(isTerminated).To(BeTrue())
		Expect(manager.ActiveSessions()).To(Equal(0))
		Expect(metrics.SessionsTerminatedCounterIncCallCount()).To(Equal(1))
	})

	It("terminates all sessions on shutdown", func() {
		first := manager.Generate()
		second := manager.Generate()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error)
		go func() {
			done <- manager.Run(ctx)
		}()
		cancel()
		Eventually(done).Should(Receive(BeNil()))

		Expect(manager.ActiveSessions()).To(Equal(0))
		for _, sessionID := range []string{first, second} {
			isTerminated, err := manager.Validate(sessionID)
			Expect(err).To(BeNil())
			Expect(isTerminated).To(BeTrue())
		}
		Expect(metrics.SessionsActiveSetArgsForCall(metrics.SessionsActiveSetCallCount() - 1)).To(Equal(0))
	})

	Context("idle expiry", func() {
		It("terminates sessions idle longer than the timeout", func() {
			sessionID := manager.Generate()
			Expect(manager.ExpireIdle(time.Now().Add(2 * idleTimeout))).To(Equal(1))
			Expect(manager.ActiveSessions()).To(Equal(0))
			isTerminated, err := manager.Validate(sessionID)
			Expect(err).To(BeNil())
			Expect(isTerminated).To(BeTrue())
		})

		It("keeps recently active sessions", func() {
			manager.Generate()
			Expect(manager.ExpireIdle(time.Now())).To(Equal(0))
			Expect(manager.ActiveSessions()).To(Equal(1))
		})

		Context("without timeout", func() {
			BeforeEach(func() {
				idleTimeout = 0
			})

			It("never expires sessions", func() {
				manager.Generate()
				Expect(manager.ExpireIdle(time.Now().Add(24 * time.Hour))).To(Equal(0))
				Expect(manager.ActiveSessions()).To(Equal(1))
			})
		})

		Context("while running", func() {
			BeforeEach(func() {
				idleTimeout = 20 * time.Millisecond
			})

			It("expires idle sessions periodically", func() {
				sessionID := manager.Generate()
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				go func() {
					defer GinkgoRecover()
					Expect(manager.Run(ctx)).To(Succeed())
				}()
				Eventually(manager.ActiveSessions).WithTimeout(time.Second).Should(Equal(0))
				isTerminated, err := manager.Validate(sessionID)
				Expect(err).To(BeNil())
				Expect(isTerminated).To(BeTrue())
			})
		})
	})

	Context("with a small terminated limit", func() {
		BeforeEach(func() {
			maxTerminated = 2
		})

		It("forgets the oldest terminated ids", func() {
			sessionIDs := []string{manager.Generate(), manager.Generate(), manager.Generate()}
			for _, sessionID := range sessionIDs {
				_, err := manager.Terminate(sessionID)
				Expect(err).To(BeNil())
			}
			Expect(manager.TerminatedSessions()).To(Equal(2))

			_, err := manager.Validate(sessionIDs[0])
			Expect(err).To(HaveOccurred())
			for _, sessionID := range sessionIDs[1:] {
				isTerminated, err := manager.Validate(sessionID)
				Expect(err).To(BeNil())
				Expect(isTerminated).To(BeTrue())
			}
		})
	})
})
