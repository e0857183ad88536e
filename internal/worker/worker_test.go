package worker_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/queue"
	"tekimax.app/docs/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx      context.Context
		consumer *mockConsumer
		handler  *mockHandler
		w        *worker.Worker
	)

	message := func(id string, attempt int) queue.Message {
		return queue.Message{
			ID:          id,
			TaskType:    queue.TaskTypeInviteEmail,
			InviteID:    11,
			WorkspaceID: 22,
			Attempt:     attempt,
			TraceID:     "4bf92f3577b34da6a3ce929d0e0e4736",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		handler = &mockHandler{}
	})

	Describe("ProcessMessage", func() {
		BeforeEach(func() {
			w = worker.New(consumer, handler, worker.Config{MaxAttempts: 3})
		})

		It("should hand the task to the handler and ack", func() {
			var got queue.Task
			handler.handleFn = func(_ context.Context, task queue.Task) error {
				got = task
				return nil
			}

			Expect(w.ProcessMessage(ctx, message("1-0", 1))).To(Succeed())
			Expect(got.InviteID).To(Equal(int64(11)))
			Expect(got.WorkspaceID).To(Equal(int64(22)))
			Expect(consumer.acked).To(ConsistOf("1-0"))
		})

		It("should requeue while attempts remain", func() {
			handler.handleFn = func(context.Context, queue.Task) error { return errors.New("smtp down") }

			Expect(w.ProcessMessage(ctx, message("1-0", 2))).To(HaveOccurred())
			Expect(consumer.requeued).To(ConsistOf("1-0"))
			Expect(consumer.reasons).To(ConsistOf("smtp down"))
			Expect(consumer.dlq).To(BeEmpty())
			Expect(consumer.acked).To(BeEmpty())
		})

		It("should dead-letter on the last attempt", func() {
			handler.handleFn = func(context.Context, queue.Task) error { return errors.New("rejected") }

			Expect(w.ProcessMessage(ctx, message("1-0", 3))).To(HaveOccurred())
			Expect(consumer.dlq).To(ConsistOf("1-0"))
			Expect(consumer.requeued).To(BeEmpty())
		})

		It("should turn a panic into a failure", func() {
			handler.handleFn = func(context.Context, queue.Task) error { panic("boom") }

			err := w.ProcessMessage(ctx, message("1-0", 1))
			Expect(err).To(MatchError(ContainSubstring("panic: boom")))
			Expect(consumer.requeued).To(ConsistOf("1-0"))
		})

		It("should dead-letter the first failure by default", func() {
			w = worker.New(consumer, handler, worker.Config{})
			handler.handleFn = func(context.Context, queue.Task) error { return errors.New("rejected") }

			Expect(w.ProcessMessage(ctx, message("1-0", 1))).To(HaveOccurred())
			Expect(consumer.dlq).To(ConsistOf("1-0"))
		})
	})

	Describe("Run", func() {
		It("should drain batches until stopped", func() {
			consumer.batches = [][]queue.Message{
				{message("1-0", 1), message("2-0", 1)},
				{message("3-0", 1)},
			}
			w = worker.New(consumer, handler, worker.Config{MaxAttempts: 1})

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			Eventually(consumer.ackedIDs).Should(Equal([]string{"1-0", "2-0", "3-0"}))
			w.Stop()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("should return when the context is cancelled", func() {
			consumer.readErr = errors.New("redis unavailable")
			w = worker.New(consumer, handler, worker.Config{ErrorBackoff: 10 * time.Millisecond})

			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() { done <- w.Run(runCtx) }()

			cancel()
			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})
	})
})
