package worker_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"tekimax.app/docs/internal/queue"
	"tekimax.app/docs/internal/worker"
)

var _ = Describe("RedisReclaimer", func() {
	var (
		ctx       context.Context
		mr        *miniredis.Miniredis
		client    *redis.Client
		consumer  *queue.RedisConsumer
		reclaimer *worker.RedisReclaimer
		processed []queue.Message
	)

	const (
		stream = "invite_emails"
		group  = "invite_email_group"
	)

	BeforeEach(func() {
		ctx = context.Background()
		processed = nil

		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

		consumer, err = queue.NewRedisConsumer(ctx, client, queue.ConsumerConfig{
			Stream:    stream,
			Group:     group,
			Consumer:  "crashed-1",
			DLQStream: "invite_emails_dlq",
			BatchSize: 10,
			Block:     10 * time.Millisecond,
		})
		Expect(err).NotTo(HaveOccurred())

		reclaimer = worker.NewRedisReclaimer(client, worker.RedisReclaimerConfig{
			Stream:   stream,
			Group:    group,
			Consumer: "worker-2",
			Interval: time.Hour,
		}, consumer, func(_ context.Context, msg queue.Message) error {
			processed = append(processed, msg)
			return nil
		})
	})

	AfterEach(func() {
		_ = client.Close()
		mr.Close()
	})

	It("should hand a message left unacked to the processor", func() {
		producer := queue.NewRedisProducer(client, stream, nil)
		Expect(producer.Enqueue(ctx, queue.InviteEmailTask(11, 22, ""))).To(Succeed())

		msgs, err := consumer.Read(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(msgs).To(HaveLen(1))

		Expect(reclaimer.ReclaimOnce(ctx)).To(Succeed())
		Expect(processed).To(HaveLen(1))
		Expect(processed[0].InviteID).To(Equal(int64(11)))
	})

	It("should do nothing when nothing is pending", func() {
		Expect(reclaimer.ReclaimOnce(ctx)).To(Succeed())
		Expect(processed).To(BeEmpty())
	})
})
