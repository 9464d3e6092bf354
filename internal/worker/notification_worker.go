package worker

import (
	"context"
	"sync"

	"go-gin-event-commerce/internal/metrics"
	"go-gin-event-commerce/internal/notify"
	"go-gin-event-commerce/internal/queue"
	"go-gin-event-commerce/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱通知隊列並寄送
	Start(ctx context.Context) error
	// 等待處理中的訊息結束
	Wait()
}

type NotificationWorkerImpl struct {
	queue    queue.NotificationQueue
	provider notify.Provider
	metrics  *metrics.Metrics
	wg       sync.WaitGroup
}

func NewNotificationWorker(queue queue.NotificationQueue, provider notify.Provider, m *metrics.Metrics) NotificationWorker {
	return &NotificationWorkerImpl{
		queue:    queue,
		provider: provider,
		metrics:  m,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for msg := range msgs {
			// at-most-once：先 ack 再寄送，寄送失敗不重試
			msg.Ack()
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) Wait() {
	w.wg.Wait()
}

func (w *NotificationWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker")
	n := msg.Data
	if n == nil || n.To == "" {
		log.Warn("dropping notification without recipient")
		return
	}

	body, err := notify.Render(n)
	if err != nil {
		log.Error("render notification failed", zap.String("kind", string(n.Kind)), zap.Error(err))
		w.metrics.Notification(string(n.Kind), "render_failed")
		return
	}

	if err := w.provider.Send(ctx, []string{n.To}, n.Subject, body); err != nil {
		log.Warn("send notification failed", zap.String("kind", string(n.Kind)), zap.String("to", n.To), zap.Error(err))
		w.metrics.Notification(string(n.Kind), "send_failed")
		return
	}
	w.metrics.Notification(string(n.Kind), "sent")
}
