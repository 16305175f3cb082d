package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/metrics"
	"github.com/rl1809/product-factory/internal/port"
)

const publishTimeout = 5 * time.Second

// RunNoticeWorker publishes notices until the queue is closed. A failed
// publish is logged and dropped.
func RunNoticeWorker(id int, queue <-chan domain.RegistrationNotice, publisher port.NoticePublisher, logger *zap.Logger) {
	for notice := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)

		if err := publisher.Publish(ctx, notice); err != nil {
			metrics.NoticePublishFailures.Inc()
			logger.Error("failed to publish notice",
				zap.Int("worker", id),
				zap.String("notice_id", notice.ID),
				zap.String("product", notice.Product.Name),
				zap.Error(err))
		} else {
			metrics.NoticesPublished.Inc()
			logger.Debug("published notice",
				zap.Int("worker", id),
				zap.String("notice_id", notice.ID))
		}

		cancel()
	}
}
