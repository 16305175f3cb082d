package port

import (
	"context"

	"github.com/rl1809/product-factory/internal/core/domain"
)

type NoticePublisher interface {
	// Publish broadcasts a registration notice to subscribers. Nothing is stored.
	Publish(ctx context.Context, notice domain.RegistrationNotice) error
}
