package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/metrics"
	"github.com/rl1809/product-factory/internal/singleton"
)

// InventoryRegistry records that products were added to the inventory. It
// keeps no product state: registering logs the product and, when the
// registry was built with a queue, emits a RegistrationNotice.
type InventoryRegistry struct {
	logger    *zap.Logger
	notices   chan domain.RegistrationNotice
	closeOnce sync.Once
}

// NewInventoryRegistry builds a registry. A queueSize of zero disables
// notices and leaves only the log line.
func NewInventoryRegistry(logger *zap.Logger, queueSize int) *InventoryRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &InventoryRegistry{logger: logger}
	if queueSize > 0 {
		r.notices = make(chan domain.RegistrationNotice, queueSize)
	}
	return r
}

var shared = singleton.New(func() *InventoryRegistry {
	return &InventoryRegistry{}
})

// SharedRegistry returns the process-wide registry, creating it on first use.
// It logs through whatever global zap logger is installed when Register runs
// and emits no notices.
func SharedRegistry() *InventoryRegistry {
	return shared.Get()
}

func SharedRegistryInitialized() bool {
	return shared.Initialized()
}

func (r *InventoryRegistry) log() *zap.Logger {
	if r.logger == nil {
		return zap.L()
	}
	return r.logger
}

// Register logs and counts the product only once its notice, if any, is
// queued. A done ctx fails the call without side effects. Register must not
// be called after Close.
func (r *InventoryRegistry) Register(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("register %s: %w", product.Name, err)
	}

	if r.notices != nil {
		notice := domain.NewRegistrationNotice(product)
		select {
		case r.notices <- notice:
		case <-ctx.Done():
			return fmt.Errorf("enqueue notice for %s: %w", product.Name, ctx.Err())
		}
	}

	r.log().Info(fmt.Sprintf("Product %s added to inventory.", product.Name),
		zap.String("product", product.Name),
		zap.String("price", product.PriceText()))
	metrics.Registrations.Inc()
	return nil
}

// Notices returns the receive side of the notice queue, or nil when notices
// are disabled.
func (r *InventoryRegistry) Notices() <-chan domain.RegistrationNotice {
	return r.notices
}

func (r *InventoryRegistry) Close() {
	r.closeOnce.Do(func() {
		if r.notices != nil {
			close(r.notices)
		}
	})
}
