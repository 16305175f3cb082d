package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rl1809/product-factory/internal/core/domain"
)

// Mock NoticePublisher
type mockPublisher struct {
	mu        sync.Mutex
	published []domain.RegistrationNotice
	failFor   string
}

func (m *mockPublisher) Publish(ctx context.Context, notice domain.RegistrationNotice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if notice.Product.Name == m.failFor {
		return errors.New("connection refused")
	}
	m.published = append(m.published, notice)
	return nil
}

func (m *mockPublisher) names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.published))
	for _, n := range m.published {
		names = append(names, n.Product.Name)
	}
	return names
}

func TestRunNoticeWorker_PublishesAll(t *testing.T) {
	registry := NewInventoryRegistry(zap.NewNop(), 10)
	publisher := &mockPublisher{}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		RunNoticeWorker(0, registry.Notices(), publisher, zap.NewNop())
	}()

	for _, v := range domain.Variants() {
		p, _ := v.CreateProduct()
		assert.NoError(t, registry.Register(context.Background(), p))
	}

	registry.Close()
	wg.Wait()

	assert.Equal(t, []string{"Milk", "Bread", "Apple", "Soap"}, publisher.names())
}

func TestRunNoticeWorker_FailureDoesNotStopLoop(t *testing.T) {
	registry := NewInventoryRegistry(zap.NewNop(), 10)
	publisher := &mockPublisher{failFor: "Bread"}
	core, logs := observer.New(zap.ErrorLevel)

	for _, v := range []domain.Variant{domain.VariantBread, domain.VariantMilk} {
		p, _ := v.CreateProduct()
		assert.NoError(t, registry.Register(context.Background(), p))
	}
	registry.Close()

	RunNoticeWorker(7, registry.Notices(), publisher, zap.New(core))

	assert.Equal(t, []string{"Milk"}, publisher.names())

	failures := logs.FilterMessage("failed to publish notice").All()
	if assert.Len(t, failures, 1) {
		assert.Equal(t, int64(7), failures[0].ContextMap()["worker"])
		assert.Equal(t, "Bread", failures[0].ContextMap()["product"])
	}
}
