package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-locator/internal/worker"
)

// blockingWorker работает, пока его не остановят
type blockingWorker struct {
	*worker.BaseWorker
	started chan struct{}
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{
		BaseWorker: worker.NewBaseWorker(name, "group", zap.NewNop()),
		started:    make(chan struct{}),
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	close(w.started)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestWorkerManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	m.Register(a)
	m.Register(b)

	require.NoError(t, m.Start(context.Background()))

	for _, w := range []*blockingWorker{a, b} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker %s not started", w.Name())
		}
	}

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	// повторная остановка безопасна
	assert.NoError(t, a.Stop())
}

// failingWorker завершается ошибкой сразу после старта
type failingWorker struct {
	*worker.BaseWorker
}

func (w *failingWorker) Start(context.Context) error {
	return errors.New("consumer group unavailable")
}

// stuckWorker игнорирует сигнал остановки
type stuckWorker struct {
	*worker.BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopReportsWorkerFailures(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	m.Register(&failingWorker{BaseWorker: worker.NewBaseWorker("stats", "group", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats: consumer group unavailable")
}

func TestWorkerManager_StopTimesOut(t *testing.T) {
	w := &stuckWorker{
		BaseWorker: worker.NewBaseWorker("stuck", "group", zap.NewNop()),
		release:    make(chan struct{}),
	}
	defer close(w.release)

	m := worker.NewWorkerManager(zap.NewNop())
	m.SetShutdownTimeout(50 * time.Millisecond)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestBaseWorker_ConsumerName(t *testing.T) {
	w := worker.NewBaseWorker("stats", "group", zap.NewNop())

	assert.Equal(t, "stats", w.Name())
	assert.Equal(t, "group", w.ConsumerGroup())
	assert.NotEmpty(t, w.ConsumerName())
	assert.NotNil(t, w.Logger())
}
