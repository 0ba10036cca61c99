package worker

import (
	"context"
)

// Worker - долгоживущий потребитель стрима.
// Start блокируется до Stop или отмены ctx; Stop можно вызывать повторно.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
