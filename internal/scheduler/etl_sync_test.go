package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/config"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
)

type mockRunner struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (m *mockRunner) Run(_ context.Context) (*domain.ETLRun, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.release != nil {
		<-m.release
	}

	return &domain.ETLRun{Status: domain.RunStatusSucceeded}, nil
}

func (m *mockRunner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newTestService(runner *mockRunner, enabled bool) *ETLSyncService {
	return NewETLSyncService(runner, &config.Config{
		ETLSync: config.ETLSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	})
}

func TestStart_DisabledDoesNothing(t *testing.T) {
	runner := &mockRunner{}
	service := newTestService(runner, false)

	err := service.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, runner.callCount())
	assert.False(t, service.Status().Enabled)
}

func TestRunPipeline_ExecutesRunner(t *testing.T) {
	runner := &mockRunner{}
	service := newTestService(runner, true)

	service.runPipeline(context.Background())

	assert.Equal(t, 1, runner.callCount())

	status := service.Status()
	assert.False(t, status.RunInProgress)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
}

func TestRunPipeline_SkipsOverlappingRuns(t *testing.T) {
	runner := &mockRunner{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	service := newTestService(runner, true)

	go service.runPipeline(context.Background())
	<-runner.started

	assert.True(t, service.Status().RunInProgress)

	// A second invocation while the first holds the lock must be a no-op
	service.runPipeline(context.Background())
	assert.Equal(t, 1, runner.callCount())

	close(runner.release)
}
