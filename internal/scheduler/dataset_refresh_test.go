package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "0 5 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)

	dataset := mocks.NewMockRefresher(ctrl)
	dataset.EXPECT().Refresh(gomock.Any()).Return(nil)

	service := NewDatasetRefreshService(dataset, newTestConfig(true))
	service.runRefresh(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.LastRefreshError)
	assert.False(t, status.LastStartedAt.IsZero())
	assert.False(t, status.LastFinishedAt.IsZero())
}

func TestRunRefresh_ErrorIsExposedInStatus(t *testing.T) {
	ctrl := gomock.NewController(t)

	dataset := mocks.NewMockRefresher(ctrl)
	dataset.EXPECT().Refresh(gomock.Any()).Return(errors.New("connection refused"))

	service := NewDatasetRefreshService(dataset, newTestConfig(true))
	service.runRefresh(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Contains(t, status.LastRefreshError, "connection refused")
}

func TestRunRefresh_ErrorIsClearedOnNextSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)

	dataset := mocks.NewMockRefresher(ctrl)
	gomock.InOrder(
		dataset.EXPECT().Refresh(gomock.Any()).Return(errors.New("timeout")),
		dataset.EXPECT().Refresh(gomock.Any()).Return(nil),
	)

	service := NewDatasetRefreshService(dataset, newTestConfig(true))
	service.runRefresh(context.Background())
	require.NotEmpty(t, service.Status().LastRefreshError)

	service.runRefresh(context.Background())
	assert.Empty(t, service.Status().LastRefreshError)
}

func TestRunRefresh_IgnoresOverlappingTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)

	started := make(chan struct{})
	release := make(chan struct{})

	dataset := mocks.NewMockRefresher(ctrl)
	dataset.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	service := NewDatasetRefreshService(dataset, newTestConfig(true))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runRefresh(context.Background())
	}()

	<-started
	assert.True(t, service.Status().Running)

	// Disparo concorrente é ignorado: Refresh não é chamado de novo
	service.runRefresh(context.Background())

	close(release)
	wg.Wait()

	assert.False(t, service.Status().Running)
}

func TestStart_DisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Refresh nunca deve ser chamado quando a recarga está desabilitada
	dataset := mocks.NewMockRefresher(ctrl)

	service := NewDatasetRefreshService(dataset, newTestConfig(false))
	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
}

func TestStart_InvalidCronSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := newTestConfig(true)
	cfg.DatasetRefresh.CronSchedule = "não é um cron"

	service := NewDatasetRefreshService(mocks.NewMockRefresher(ctrl), cfg)
	err := service.Start(context.Background())
	assert.Error(t, err)
}

func TestStatus_ReflectsConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := NewDatasetRefreshService(mocks.NewMockRefresher(ctrl), newTestConfig(true))

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 5 * * *", status.CronSchedule)
	assert.True(t, status.LastStartedAt.IsZero())
}
