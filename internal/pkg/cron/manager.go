package cron

import (
	"Pulse/internal/api/config"
	"Pulse/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// 默认每小时整点采样一次
const defaultSnapshotSpec = "0 0 * * * *"

type Manager struct {
	engine      *cron.Cron
	snapshotJob *job.SnapshotJob
}

func NewCronManager(snapshotJob *job.SnapshotJob) *Manager {
	return &Manager{
		engine:      cron.New(cron.WithSeconds()),
		snapshotJob: snapshotJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Snapshot.Cron
	if spec == "" {
		spec = defaultSnapshotSpec
	}

	if _, err := s.engine.AddJob(spec, s.snapshotJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
