package cron

import log "log/slog"

// InitCron 注册并启动定时任务，未启用时直接返回
func InitCron(mgr *Manager, enable bool) error {
	if !enable {
		log.Info("Cron Jobs disabled")
		return nil
	}
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()
	return nil
}
