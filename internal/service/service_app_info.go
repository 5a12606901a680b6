package service

import (
	"context"

	"github.com/denteo/clinic-backend/internal/config"
)

type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}
	return &appInfoService{version: version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
