package service

import (
	"context"

	"assessment-service/internal/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) ListSettings(ctx context.Context) (map[string]string, error) {
	return s.Repo.List(ctx)
}

func (s *SettingsService) UpdateSetting(ctx context.Context, key, value string) error {
	return s.Repo.Set(ctx, key, value)
}
