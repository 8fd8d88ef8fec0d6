package service

import (
	"context"
	"errors"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"

	"github.com/rs/zerolog"
)

type SettingsService interface {
	// QrisImage returns the configured QRIS payment image URL, or an
	// empty string when none has been uploaded yet.
	QrisImage(ctx context.Context) (string, error)
	SetQrisImage(ctx context.Context, image string) error
}

type settingsService struct {
	settingRepo repository.SettingRepository
	log         zerolog.Logger
}

func NewSettingsService(settingRepo repository.SettingRepository, log zerolog.Logger) SettingsService {
	return &settingsService{settingRepo: settingRepo, log: log}
}

func (s *settingsService) QrisImage(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.FindByKey(ctx, model.SettingKeyQris)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Image, nil
}

func (s *settingsService) SetQrisImage(ctx context.Context, image string) error {
	if err := s.settingRepo.Upsert(ctx, model.SettingKeyQris, image); err != nil {
		return err
	}
	s.log.Info().Str("image", image).Msg("qris image updated")
	return nil
}
