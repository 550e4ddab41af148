package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/config"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/lshigami/Shelfscore/internal/settings"
	"github.com/rs/zerolog/log"
)

type SettingService interface {
	// Snapshot reads the settings table once. Callers hand the result to
	// every component that needs it for the rest of the request.
	Snapshot(ctx context.Context) (settings.Snapshot, error)
	List(ctx context.Context) (*dto.SettingsResponseDTO, error)
	Update(ctx context.Context, key, value string) (*dto.SettingResponseDTO, error)
}

type settingService struct {
	repo            repository.SettingRepository
	displayBoundary float64
}

func NewSettingService(repo repository.SettingRepository, cfg *config.Config) SettingService {
	return &settingService{repo: repo, displayBoundary: cfg.Recommendation.DisplayBoundary}
}

func (s *settingService) Snapshot(ctx context.Context) (settings.Snapshot, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return settings.Snapshot{}, fmt.Errorf("failed to read settings: %w", err)
	}
	var version int64
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.Key] = r.Value
		if r.Version > version {
			version = r.Version
		}
	}
	snap, err := settings.FromValues(version, values, s.displayBoundary)
	if err != nil {
		log.Error().Err(err).Int64("version", version).Msg("Stored settings are invalid")
		return settings.Snapshot{}, fmt.Errorf("stored settings are invalid: %w", err)
	}
	return snap, nil
}

func (s *settingService) List(ctx context.Context) (*dto.SettingsResponseDTO, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	resp := dto.SettingsResponseDTO{Snapshot: snap, Settings: []dto.SettingResponseDTO{}}
	copier.Copy(&resp.Settings, &rows)
	return &resp, nil
}

func (s *settingService) Update(ctx context.Context, key, value string) (*dto.SettingResponseDTO, error) {
	value = strings.TrimSpace(value)
	if _, err := settings.ParsePercentage(key, value); err != nil {
		if errors.Is(err, settings.ErrUnknownKey) {
			return nil, apperr.New(apperr.CodeNotFound, err.Error(), err)
		}
		return nil, apperr.New(apperr.CodeInvalid, err.Error(), err)
	}

	version, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to update setting")
		return nil, fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	log.Info().Str("key", key).Str("value", value).Int64("version", version).Msg("Setting updated")

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	for _, r := range rows {
		if r.Key == key {
			var resp dto.SettingResponseDTO
			copier.Copy(&resp, &r)
			return &resp, nil
		}
	}
	return &dto.SettingResponseDTO{Key: key, Value: value, Version: version}, nil
}
