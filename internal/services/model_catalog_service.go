package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"chatmate/internal/assets"
	"chatmate/internal/models"
)

// ModelCatalogService exposes the embedded catalog of selectable chat
// models.
type ModelCatalogService interface {
	List() []models.ModelOption
	Contains(value string) bool
	Label(value string) string
}

type modelCatalogService struct {
	mu      sync.RWMutex
	options []models.ModelOption
}

type rawModelFile struct {
	Models []models.ModelOption `json:"models"`
}

func NewModelCatalogService() (ModelCatalogService, error) {
	var parsed rawModelFile
	if err := json.Unmarshal(assets.ModelsData, &parsed); err != nil {
		return nil, fmt.Errorf("parse models asset: %w", err)
	}

	options := make([]models.ModelOption, 0, len(parsed.Models))
	for _, opt := range parsed.Models {
		value := strings.TrimSpace(opt.Value)
		if value == "" {
			continue
		}
		options = append(options, models.ModelOption{
			Label: strings.TrimSpace(opt.Label),
			Value: value,
		})
	}

	return &modelCatalogService{options: options}, nil
}

func (s *modelCatalogService) List() []models.ModelOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ModelOption, len(s.options))
	copy(out, s.options)
	return out
}

func (s *modelCatalogService) Contains(value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opt := range s.options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Label returns the display name for a model value, falling back to
// the value itself for models outside the catalog.
func (s *modelCatalogService) Label(value string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opt := range s.options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
