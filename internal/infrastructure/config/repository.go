package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"imagecompressor/internal/domain/entities"
)

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла.
// Файл необязателен: без него действуют значения по умолчанию,
// а ключи из файла перекрывают только то, что в нем задано.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	config := entities.DefaultConfig()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("проверка конфигурации %s: %w", configPath, err)
	}

	return config, nil
}
