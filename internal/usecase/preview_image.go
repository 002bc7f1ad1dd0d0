package usecases

import (
	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
)

// PreviewImageUseCase сценарий построения предпросмотра выбранного файла
type PreviewImageUseCase struct {
	renderer repositories.PreviewRenderer
	logger   repositories.Logger
	box      entities.PreviewDimensions
}

// NewPreviewImageUseCase создает сценарий предпросмотра с рамкой box
func NewPreviewImageUseCase(renderer repositories.PreviewRenderer, logger repositories.Logger, box entities.PreviewDimensions) *PreviewImageUseCase {
	return &PreviewImageUseCase{
		renderer: renderer,
		logger:   logger,
		box:      box,
	}
}

// Execute строит предпросмотр
func (uc *PreviewImageUseCase) Execute(path string) (*entities.Preview, error) {
	if path == "" {
		return nil, entities.ErrFileNotSelected
	}

	preview, err := uc.renderer.Render(path, uc.box)
	if err != nil {
		uc.logger.Warning("Не удалось построить предпросмотр %s: %v", path, err)
		return nil, err
	}

	uc.logger.Debug("Предпросмотр %s: %s -> %s", path, preview.Natural, preview.Scaled)
	return preview, nil
}
