package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
	usecases "imagecompressor/internal/usecase"
)

// View часть интерфейса, которой пользуется процессор (реализуется tui.Manager)
type View interface {
	ShowPreview(preview *entities.Preview)
	ShowPreviewError(path string, err error)
	SetStatus(text string)
	ShowNotification(title, message string, isError bool)
	SetCompressing(compressing bool)
	QueueUpdateDraw(f func())
}

// ApplicationProcessor связывает действия пользователя со сценариями
type ApplicationProcessor struct {
	compressUseCase *usecases.CompressImageUseCase
	previewUseCase  *usecases.PreviewImageUseCase
	tuiManager      View
	logger          repositories.Logger

	// Выбранный файл меняется только в потоке UI
	selectedPath string

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	compressUseCase *usecases.CompressImageUseCase,
	previewUseCase *usecases.PreviewImageUseCase,
	tuiManager View,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		compressUseCase: compressUseCase,
		previewUseCase:  previewUseCase,
		tuiManager:      tuiManager,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// HandleFileSelected запоминает файл и строит превью. Пустой путь сбрасывает выбор.
// Вызывается в потоке UI.
func (p *ApplicationProcessor) HandleFileSelected(path string) {
	p.selectedPath = path
	if path == "" {
		p.logger.Debug("Выбор файла отменен")
		p.tuiManager.SetStatus(entities.PhaseIdle.String())
		return
	}
	p.logger.Info("Выбран файл: %s", path)

	preview, err := p.previewUseCase.Execute(path)
	if err != nil {
		p.tuiManager.ShowPreviewError(path, err)
		p.tuiManager.SetStatus(fmt.Sprintf("%s: превью недоступно", filepath.Base(path)))
		return
	}

	p.tuiManager.ShowPreview(preview)
	p.tuiManager.SetStatus(fmt.Sprintf("%s (%s, %s)", filepath.Base(path), preview.Format, preview.Natural))
}

// HandleCompress запускает сжатие выбранного файла в отдельной горутине. Вызывается в потоке UI.
func (p *ApplicationProcessor) HandleCompress(quality entities.QualityFraction) {
	if p.selectedPath == "" {
		p.tuiManager.SetStatus("Сначала выберите изображение")
		p.tuiManager.ShowNotification("Ошибка", "Сначала выберите изображение", true)
		return
	}

	source := p.selectedPath
	p.tuiManager.SetCompressing(true)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		result, err := p.compressUseCase.Execute(source, quality)
		// После выхода из UI результат остается только в журнале
		if p.ctx.Err() != nil {
			return
		}
		p.tuiManager.QueueUpdateDraw(func() {
			p.tuiManager.SetCompressing(false)
			if err != nil {
				p.tuiManager.ShowNotification("Ошибка сжатия", describeError(err), true)
				return
			}
			p.tuiManager.ShowNotification("Готово", describeResult(result), false)
		})
	}()
}

// Shutdown дожидается завершения начатого сжатия, не обращаясь к остановленному UI
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func describeResult(result *entities.CompressionResult) string {
	message := fmt.Sprintf("Сохранено: %s\nРазмер: %d → %d байт (%.1f%%)",
		result.DestinationPath, result.OriginalSize, result.CompressedSize, result.CompressionRatio)
	if result.QualityIgnored {
		message += fmt.Sprintf("\n%s сохраняется без потерь, качество не применяется", result.Format)
	}
	return message
}

func describeError(err error) string {
	var unsupported *entities.UnsupportedFormatError
	switch {
	case errors.As(err, &unsupported):
		return fmt.Sprintf("Формат %s не поддерживается. Поддерживаются JPEG и PNG.", unsupported.Format)
	case errors.Is(err, entities.ErrCompressionInProgress):
		return "Сжатие уже выполняется"
	case errors.Is(err, entities.ErrFileNotFound):
		return "Файл не найден"
	case errors.Is(err, entities.ErrInvalidQuality):
		return "Качество должно быть в диапазоне 0-100%"
	default:
		return err.Error()
	}
}
