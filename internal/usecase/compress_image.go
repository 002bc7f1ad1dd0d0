package usecases

import (
	"fmt"
	"path/filepath"
	"sync"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
)

// CompressImageOptions параметры размещения выходного файла
type CompressImageOptions struct {
	OutputDirectory     string
	OutputPrefix        string
	WarnLosslessQuality bool
}

// CompressImageUseCase сценарий сжатия выбранного изображения.
// Одновременно выполняется не больше одного сжатия.
type CompressImageUseCase struct {
	compressor     repositories.ImageCompressor
	fileRepo       repositories.FileRepository
	logger         repositories.Logger
	options        CompressImageOptions
	statusReporter func(entities.OperationStatus)

	mu sync.Mutex
}

// NewCompressImageUseCase создает новый сценарий сжатия изображения
func NewCompressImageUseCase(
	compressor repositories.ImageCompressor,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
	options CompressImageOptions,
) *CompressImageUseCase {
	if options.OutputDirectory == "" {
		options.OutputDirectory = "."
	}
	if options.OutputPrefix == "" {
		options.OutputPrefix = entities.DefaultOutputPrefix
	}
	return &CompressImageUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		logger:     logger,
		options:    options,
	}
}

// SetStatusReporter устанавливает функцию для отчета о ходе операции
func (uc *CompressImageUseCase) SetStatusReporter(reporter func(entities.OperationStatus)) {
	uc.statusReporter = reporter
}

func (uc *CompressImageUseCase) reportStatus(status *entities.OperationStatus) {
	if uc.statusReporter != nil {
		uc.statusReporter(*status)
	}
}

// DestinationFor путь, по которому будет записана сжатая копия
func (uc *CompressImageUseCase) DestinationFor(sourcePath string) string {
	return entities.OutputPath(sourcePath, uc.options.OutputDirectory, uc.options.OutputPrefix)
}

// Execute сжимает изображение с заданным качеством
func (uc *CompressImageUseCase) Execute(sourcePath string, quality entities.QualityFraction) (*entities.CompressionResult, error) {
	if !uc.mu.TryLock() {
		return nil, entities.ErrCompressionInProgress
	}
	defer uc.mu.Unlock()

	if sourcePath == "" {
		return nil, entities.ErrFileNotSelected
	}

	status := entities.NewOperationStatus()
	status.Select(sourcePath)

	result, err := uc.compress(sourcePath, quality, status)
	if err != nil {
		uc.logger.Error("Ошибка сжатия %s: %v", filepath.Base(sourcePath), err)
		status.Fail(err)
		uc.reportStatus(status)
		return nil, err
	}

	status.Complete(result)
	uc.reportStatus(status)
	return result, nil
}

func (uc *CompressImageUseCase) compress(sourcePath string, quality entities.QualityFraction, status *entities.OperationStatus) (*entities.CompressionResult, error) {
	// Качество проверяется до обращения к кодировщику
	if err := quality.Validate(); err != nil {
		return nil, err
	}

	if !uc.fileRepo.FileExists(sourcePath) {
		return nil, &entities.IOError{Op: "чтение", Path: sourcePath, Err: entities.ErrFileNotFound}
	}

	fileInfo, err := uc.fileRepo.GetFileInfo(sourcePath)
	if err != nil {
		return nil, &entities.IOError{Op: "чтение сведений", Path: sourcePath, Err: err}
	}

	if err := uc.fileRepo.CreateDirectory(uc.options.OutputDirectory); err != nil {
		return nil, &entities.IOError{Op: "создание директории", Path: uc.options.OutputDirectory, Err: err}
	}

	destinationPath := uc.DestinationFor(sourcePath)

	status.Start(entities.PhaseCompressing, fmt.Sprintf("Сжатие %s (%s)...", filepath.Base(sourcePath), quality))
	uc.reportStatus(status)
	uc.logger.Info("Сжатие %s -> %s, качество %s, алгоритм %s",
		sourcePath, destinationPath, quality, uc.compressor.Name())

	result, err := uc.compressor.Compress(sourcePath, destinationPath, quality)
	if err != nil {
		return nil, err
	}

	result.OriginalSize = fileInfo.Size
	result.CalculateCompressionRatio()

	if result.QualityIgnored && uc.options.WarnLosslessQuality {
		uc.logger.Warning("Формат %s сжимается без потерь: качество %s не влияет на размер файла",
			result.Format, quality)
	}

	uc.logger.Success("Изображение сжато: %s (%.2f KB -> %.2f KB, %.1f%%)",
		result.DestinationPath,
		float64(result.OriginalSize)/1024,
		float64(result.CompressedSize)/1024,
		result.CompressionRatio,
	)

	return result, nil
}
