package main

import (
	"log"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
	"imagecompressor/internal/infrastructure/compressors"
	"imagecompressor/internal/infrastructure/config"
	"imagecompressor/internal/infrastructure/logging"
	"imagecompressor/internal/infrastructure/preview"
	infraRepos "imagecompressor/internal/infrastructure/repositories"
	"imagecompressor/internal/presentation/tui"
	usecases "imagecompressor/internal/usecase"
)

func main() {
	// Загрузка конфигурации
	var configRepo repositories.AppConfigRepository = config.NewRepository()
	appConfig, err := configRepo.Load("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Базовый логгер (в файл)
	fileLogger, err := logging.NewFileLogger(appConfig.Output)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}

	fileRepo := infraRepos.NewFileSystemRepository()

	// Инициализация TUI
	tuiManager := tui.NewManager(appConfig, fileRepo)
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := tui.NewUILogger(fileLogger, tuiManager, appConfig.Output.LogLevel == "debug")
	defer logger.Close()
	tuiManager.SetLogger(logger)

	// Компрессор выбирается по конфигурации
	compressor, err := compressors.New(appConfig.Compression.Backend)
	if err != nil {
		log.Fatalf("Ошибка выбора компрессора: %v", err)
	}

	compressUseCase := usecases.NewCompressImageUseCase(compressor, fileRepo, logger, usecases.CompressImageOptions{
		OutputDirectory:     appConfig.Compression.OutputDirectory,
		OutputPrefix:        appConfig.Compression.OutputPrefix,
		WarnLosslessQuality: appConfig.Compression.WarnLosslessQuality,
	})
	previewUseCase := usecases.NewPreviewImageUseCase(preview.NewRenderer(), logger, appConfig.UI.PreviewBox())

	// Подключаем репортер статуса к TUI
	compressUseCase.SetStatusReporter(func(s entities.OperationStatus) {
		tuiManager.SendStatusUpdate(s)
	})

	processor := NewApplicationProcessor(compressUseCase, previewUseCase, tuiManager, logger)
	tuiManager.SetOnFileSelected(processor.HandleFileSelected)
	tuiManager.SetOnCompress(processor.HandleCompress)

	logger.Info("Запуск: компрессор %s, качество по умолчанию %d%%", compressor.Name(), appConfig.Compression.DefaultQuality)

	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	processor.Shutdown()
	tuiManager.Cleanup()
}
