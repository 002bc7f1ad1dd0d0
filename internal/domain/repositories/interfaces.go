package repositories

import (
	"imagecompressor/internal/domain/entities"
)

// ImageCompressor интерфейс для сжатия изображений
type ImageCompressor interface {
	Name() string
	Compress(sourcePath, destinationPath string, quality entities.QualityFraction) (*entities.CompressionResult, error)
}

// PreviewRenderer строит уменьшенную копию изображения для предпросмотра
type PreviewRenderer interface {
	Render(path string, box entities.PreviewDimensions) (*entities.Preview, error)
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.ImageFile, error)
	FileExists(path string) bool
	CreateDirectory(path string) error
	ListDirectory(directory string) ([]entities.DirEntry, error)
}

// AppConfigRepository интерфейс для загрузки конфигурации приложения
type AppConfigRepository interface {
	Load(configPath string) (*entities.Config, error)
}
