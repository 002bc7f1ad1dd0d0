package compressors

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
	"imagecompressor/internal/infrastructure/imageio"
)

// StdImageCompressor перекодирует изображения кодировщиками стандартной библиотеки
type StdImageCompressor struct{}

// NewImageCompressor создает новый компрессор изображений
func NewImageCompressor() *StdImageCompressor {
	return &StdImageCompressor{}
}

// New выбирает реализацию по имени алгоритма из конфигурации
func New(backend string) (repositories.ImageCompressor, error) {
	switch strings.ToLower(backend) {
	case "", entities.BackendStdlib:
		return NewImageCompressor(), nil
	case entities.BackendImaging:
		return NewImagingCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidBackend, backend)
	}
}

// Name возвращает имя алгоритма
func (c *StdImageCompressor) Name() string {
	return entities.BackendStdlib
}

// Compress декодирует исходный файл и кодирует его в том же формате с заданным качеством
func (c *StdImageCompressor) Compress(sourcePath, destinationPath string, quality entities.QualityFraction) (*entities.CompressionResult, error) {
	// Качество проверяется до обращения к кодировщику
	if err := quality.Validate(); err != nil {
		return nil, err
	}

	img, info, err := imageio.DecodeSupported(sourcePath)
	if err != nil {
		return nil, err
	}

	result := newResult(sourcePath, destinationPath, quality)
	result.Format = info.Format
	result.Dimensions = info.Dimensions
	result.OriginalSize = info.Size

	var encode func(w io.Writer) error
	switch info.Format {
	case entities.FormatJPEG:
		options := &jpeg.Options{Quality: quality.JPEGQuality()}
		encode = func(w io.Writer) error {
			return jpeg.Encode(w, img, options)
		}
	case entities.FormatPNG:
		// PNG без потерь: качество принимается, но на результат не влияет
		encoder := &png.Encoder{CompressionLevel: png.BestCompression}
		encode = func(w io.Writer) error {
			return encoder.Encode(w, img)
		}
		result.QualityIgnored = true
	}

	size, err := writeAtomically(destinationPath, encode)
	if err != nil {
		return nil, err
	}

	result.CompressedSize = size
	result.Success = true
	result.CalculateCompressionRatio()
	return result, nil
}
