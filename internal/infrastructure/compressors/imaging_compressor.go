package compressors

import (
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/infrastructure/imageio"
)

// ImagingCompressor реализация на github.com/disintegration/imaging.
// При декодировании учитывается EXIF-ориентация, так как при перекодировании
// метаданные теряются.
type ImagingCompressor struct{}

// NewImagingCompressor создает компрессор на базе imaging
func NewImagingCompressor() *ImagingCompressor {
	return &ImagingCompressor{}
}

// Name возвращает имя алгоритма
func (c *ImagingCompressor) Name() string {
	return entities.BackendImaging
}

// Compress сжимает изображение с помощью imaging
func (c *ImagingCompressor) Compress(sourcePath, destinationPath string, quality entities.QualityFraction) (*entities.CompressionResult, error) {
	if err := quality.Validate(); err != nil {
		return nil, err
	}

	info, err := imageio.Probe(sourcePath)
	if err != nil {
		return nil, err
	}
	if !info.Supported {
		return nil, &entities.UnsupportedFormatError{Path: sourcePath, Format: info.FormatName}
	}

	img, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &entities.IOError{Op: "декодирование", Path: sourcePath, Err: err}
	}

	result := newResult(sourcePath, destinationPath, quality)
	result.Format = info.Format
	result.OriginalSize = info.Size
	bounds := img.Bounds()
	result.Dimensions = entities.PreviewDimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	format := imaging.JPEG
	if info.Format == entities.FormatPNG {
		format = imaging.PNG
		result.QualityIgnored = true
	}

	size, err := writeAtomically(destinationPath, func(w io.Writer) error {
		return imaging.Encode(w, img, format,
			imaging.JPEGQuality(quality.JPEGQuality()),
			imaging.PNGCompressionLevel(png.BestCompression),
		)
	})
	if err != nil {
		return nil, err
	}

	result.CompressedSize = size
	result.Success = true
	result.CalculateCompressionRatio()
	return result, nil
}
