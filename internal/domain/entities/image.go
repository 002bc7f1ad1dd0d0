package entities

import (
	"path/filepath"
	"strings"
	"time"
)

// ImageFormat поддерживаемый растровый формат
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
)

// DefaultOutputPrefix префикс имени сжатого файла
const DefaultOutputPrefix = "compressed_"

// ParseImageFormat сопоставляет имя декодера (image.Decode) с форматом
func ParseImageFormat(name string) (ImageFormat, bool) {
	switch strings.ToLower(name) {
	case "jpeg", "jpg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	default:
		return "", false
	}
}

// FormatFromExtension определяет формат по расширению файла
func FormatFromExtension(path string) (ImageFormat, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseImageFormat(ext)
}

// IsImageFile проверяет, является ли файл изображением поддерживаемого формата
func IsImageFile(path string) bool {
	_, ok := FormatFromExtension(path)
	return ok
}

// IsLossless формат без оси качества
func (f ImageFormat) IsLossless() bool {
	return f == FormatPNG
}

func (f ImageFormat) String() string {
	return string(f)
}

// ImageFile исходный файл изображения
type ImageFile struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
	Format       ImageFormat
}

// OutputPath путь сжатой копии: dir/prefix+имя исходного файла
func OutputPath(sourcePath, outputDir, prefix string) string {
	return filepath.Join(outputDir, prefix+filepath.Base(sourcePath))
}

// CompressionResult представляет результат сжатия
type CompressionResult struct {
	SourcePath       string
	DestinationPath  string
	Format           ImageFormat
	Quality          QualityFraction
	Dimensions       PreviewDimensions
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	// QualityIgnored выставляется, когда формат без потерь и качество не влияет на результат
	QualityIgnored bool
	Success        bool
	Error          error
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *CompressionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
	}
}

// IsEffective проверяет, было ли сжатие эффективным
func (cr *CompressionResult) IsEffective() bool {
	return cr.Success && cr.CompressionRatio > 0
}

// DirEntry элемент списка в окне выбора файла
type DirEntry struct {
	Name  string
	Path  string
	IsDir bool
	// IsImage файл поддерживаемого формата
	IsImage bool
}
