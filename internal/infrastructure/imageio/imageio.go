// Package imageio определяет формат исходного изображения по содержимому
// и декодирует его, приводя ошибки к доменной классификации.
package imageio

import (
	"errors"
	"image"
	_ "image/gif" // GIF распознается, чтобы отказ называл формат
	"image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imagecompressor/internal/domain/entities"
)

// Info результат определения формата без полного декодирования
type Info struct {
	Path       string
	FormatName string
	Format     entities.ImageFormat
	Supported  bool
	Dimensions entities.PreviewDimensions
	Size       int64
}

// Probe читает заголовок файла и определяет формат по содержимому
func Probe(path string) (*Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &entities.IOError{Op: "открытие", Path: path, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, &entities.IOError{Op: "чтение сведений", Path: path, Err: err}
	}

	config, name, err := image.DecodeConfig(file)
	if err != nil {
		return nil, classifyDecodeError(path, "чтение заголовка", err)
	}

	info := &Info{
		Path:       path,
		FormatName: name,
		Dimensions: entities.PreviewDimensions{Width: config.Width, Height: config.Height},
		Size:       stat.Size(),
	}
	info.Format, info.Supported = entities.ParseImageFormat(name)
	return info, nil
}

// DecodeSupported декодирует только JPEG и PNG.
// Остальные распознанные форматы дают UnsupportedFormatError.
func DecodeSupported(path string) (image.Image, *Info, error) {
	info, err := Probe(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.Supported {
		return nil, info, &entities.UnsupportedFormatError{Path: path, Format: info.FormatName}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, info, &entities.IOError{Op: "открытие", Path: path, Err: err}
	}
	defer file.Close()

	var img image.Image
	switch info.Format {
	case entities.FormatJPEG:
		img, err = jpeg.Decode(file)
	case entities.FormatPNG:
		img, err = png.Decode(file)
	}
	if err != nil {
		return nil, info, &entities.IOError{Op: "декодирование", Path: path, Err: err}
	}
	return img, info, nil
}

// DecodeAny декодирует любой зарегистрированный формат (для предпросмотра)
func DecodeAny(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", &entities.IOError{Op: "открытие", Path: path, Err: err}
	}
	defer file.Close()

	img, name, err := image.Decode(file)
	if err != nil {
		return nil, "", classifyDecodeError(path, "декодирование", err)
	}
	return img, name, nil
}

// classifyDecodeError нераспознанные данные считаются неподдерживаемым форматом,
// остальное ошибкой чтения
func classifyDecodeError(path, op string, err error) error {
	if errors.Is(err, image.ErrFormat) {
		return &entities.UnsupportedFormatError{Path: path, Format: "unknown"}
	}
	return &entities.IOError{Op: op, Path: path, Err: err}
}
