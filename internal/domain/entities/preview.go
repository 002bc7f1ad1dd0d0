package entities

import (
	"fmt"
	"image"
	"math"
)

// Размер области предпросмотра по умолчанию
const (
	DefaultPreviewWidth  = 380
	DefaultPreviewHeight = 380
)

// PreviewDimensions размеры изображения в пикселях
type PreviewDimensions struct {
	Width  int
	Height int
}

func (d PreviewDimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Fits проверяет, что размеры не выходят за рамку
func (d PreviewDimensions) Fits(box PreviewDimensions) bool {
	return d.Width <= box.Width && d.Height <= box.Height
}

// ScaleToFit вписывает изображение в рамку с сохранением пропорций.
// Сначала ширина берется по рамке; если высота не помещается, берется высота рамки.
func ScaleToFit(naturalWidth, naturalHeight, boxWidth, boxHeight int) (PreviewDimensions, error) {
	if naturalWidth <= 0 || naturalHeight <= 0 || boxWidth <= 0 || boxHeight <= 0 {
		return PreviewDimensions{}, fmt.Errorf("%w: %dx%d в рамке %dx%d",
			ErrInvalidDimensions, naturalWidth, naturalHeight, boxWidth, boxHeight)
	}

	aspectRatio := float64(naturalWidth) / float64(naturalHeight)

	width := boxWidth
	height := int(math.Round(float64(boxWidth) / aspectRatio))

	if height > boxHeight {
		height = boxHeight
		width = int(math.Round(float64(boxHeight) * aspectRatio))
	}

	// Очень вытянутые изображения не должны схлопываться в ноль
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return PreviewDimensions{Width: width, Height: height}, nil
}

// Preview готовый предпросмотр изображения
type Preview struct {
	Path    string
	Format  string
	Natural PreviewDimensions
	Scaled  PreviewDimensions
	Image   image.Image
}
