package preview

import (
	"github.com/nfnt/resize"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/infrastructure/imageio"
)

// Renderer строит предпросмотр, вписанный в рамку
type Renderer struct {
	interpolation resize.InterpolationFunction
}

// NewRenderer создает рендерер с интерполяцией Lanczos3
func NewRenderer() *Renderer {
	return &Renderer{interpolation: resize.Lanczos3}
}

// Render декодирует изображение и масштабирует его под рамку с сохранением пропорций
func (r *Renderer) Render(path string, box entities.PreviewDimensions) (*entities.Preview, error) {
	img, format, err := imageio.DecodeAny(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	natural := entities.PreviewDimensions{Width: bounds.Dx(), Height: bounds.Dy()}

	scaled, err := entities.ScaleToFit(natural.Width, natural.Height, box.Width, box.Height)
	if err != nil {
		return nil, err
	}

	return &entities.Preview{
		Path:    path,
		Format:  format,
		Natural: natural,
		Scaled:  scaled,
		Image:   resize.Resize(uint(scaled.Width), uint(scaled.Height), img, r.interpolation),
	}, nil
}
