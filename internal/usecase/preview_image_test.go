package usecases

import (
	"errors"
	"image"
	"testing"

	"imagecompressor/internal/domain/entities"
)

type stubRenderer struct {
	box entities.PreviewDimensions
	err error
}

func (r *stubRenderer) Render(path string, box entities.PreviewDimensions) (*entities.Preview, error) {
	r.box = box
	if r.err != nil {
		return nil, r.err
	}
	scaled, err := entities.ScaleToFit(1920, 1080, box.Width, box.Height)
	if err != nil {
		return nil, err
	}
	return &entities.Preview{
		Path:    path,
		Natural: entities.PreviewDimensions{Width: 1920, Height: 1080},
		Scaled:  scaled,
		Image:   image.NewGray(image.Rect(0, 0, scaled.Width, scaled.Height)),
	}, nil
}

func TestPreviewImageUseCase_Execute(t *testing.T) {
	box := entities.PreviewDimensions{Width: 380, Height: 380}
	renderer := &stubRenderer{}
	uc := NewPreviewImageUseCase(renderer, &recordingLogger{}, box)

	preview, err := uc.Execute("wide.jpg")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if renderer.box != box {
		t.Errorf("Renderer got box %s, want %s", renderer.box, box)
	}
	if preview.Scaled != (entities.PreviewDimensions{Width: 380, Height: 214}) {
		t.Errorf("Scaled = %s, want 380x214", preview.Scaled)
	}
}

func TestPreviewImageUseCase_Errors(t *testing.T) {
	logger := &recordingLogger{}
	uc := NewPreviewImageUseCase(&stubRenderer{err: &entities.IOError{Op: "open", Path: "x", Err: errors.New("boom")}},
		logger, entities.PreviewDimensions{Width: 380, Height: 380})

	if _, err := uc.Execute(""); !errors.Is(err, entities.ErrFileNotSelected) {
		t.Errorf("Expected ErrFileNotSelected, got %v", err)
	}
	if _, err := uc.Execute("x"); !errors.Is(err, entities.ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
	if logger.count("WARNING") != 1 {
		t.Errorf("Expected one warning, got %v", logger.entries)
	}
}
