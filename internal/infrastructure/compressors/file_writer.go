package compressors

import (
	"io"
	"os"
	"path/filepath"

	"imagecompressor/internal/domain/entities"
)

// writeAtomically кодирует во временный файл рядом с целевым и переименовывает его.
// Существующий файл по пути назначения перезаписывается.
func writeAtomically(destinationPath string, encode func(w io.Writer) error) (int64, error) {
	dir := filepath.Dir(destinationPath)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(destinationPath)+".*.tmp")
	if err != nil {
		return 0, &entities.IOError{Op: "создание временного файла", Path: destinationPath, Err: err}
	}
	tmpPath := tmpFile.Name()

	if err := encode(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return 0, &entities.IOError{Op: "кодирование", Path: destinationPath, Err: err}
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, &entities.IOError{Op: "запись", Path: destinationPath, Err: err}
	}

	if err := os.Rename(tmpPath, destinationPath); err != nil {
		os.Remove(tmpPath)
		return 0, &entities.IOError{Op: "переименование временного файла", Path: destinationPath, Err: err}
	}

	info, err := os.Stat(destinationPath)
	if err != nil {
		return 0, &entities.IOError{Op: "чтение сведений", Path: destinationPath, Err: err}
	}
	return info.Size(), nil
}

// newResult заполняет общие поля результата
func newResult(sourcePath, destinationPath string, quality entities.QualityFraction) *entities.CompressionResult {
	return &entities.CompressionResult{
		SourcePath:      sourcePath,
		DestinationPath: destinationPath,
		Quality:         quality,
	}
}
