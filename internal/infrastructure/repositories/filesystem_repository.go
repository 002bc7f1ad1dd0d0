package repositories

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"imagecompressor/internal/domain/entities"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о файле изображения
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	format, _ := entities.FormatFromExtension(path)
	return &entities.ImageFile{
		Path:         path,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
		Format:       format,
	}, nil
}

// FileExists проверяет существование обычного файла
func (r *FileSystemRepository) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDirectory создает директорию
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListDirectory возвращает содержимое директории: сначала папки, затем файлы
func (r *FileSystemRepository) ListDirectory(directory string) ([]entities.DirEntry, error) {
	items, err := os.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.DirEntry, 0, len(items))
	for _, item := range items {
		name := item.Name()
		// Скрытые файлы не показываются
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(directory, name)
		isDir := item.IsDir()
		// Символические ссылки на директории тоже открываются как директории
		if item.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}

		entries = append(entries, entities.DirEntry{
			Name:    name,
			Path:    path,
			IsDir:   isDir,
			IsImage: !isDir && entities.IsImageFile(name),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}
