package entities

import (
	"errors"
	"fmt"
)

// Доменные ошибки
var (
	ErrUnsupportedFormat     = errors.New("неподдерживаемый формат изображения")
	ErrIO                    = errors.New("ошибка ввода-вывода")
	ErrInvalidQuality        = errors.New("качество должно быть в диапазоне от 0.0 до 1.0")
	ErrInvalidQualityInput   = errors.New("качество должно быть целым числом от 0 до 100")
	ErrInvalidDimensions     = errors.New("размеры изображения должны быть положительными")
	ErrFileNotSelected       = errors.New("файл не выбран")
	ErrFileNotFound          = errors.New("файл не найден")
	ErrCompressionInProgress = errors.New("сжатие уже выполняется")
	ErrInvalidBackend        = errors.New("неизвестный алгоритм сжатия")
	ErrInvalidOutputPrefix   = errors.New("префикс выходного файла не может быть пустым")
)

// UnsupportedFormatError исходный файл не является JPEG или PNG
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: %s (%s), используйте .jpg или .png", ErrUnsupportedFormat, e.Path, e.Format)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// IsUnsupportedFormat проверяет, что err вызвана неподдерживаемым форматом
func IsUnsupportedFormat(err error) bool {
	var e *UnsupportedFormatError
	return errors.As(err, &e)
}

// IOError ошибка чтения исходного или записи выходного файла
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

// Unwrap отдает и общий признак ErrIO, и исходную причину
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// IsIOError проверяет, что err является ошибкой ввода-вывода
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// InvalidQualityInputError значение поля качества вне диапазона или не число
type InvalidQualityInputError struct {
	Input string
}

func (e *InvalidQualityInputError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidQualityInput, e.Input)
}

func (e *InvalidQualityInputError) Unwrap() error { return ErrInvalidQualityInput }
