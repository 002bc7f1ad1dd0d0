package entities

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Границы пользовательского процента качества
const (
	MinQualityPercent     = 0
	MaxQualityPercent     = 100
	DefaultQualityPercent = 70
)

// QualityFraction доля качества кодирования в диапазоне [0.0, 1.0]
type QualityFraction float64

// NewQualityFraction создает долю качества, отвергая значения вне [0, 1]
func NewQualityFraction(v float64) (QualityFraction, error) {
	q := QualityFraction(v)
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return q, nil
}

// QualityFromPercent переводит процент 0-100 в долю качества
func QualityFromPercent(percent int) (QualityFraction, error) {
	if percent < MinQualityPercent || percent > MaxQualityPercent {
		return 0, &InvalidQualityInputError{Input: strconv.Itoa(percent)}
	}
	return QualityFraction(float64(percent) / 100), nil
}

// ParseQualityPercent разбирает текст поля качества
func ParseQualityPercent(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &InvalidQualityInputError{Input: text}
	}
	if value < MinQualityPercent || value > MaxQualityPercent {
		return 0, &InvalidQualityInputError{Input: text}
	}
	return value, nil
}

// Validate проверяет диапазон
func (q QualityFraction) Validate() error {
	v := float64(q)
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidQuality, v)
	}
	return nil
}

// Percent возвращает качество в процентах
func (q QualityFraction) Percent() int {
	return int(math.Round(float64(q) * 100))
}

// JPEGQuality возвращает параметр кодировщика JPEG (1-100).
// Кодировщик не принимает 0, поэтому нижняя граница сдвигается к 1.
func (q QualityFraction) JPEGQuality() int {
	quality := q.Percent()
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return quality
}

func (q QualityFraction) String() string {
	return fmt.Sprintf("%d%%", q.Percent())
}
