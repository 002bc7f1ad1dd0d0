package tui

import (
	"strconv"

	"imagecompressor/internal/domain/entities"
)

// QualityValue наблюдаемое значение качества в процентах.
// Слайдер и поле ввода подписаны на него и обновляют друг друга через него.
type QualityValue struct {
	value     int
	listeners []func(value int)
}

// NewQualityValue создает значение с начальным процентом
func NewQualityValue(percent int) *QualityValue {
	if percent < entities.MinQualityPercent || percent > entities.MaxQualityPercent {
		percent = entities.DefaultQualityPercent
	}
	return &QualityValue{value: percent}
}

// OnChange регистрирует слушателя
func (q *QualityValue) OnChange(listener func(value int)) {
	q.listeners = append(q.listeners, listener)
}

// Get текущий процент
func (q *QualityValue) Get() int {
	return q.value
}

// Fraction текущее значение как доля
func (q *QualityValue) Fraction() entities.QualityFraction {
	return entities.QualityFraction(float64(q.value) / 100)
}

// Set меняет значение. Повтор того же значения слушателям не рассылается,
// поэтому взаимные обновления слайдера и поля не зацикливаются.
func (q *QualityValue) Set(percent int) (bool, error) {
	if percent < entities.MinQualityPercent || percent > entities.MaxQualityPercent {
		return false, &entities.InvalidQualityInputError{Input: strconv.Itoa(percent)}
	}
	if percent == q.value {
		return false, nil
	}

	q.value = percent
	for _, listener := range q.listeners {
		listener(percent)
	}
	return true, nil
}
