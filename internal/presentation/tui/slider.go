package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"imagecompressor/internal/domain/entities"
)

const (
	sliderStep     = 1
	sliderPageStep = 10
)

// QualitySlider горизонтальный ползунок качества 0-100
type QualitySlider struct {
	*tview.Box

	value    int
	dragging bool

	trackColor  tcell.Color
	filledColor tcell.Color
	focusColor  tcell.Color
	labelColor  tcell.Color

	changed func(value int)
}

// NewQualitySlider создает ползунок
func NewQualitySlider(theme Theme) *QualitySlider {
	return &QualitySlider{
		Box:         tview.NewBox(),
		value:       entities.DefaultQualityPercent,
		trackColor:  theme.Border,
		filledColor: theme.Button,
		focusColor:  theme.ButtonHover,
		labelColor:  theme.Foreground,
	}
}

// SetValue устанавливает значение без вызова обработчика изменений
func (s *QualitySlider) SetValue(value int) *QualitySlider {
	s.value = clampPercent(value)
	return s
}

// Value текущее значение
func (s *QualitySlider) Value() int {
	return s.value
}

// SetChangedFunc обработчик изменения значения пользователем
func (s *QualitySlider) SetChangedFunc(handler func(value int)) *QualitySlider {
	s.changed = handler
	return s
}

func (s *QualitySlider) move(value int) {
	value = clampPercent(value)
	if value == s.value {
		return
	}
	s.value = value
	if s.changed != nil {
		s.changed(value)
	}
}

// valueAt значение для колонки экрана
func (s *QualitySlider) valueAt(column int) int {
	x, _, width, _ := s.GetInnerRect()
	if width <= 1 {
		return s.value
	}
	offset := column - x
	if offset < 0 {
		offset = 0
	}
	if offset > width-1 {
		offset = width - 1
	}
	return (offset*entities.MaxQualityPercent + (width-1)/2) / (width - 1)
}

// Draw рисует дорожку и подписи шкалы
func (s *QualitySlider) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	fill := s.filledColor
	if s.HasFocus() {
		fill = s.focusColor
	}

	knob := 0
	if width > 1 {
		knob = s.value * (width - 1) / entities.MaxQualityPercent
	}
	for i := 0; i < width; i++ {
		style := tcell.StyleDefault.Foreground(s.trackColor)
		r := '░'
		if i <= knob {
			style = tcell.StyleDefault.Foreground(fill)
			r = '█'
		}
		if i == knob {
			r = '▐'
			style = style.Bold(true)
		}
		screen.SetContent(x+i, y, r, nil, style)
	}

	if height < 2 {
		return
	}
	labelStyle := tcell.StyleDefault.Foreground(s.labelColor)
	for _, tick := range []int{0, 25, 50, 75, 100} {
		label := strconv.Itoa(tick)
		pos := 0
		if width > 1 {
			pos = tick * (width - 1) / entities.MaxQualityPercent
		}
		// подпись центрируется по делению, но не выходит за края
		start := pos - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > width {
			start = width - len(label)
		}
		for i, r := range label {
			if start+i >= 0 {
				screen.SetContent(x+start+i, y+1, r, nil, labelStyle)
			}
		}
	}
}

// InputHandler обрабатывает клавиши управления ползунком
func (s *QualitySlider) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyLeft:
			s.move(s.value - sliderStep)
		case tcell.KeyRight:
			s.move(s.value + sliderStep)
		case tcell.KeyPgDn:
			s.move(s.value - sliderPageStep)
		case tcell.KeyPgUp:
			s.move(s.value + sliderPageStep)
		case tcell.KeyHome:
			s.move(entities.MinQualityPercent)
		case tcell.KeyEnd:
			s.move(entities.MaxQualityPercent)
		case tcell.KeyRune:
			switch event.Rune() {
			case '-', 'h':
				s.move(s.value - sliderStep)
			case '+', '=', 'l':
				s.move(s.value + sliderStep)
			}
		}
	})
}

// MouseHandler обрабатывает щелчки, перетаскивание и колесо мыши
func (s *QualitySlider) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		column, row := event.Position()
		inside := s.InRect(column, row)

		switch action {
		case tview.MouseLeftDown:
			if !inside {
				return false, nil
			}
			setFocus(s)
			s.dragging = true
			s.move(s.valueAt(column))
			return true, s
		case tview.MouseMove:
			if s.dragging {
				s.move(s.valueAt(column))
				return true, s
			}
		case tview.MouseLeftUp:
			if s.dragging {
				s.dragging = false
				s.move(s.valueAt(column))
				return true, nil
			}
		case tview.MouseScrollUp:
			if inside {
				s.move(s.value + sliderStep)
				return true, nil
			}
		case tview.MouseScrollDown:
			if inside {
				s.move(s.value - sliderStep)
				return true, nil
			}
		}
		return false, nil
	})
}

func clampPercent(value int) int {
	if value < entities.MinQualityPercent {
		return entities.MinQualityPercent
	}
	if value > entities.MaxQualityPercent {
		return entities.MaxQualityPercent
	}
	return value
}
