package tui

import (
	"github.com/gdamore/tcell/v2"

	"imagecompressor/internal/domain/entities"
)

// Theme цвета интерфейса
type Theme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	Button      tcell.Color
	ButtonHover tcell.Color
	Border      tcell.Color
}

// NewTheme строит тему из конфигурации, подставляя значения по умолчанию для пустых цветов
func NewTheme(config entities.UIConfig) Theme {
	defaults := entities.DefaultConfig().UI
	return Theme{
		Background:  parseColor(config.BackgroundColor, defaults.BackgroundColor),
		Foreground:  parseColor(config.ForegroundColor, defaults.ForegroundColor),
		Button:      parseColor(config.ButtonColor, defaults.ButtonColor),
		ButtonHover: parseColor(config.ButtonHoverColor, defaults.ButtonHoverColor),
		Border:      parseColor(config.BorderColor, defaults.BorderColor),
	}
}

func parseColor(value, fallback string) tcell.Color {
	if color := tcell.GetColor(value); color != tcell.ColorDefault {
		return color
	}
	return tcell.GetColor(fallback)
}

// ButtonStyle стиль кнопки в обычном состоянии
func (t Theme) ButtonStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Button).Foreground(t.Foreground)
}

// ButtonActiveStyle стиль кнопки в фокусе
func (t Theme) ButtonActiveStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.ButtonHover).Foreground(t.Foreground).Bold(true)
}

// ButtonDisabledStyle стиль недоступной кнопки
func (t Theme) ButtonDisabledStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Border).Foreground(tcell.ColorGray)
}
