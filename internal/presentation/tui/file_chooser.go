package tui

import (
	"fmt"
	"path/filepath"

	"github.com/rivo/tview"

	"imagecompressor/internal/domain/entities"
)

const (
	chooserWidth  = 70
	chooserHeight = 22
	parentEntry   = ".."
)

// DirectoryLister источник содержимого каталогов для окна выбора
type DirectoryLister interface {
	ListDirectory(dir string) ([]entities.DirEntry, error)
}

// FileChooser модальное окно выбора файла изображения
type FileChooser struct {
	lister DirectoryLister
	theme  Theme

	list   *tview.List
	layout *tview.Flex

	dir     string
	entries []entities.DirEntry
	done    func(path string, ok bool)
}

// NewFileChooser создает окно выбора
func NewFileChooser(lister DirectoryLister, theme Theme) *FileChooser {
	c := &FileChooser{
		lister: lister,
		theme:  theme,
		list:   tview.NewList().ShowSecondaryText(false).SetHighlightFullLine(true),
	}

	c.list.SetBorder(true).
		SetBorderColor(theme.Border).
		SetBackgroundColor(theme.Background)
	c.list.SetMainTextColor(theme.Foreground).
		SetSelectedBackgroundColor(theme.ButtonHover)
	c.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		c.activate(index)
	})
	c.list.SetDoneFunc(func() {
		c.finish("", false)
	})

	// Центрированное окно поверх основного экрана
	c.layout = tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(c.list, chooserHeight, 0, true).
			AddItem(nil, 0, 1, false), chooserWidth, 0, true).
		AddItem(nil, 0, 1, false)

	return c
}

// Open показывает содержимое root. done вызывается один раз: с путем файла или с ok=false при отмене.
func (c *FileChooser) Open(root string, done func(path string, ok bool)) error {
	c.done = done
	return c.load(root)
}

// Primitive корневой элемент окна для размещения на странице
func (c *FileChooser) Primitive() tview.Primitive {
	return c.layout
}

// List список записей, получает фокус при открытии
func (c *FileChooser) List() *tview.List {
	return c.list
}

// Dir текущий каталог
func (c *FileChooser) Dir() string {
	return c.dir
}

func (c *FileChooser) load(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("не удалось определить путь %s: %w", dir, err)
	}

	entries, err := c.lister.ListDirectory(abs)
	if err != nil {
		return err
	}

	c.dir = abs
	c.entries = append([]entities.DirEntry{{
		Name:  parentEntry,
		Path:  filepath.Dir(abs),
		IsDir: true,
	}}, entries...)

	c.list.Clear()
	c.list.SetTitle(fmt.Sprintf(" Выбор изображения: %s ", abs))
	for _, entry := range c.entries {
		c.list.AddItem(c.label(entry), "", 0, nil)
	}
	c.list.SetCurrentItem(0)
	return nil
}

func (c *FileChooser) label(entry entities.DirEntry) string {
	name := tview.Escape(entry.Name)
	switch {
	case entry.Name == parentEntry:
		return "[::b]" + name
	case entry.IsDir:
		return "[::b]" + name + string(filepath.Separator)
	case entry.IsImage:
		return "[green]" + name
	default:
		return "[gray]" + name
	}
}

// activate обрабатывает выбор записи по индексу
func (c *FileChooser) activate(index int) {
	if index < 0 || index >= len(c.entries) {
		return
	}
	entry := c.entries[index]

	if entry.IsDir {
		// Недоступный каталог оставляет текущий список на месте
		if err := c.load(entry.Path); err != nil {
			c.list.SetTitle(fmt.Sprintf(" Нет доступа: %s ", tview.Escape(entry.Name)))
		}
		return
	}
	c.finish(entry.Path, true)
}

func (c *FileChooser) finish(path string, ok bool) {
	done := c.done
	c.done = nil
	if done != nil {
		done(path, ok)
	}
}
