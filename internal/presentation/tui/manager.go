package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"imagecompressor/internal/domain/entities"
	"imagecompressor/internal/domain/repositories"
)

// UI Configuration constants
const (
	MaxLogBufferSize = 1000
	LogFlushInterval = 50 * time.Millisecond
	LogViewHeight    = 8
	ControlsWidth    = 34
	QualityFieldSize = 5

	pageMain    = "main"
	pageChooser = "chooser"
	pageModal   = "modal"
	pageExit    = "exit"

	previewPlaceholder = "placeholder"
	previewImage       = "image"

	placeholderText = "Изображение не выбрано"
	selectLabel     = "Выбрать изображение"
	compressLabel   = "Сжать"
	compressingText = "Сжатие..."
)

// Manager управляет TUI интерфейсом
type Manager struct {
	app    *tview.Application
	pages  *tview.Pages
	config *entities.Config
	theme  Theme
	logger repositories.Logger

	// UI компоненты
	header         *tview.TextView
	previewPages   *tview.Pages
	placeholder    *tview.TextView
	previewView    *tview.Image
	selectButton   *tview.Button
	compressButton *tview.Button
	qualityField   *tview.InputField
	slider         *QualitySlider
	statusBar      *tview.TextView
	logView        *tview.TextView
	chooser        *FileChooser

	focusOrder []tview.Primitive
	lastFocus  tview.Primitive

	// Callbacks
	onFileSelected func(path string)
	onCompress     func(quality entities.QualityFraction)

	// Состояние
	quality     *QualityValue
	chooserDir  string
	compressing bool
	logBuffer   []string
	statusMutex sync.RWMutex

	// Батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex

	// stopped закрывается, когда цикл событий завершен и обновления UI больше не выполняются
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewManager создает новый менеджер TUI
func NewManager(config *entities.Config, lister DirectoryLister) *Manager {
	if config == nil {
		config = entities.DefaultConfig()
	}
	theme := NewTheme(config.UI)

	m := &Manager{
		app:        tview.NewApplication(),
		pages:      tview.NewPages(),
		config:     config,
		theme:      theme,
		quality:    NewQualityValue(config.Compression.DefaultQuality),
		chooser:    NewFileChooser(lister, theme),
		chooserDir: ".",
		logBuffer:  make([]string, 0, MaxLogBufferSize),
		logChan:    make(chan string, 100),
		logDone:    make(chan struct{}),
		stopped:    make(chan struct{}),
	}
	go m.logProcessor()
	return m
}

// Initialize инициализирует TUI
func (m *Manager) Initialize() {
	m.applyTheme()
	m.createUI()
	m.bindQuality()
	m.setupKeyBindings()
}

// Run запускает TUI и возвращается после остановки цикла событий
func (m *Manager) Run() error {
	defer m.markStopped()
	return m.app.SetRoot(m.pages, true).SetFocus(m.selectButton).EnableMouse(true).Run()
}

// SetScreen задает экран вместо терминала, вызывается до Run
func (m *Manager) SetScreen(screen tcell.Screen) {
	m.app.SetScreen(screen)
}

// Stop останавливает цикл событий
func (m *Manager) Stop() {
	m.app.Stop()
}

func (m *Manager) markStopped() {
	m.stopOnce.Do(func() {
		close(m.stopped)
	})
}

// SetLogger задает логгер для отладочных сообщений интерфейса
func (m *Manager) SetLogger(logger repositories.Logger) {
	m.logger = logger
}

// SetOnFileSelected устанавливает callback выбора файла. При отмене выбора передается пустой путь.
func (m *Manager) SetOnFileSelected(callback func(path string)) {
	m.onFileSelected = callback
}

// SetOnCompress устанавливает callback запуска сжатия
func (m *Manager) SetOnCompress(callback func(quality entities.QualityFraction)) {
	m.onCompress = callback
}

// Quality текущее значение качества
func (m *Manager) Quality() entities.QualityFraction {
	return m.quality.Fraction()
}

// QueueUpdateDraw выполняет функцию в потоке UI и ждет ее выполнения.
// После остановки цикла событий функция не выполняется и вызов сразу возвращается.
func (m *Manager) QueueUpdateDraw(f func()) {
	select {
	case <-m.stopped:
		return
	default:
	}

	// tview ждет, пока цикл событий заберет обновление; после Stop это не произойдет
	done := make(chan struct{})
	go func() {
		m.app.QueueUpdateDraw(f)
		close(done)
	}()

	select {
	case <-done:
	case <-m.stopped:
	}
}

// applyTheme переносит цвета конфигурации в стили tview
func (m *Manager) applyTheme() {
	tview.Styles.PrimitiveBackgroundColor = m.theme.Background
	tview.Styles.ContrastBackgroundColor = m.theme.Button
	tview.Styles.MoreContrastBackgroundColor = m.theme.ButtonHover
	tview.Styles.PrimaryTextColor = m.theme.Foreground
	tview.Styles.BorderColor = m.theme.Border
	tview.Styles.TitleColor = m.theme.Foreground
}

// createUI создает все компоненты главного экрана
func (m *Manager) createUI() {
	title := m.config.UI.Title
	if title == "" {
		title = "Image Compressor"
	}
	m.header = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[::b]%s", tview.Escape(title)))

	m.placeholder = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(placeholderText)
	m.previewView = tview.NewImage()

	m.previewPages = tview.NewPages().
		AddPage(previewPlaceholder, m.centered(m.placeholder, 3), true, true).
		AddPage(previewImage, m.previewView, true, false)
	m.previewPages.SetBorder(true).SetTitle(" Превью ")

	m.selectButton = m.newButton(selectLabel, m.openChooser)
	m.compressButton = m.newButton(compressLabel, m.requestCompress)

	m.qualityField = tview.NewInputField().
		SetLabel("Качество: ").
		SetFieldWidth(QualityFieldSize).
		SetAcceptanceFunc(tview.InputFieldMaxLength(QualityFieldSize)).
		SetText(strconv.Itoa(m.quality.Get()))
	m.qualityField.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			m.commitQualityText(m.qualityField.GetText())
		case tcell.KeyEscape:
			m.qualityField.SetText(strconv.Itoa(m.quality.Get()))
		}
	})

	m.slider = NewQualitySlider(m.theme).SetValue(m.quality.Get())

	qualityRow := tview.NewFlex().
		AddItem(m.qualityField, len("Качество: ")+QualityFieldSize+1, 0, false).
		AddItem(tview.NewTextView().SetText("%"), 1, 0, false).
		AddItem(nil, 0, 1, false)

	controls := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(m.selectButton, 3, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(m.compressButton, 3, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(qualityRow, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(m.slider, 2, 0, false).
		AddItem(nil, 0, 1, false)
	controls.SetBorder(true).SetTitle(" Управление ")

	body := tview.NewFlex().
		AddItem(m.previewPages, 0, 1, false).
		AddItem(controls, ControlsWidth, 0, true)

	m.statusBar = tview.NewTextView().SetDynamicColors(true)
	m.SetStatus("Выберите изображение для сжатия")

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)
	m.logView.SetBorder(true).SetTitle(" События ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(m.header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(m.statusBar, 1, 0, false)
	if m.config.Output.ShowLogInPanel {
		layout.AddItem(m.logView, LogViewHeight, 0, false)
	}

	m.focusOrder = []tview.Primitive{m.selectButton, m.compressButton, m.qualityField, m.slider}
	m.pages.AddPage(pageMain, layout, true, true)
}

func (m *Manager) newButton(label string, selected func()) *tview.Button {
	button := tview.NewButton(label).SetSelectedFunc(selected)
	button.SetStyle(m.theme.ButtonStyle()).
		SetActivatedStyle(m.theme.ButtonActiveStyle()).
		SetDisabledStyle(m.theme.ButtonDisabledStyle())
	return button
}

// centered размещает элемент по центру свободного места
func (m *Manager) centered(p tview.Primitive, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(p, height, 0, false).
		AddItem(nil, 0, 1, false)
}

// bindQuality связывает поле ввода и ползунок через общее значение
func (m *Manager) bindQuality() {
	m.quality.OnChange(func(value int) {
		m.slider.SetValue(value)
		m.qualityField.SetText(strconv.Itoa(value))
	})
	m.slider.SetChangedFunc(func(value int) {
		if _, err := m.quality.Set(value); err != nil {
			m.debug("Ползунок: %v", err)
		}
	})
}

// commitQualityText применяет текст поля. Некорректный ввод возвращает поле к текущему значению.
func (m *Manager) commitQualityText(text string) bool {
	percent, err := entities.ParseQualityPercent(text)
	if err != nil {
		m.debug("Некорректное значение качества %q: %v", text, err)
		m.qualityField.SetText(strconv.Itoa(m.quality.Get()))
		return false
	}

	if _, err := m.quality.Set(percent); err != nil {
		m.debug("Некорректное значение качества %q: %v", text, err)
	}
	// "070" и " 70" приводятся к каноническому виду
	m.qualityField.SetText(strconv.Itoa(m.quality.Get()))
	return true
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			m.confirmExit()
			return nil
		}

		// Диалоги и окно выбора обрабатывают клавиши сами
		if name, _ := m.pages.GetFrontPage(); name != pageMain {
			return event
		}

		focused := m.app.GetFocus()
		switch event.Key() {
		case tcell.KeyTab:
			m.cycleFocus(focused, 1)
			return nil
		case tcell.KeyBacktab:
			m.cycleFocus(focused, -1)
			return nil
		case tcell.KeyEscape:
			if focused == m.qualityField {
				return event
			}
			m.confirmExit()
			return nil
		case tcell.KeyRune:
			if focused == m.qualityField {
				return event
			}
			switch event.Rune() {
			case 'q', 'Q':
				m.confirmExit()
				return nil
			case 'o', 'O':
				m.openChooser()
				return nil
			case 'c', 'C':
				m.requestCompress()
				return nil
			}
		}
		return event
	})
}

// cycleFocus переводит фокус по кругу. Уход с поля качества фиксирует введенное значение.
func (m *Manager) cycleFocus(current tview.Primitive, step int) {
	if current == m.qualityField {
		m.commitQualityText(m.qualityField.GetText())
	}

	index := 0
	for i, p := range m.focusOrder {
		if p == current {
			index = i
			break
		}
	}
	next := (index + step + len(m.focusOrder)) % len(m.focusOrder)
	m.app.SetFocus(m.focusOrder[next])
}

// openChooser показывает окно выбора файла
func (m *Manager) openChooser() {
	if m.compressing {
		return
	}
	m.lastFocus = m.app.GetFocus()

	err := m.chooser.Open(m.chooserDir, func(path string, ok bool) {
		m.chooserDir = m.chooser.Dir()
		m.pages.RemovePage(pageChooser)
		m.restoreFocus()
		if !ok {
			// Отмена сбрасывает прежний выбор
			m.ResetPreview()
			path = ""
		}
		if m.onFileSelected != nil {
			m.onFileSelected(path)
		}
	})
	if err != nil {
		m.ShowNotification("Ошибка", fmt.Sprintf("Не удалось открыть каталог: %v", err), true)
		return
	}

	m.pages.AddPage(pageChooser, m.chooser.Primitive(), true, true)
	m.app.SetFocus(m.chooser.List())
}

// requestCompress запускает сжатие с текущим качеством
func (m *Manager) requestCompress() {
	if m.compressing {
		return
	}
	if m.app.GetFocus() == m.qualityField {
		m.commitQualityText(m.qualityField.GetText())
	}
	if m.onCompress != nil {
		m.onCompress(m.quality.Fraction())
	}
}

// ShowPreview отображает превью выбранного файла
func (m *Manager) ShowPreview(preview *entities.Preview) {
	m.previewView.SetImage(preview.Image)
	m.previewPages.SetTitle(fmt.Sprintf(" %s  %s → %s ",
		tview.Escape(filepath.Base(preview.Path)), preview.Natural, preview.Scaled))
	m.previewPages.SwitchToPage(previewImage)
}

// ShowPreviewError показывает причину, по которой превью недоступно
func (m *Manager) ShowPreviewError(path string, err error) {
	m.placeholder.SetText(fmt.Sprintf("Превью недоступно\n%v", err))
	m.previewPages.SetTitle(fmt.Sprintf(" %s ", tview.Escape(filepath.Base(path))))
	m.previewPages.SwitchToPage(previewPlaceholder)
}

// ResetPreview возвращает заглушку
func (m *Manager) ResetPreview() {
	m.placeholder.SetText(placeholderText)
	m.previewPages.SetTitle(" Превью ")
	m.previewPages.SwitchToPage(previewPlaceholder)
}

// SetStatus обновляет строку состояния
func (m *Manager) SetStatus(text string) {
	m.statusBar.SetText(" " + tview.Escape(text))
}

// SetCompressing блокирует кнопку сжатия на время операции
func (m *Manager) SetCompressing(compressing bool) {
	m.statusMutex.Lock()
	m.compressing = compressing
	m.statusMutex.Unlock()

	m.compressButton.SetDisabled(compressing)
	m.selectButton.SetDisabled(compressing)
	if compressing {
		m.compressButton.SetLabel(compressingText)
	} else {
		m.compressButton.SetLabel(compressLabel)
	}
}

// IsCompressing идет ли сжатие
func (m *Manager) IsCompressing() bool {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return m.compressing
}

// SendStatusUpdate отправляет обновление статуса из любого потока
func (m *Manager) SendStatusUpdate(status entities.OperationStatus) {
	text := m.formatStatus(status)
	m.QueueUpdateDraw(func() {
		m.statusBar.SetText(text)
	})
}

func (m *Manager) formatStatus(status entities.OperationStatus) string {
	var b strings.Builder
	color := "white"
	switch status.Phase {
	case entities.PhaseCompleted:
		color = "green"
	case entities.PhaseFailed:
		color = "red"
	case entities.PhaseCompressing:
		color = "yellow"
	}
	fmt.Fprintf(&b, " [%s]%s[-]", color, status.Phase)
	if status.CurrentFile != "" {
		fmt.Fprintf(&b, " | %s", tview.Escape(filepath.Base(status.CurrentFile)))
	}
	if status.Message != "" {
		fmt.Fprintf(&b, " | %s", tview.Escape(status.Message))
	}
	if !status.StartTime.IsZero() {
		fmt.Fprintf(&b, " | %s", status.FormatElapsedTime())
	}
	return b.String()
}

// ShowNotification показывает модальное уведомление
func (m *Manager) ShowNotification(title, message string, isError bool) {
	if name, _ := m.pages.GetFrontPage(); name != pageModal && name != pageExit {
		m.lastFocus = m.app.GetFocus()
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s\n\n%s", title, message)).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			m.pages.RemovePage(pageModal)
			m.restoreFocus()
		})
	if isError {
		modal.SetBackgroundColor(tcell.ColorDarkRed)
	} else {
		modal.SetBackgroundColor(m.theme.Button)
	}
	modal.SetButtonStyle(m.theme.ButtonStyle()).
		SetButtonActivatedStyle(m.theme.ButtonActiveStyle())

	m.pages.AddPage(pageModal, modal, false, true)
	m.app.SetFocus(modal)
}

// confirmExit запрашивает подтверждение выхода
func (m *Manager) confirmExit() {
	if name, _ := m.pages.GetFrontPage(); name == pageExit {
		return
	}
	m.lastFocus = m.app.GetFocus()

	message := "Выйти из программы?"
	if m.IsCompressing() {
		message = "Идет сжатие. Выйти после его завершения?"
	}
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Выйти", "Отмена"}).
		SetDoneFunc(func(index int, _ string) {
			m.pages.RemovePage(pageExit)
			if index == 0 {
				m.Stop()
				return
			}
			m.restoreFocus()
		})
	modal.SetButtonStyle(m.theme.ButtonStyle()).
		SetButtonActivatedStyle(m.theme.ButtonActiveStyle())

	m.pages.AddPage(pageExit, modal, false, true)
	m.app.SetFocus(modal)
}

func (m *Manager) restoreFocus() {
	if m.lastFocus != nil {
		m.app.SetFocus(m.lastFocus)
		return
	}
	m.app.SetFocus(m.selectButton)
}

func (m *Manager) debug(format string, args ...interface{}) {
	if m.logger != nil {
		m.logger.Debug(format, args...)
	}
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}

	logLine := fmt.Sprintf("[gray]%s [%s]%s:[white] %s",
		time.Now().Format("15:04:05"), color, strings.ToUpper(level), tview.Escape(message))

	select {
	case m.logChan <- logLine:
	default:
		// Канал переполнен: запись пропускается, UI не блокируется
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
			}
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}
	logText := strings.Join(m.logBuffer, "\n")
	m.statusMutex.Unlock()

	if m.logView != nil {
		m.QueueUpdateDraw(func() {
			m.logView.SetText(logText)
			m.logView.ScrollToEnd()
		})
	}
}

// logLines копия буфера журнала
func (m *Manager) logLines() []string {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return append([]string(nil), m.logBuffer...)
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.markStopped()

	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	select {
	case <-m.logDone:
		return
	default:
		close(m.logDone)
	}
}

