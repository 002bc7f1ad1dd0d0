package tui

import (
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"imagecompressor/internal/domain/entities"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(entities.DefaultConfig(), &stubLister{})
	m.Initialize()
	t.Cleanup(m.Cleanup)
	return m
}

func TestManager_CommitQualityText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantOK    bool
		wantValue int
		wantText  string
	}{
		{"Valid value", "35", true, 35, "35"},
		{"Leading zero is normalized", "035", true, 35, "35"},
		{"Lower bound", "0", true, 0, "0"},
		{"Upper bound", "100", true, 100, "100"},
		{"Above range reverts", "150", false, 70, "70"},
		{"Negative reverts", "-5", false, 70, "70"},
		{"Not a number reverts", "abc", false, 70, "70"},
		{"Empty reverts", "", false, 70, "70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			m.qualityField.SetText(tt.text)

			if ok := m.commitQualityText(tt.text); ok != tt.wantOK {
				t.Errorf("commitQualityText(%q) = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got := m.quality.Get(); got != tt.wantValue {
				t.Errorf("Quality = %d, want %d", got, tt.wantValue)
			}
			if got := m.qualityField.GetText(); got != tt.wantText {
				t.Errorf("Field text = %q, want %q", got, tt.wantText)
			}
			if got := m.slider.Value(); got != tt.wantValue {
				t.Errorf("Slider = %d, want %d", got, tt.wantValue)
			}
		})
	}
}

func TestManager_SliderUpdatesField(t *testing.T) {
	m := newTestManager(t)

	m.slider.InputHandler()(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), noFocus)

	if got := m.qualityField.GetText(); got != "60" {
		t.Errorf("Field text = %q, want 60", got)
	}
	if got := m.Quality(); got.Percent() != 60 {
		t.Errorf("Quality() = %v, want 60%%", got)
	}
}

func TestManager_InitialQualityFromConfig(t *testing.T) {
	config := entities.DefaultConfig()
	config.Compression.DefaultQuality = 45
	m := NewManager(config, &stubLister{})
	m.Initialize()
	defer m.Cleanup()

	if m.slider.Value() != 45 || m.qualityField.GetText() != "45" {
		t.Errorf("Expected 45 in both controls, got slider %d field %q", m.slider.Value(), m.qualityField.GetText())
	}
}

func TestManager_RequestCompress(t *testing.T) {
	m := newTestManager(t)

	var got []entities.QualityFraction
	m.SetOnCompress(func(q entities.QualityFraction) { got = append(got, q) })

	m.commitQualityText("40")
	m.requestCompress()

	m.SetCompressing(true)
	m.requestCompress()
	if !m.compressButton.IsDisabled() {
		t.Error("Compress button must be disabled while compressing")
	}

	m.SetCompressing(false)
	if m.compressButton.IsDisabled() || m.compressButton.GetLabel() != compressLabel {
		t.Error("Compress button must be restored after compression")
	}

	if len(got) != 1 || got[0].Percent() != 40 {
		t.Errorf("Expected a single request at 40%%, got %v", got)
	}
}

func TestManager_Preview(t *testing.T) {
	m := newTestManager(t)

	m.ShowPreviewError("/tmp/anim.gif", errors.New("unsupported"))
	if name, _ := m.previewPages.GetFrontPage(); name != previewPlaceholder {
		t.Errorf("Expected placeholder page, got %s", name)
	}
	if !strings.Contains(m.placeholder.GetText(false), "unsupported") {
		t.Errorf("Placeholder must show the reason, got %q", m.placeholder.GetText(false))
	}

	m.ResetPreview()
	if got := m.placeholder.GetText(false); got != placeholderText {
		t.Errorf("Placeholder = %q, want %q", got, placeholderText)
	}
}

func TestManager_FormatStatus(t *testing.T) {
	m := newTestManager(t)

	status := entities.NewOperationStatus()
	status.Select("/photos/cat.jpg")
	status.Fail(errors.New("boom"))
	status.Message = "Ошибка сжатия"

	text := m.formatStatus(*status)
	for _, want := range []string{"cat.jpg", "Ошибка сжатия", "[red]"} {
		if !strings.Contains(text, want) {
			t.Errorf("Status %q does not contain %q", text, want)
		}
	}
	if strings.Contains(text, "/photos") {
		t.Errorf("Status must show only the file name, got %q", text)
	}
}

func TestManager_AddLogIsBatched(t *testing.T) {
	m := newTestManager(t)

	m.AddLog("warning", "[red]raw tags[-]")
	m.AddLog("success", "done")

	deadline := time.Now().Add(2 * time.Second)
	for len(m.logLines()) < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("Log batch was not flushed, got %v", m.logLines())
		}
		time.Sleep(10 * time.Millisecond)
	}

	lines := m.logLines()
	if !strings.Contains(lines[0], "[yellow]WARNING") || !strings.Contains(lines[1], "[green]SUCCESS") {
		t.Errorf("Unexpected log lines %v", lines)
	}
	// Теги в тексте сообщения экранируются
	if strings.Contains(lines[0], "[red]raw") {
		t.Errorf("Message tags must be escaped, got %q", lines[0])
	}
}

// runOnSimulationScreen запускает цикл событий на виртуальном экране и ждет его старта
func runOnSimulationScreen(t *testing.T, m *Manager) <-chan error {
	t.Helper()
	m.SetScreen(tcell.NewSimulationScreen("UTF-8"))

	errc := make(chan error, 1)
	go func() { errc <- m.Run() }()

	started := make(chan struct{})
	go m.QueueUpdateDraw(func() { close(started) })
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("Event loop did not start")
	}
	return errc
}

func TestManager_QueueUpdateDrawAfterStop(t *testing.T) {
	m := newTestManager(t)
	errc := runOnSimulationScreen(t, m)

	m.Stop()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	executed := false
	done := make(chan struct{})
	go func() {
		m.QueueUpdateDraw(func() {
			executed = true
			m.SetCompressing(false)
		})
		m.SendStatusUpdate(*entities.NewOperationStatus())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("UI updates must not block after the event loop stopped")
	}
	if executed {
		t.Error("Update must be skipped after the event loop stopped")
	}
}

func TestManager_QueueUpdateDrawWhileRunning(t *testing.T) {
	m := newTestManager(t)
	errc := runOnSimulationScreen(t, m)
	defer func() {
		m.Stop()
		<-errc
	}()

	done := make(chan struct{})
	go func() {
		m.QueueUpdateDraw(func() { m.SetCompressing(true) })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("QueueUpdateDraw did not return")
	}
	if !m.IsCompressing() {
		t.Error("Update must be applied while the event loop runs")
	}
}

func TestManager_CleanupStopsLogProcessorWithoutEventLoop(t *testing.T) {
	m := NewManager(entities.DefaultConfig(), &stubLister{})
	m.Initialize()

	m.AddLog("info", "before run")
	deadline := time.Now().Add(2 * time.Second)
	for len(m.logLines()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Log batch was not collected")
		}
		time.Sleep(10 * time.Millisecond)
	}

	done := make(chan struct{})
	go func() {
		m.Cleanup()
		m.QueueUpdateDraw(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Cleanup must release pending UI updates")
	}
}

func TestManager_ChooserResult(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		path        string
		ok          bool
		wantPath    string
		wantPreview string
	}{
		{"Cancel clears selection", "", false, "", previewPlaceholder},
		{"File selected", "/photos/cat.jpg", true, "/photos/cat.jpg", previewImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(entities.DefaultConfig(), &stubLister{dirs: map[string][]entities.DirEntry{dir: nil}})
			m.Initialize()
			defer m.Cleanup()
			m.chooserDir = dir

			var selected []string
			m.SetOnFileSelected(func(path string) { selected = append(selected, path) })

			m.ShowPreview(&entities.Preview{
				Path:    "/photos/old.jpg",
				Format:  "jpeg",
				Natural: entities.PreviewDimensions{Width: 4, Height: 4},
				Scaled:  entities.PreviewDimensions{Width: 4, Height: 4},
				Image:   image.NewRGBA(image.Rect(0, 0, 4, 4)),
			})

			m.openChooser()
			if name, _ := m.pages.GetFrontPage(); name != pageChooser {
				t.Fatalf("Expected chooser page, got %s", name)
			}

			m.chooser.finish(tt.path, tt.ok)

			if name, _ := m.pages.GetFrontPage(); name != pageMain {
				t.Errorf("Expected main page after chooser, got %s", name)
			}
			if name, _ := m.previewPages.GetFrontPage(); name != tt.wantPreview {
				t.Errorf("Preview page = %s, want %s", name, tt.wantPreview)
			}
			if len(selected) != 1 || selected[0] != tt.wantPath {
				t.Errorf("onFileSelected calls = %q, want [%q]", selected, tt.wantPath)
			}
		})
	}
}
