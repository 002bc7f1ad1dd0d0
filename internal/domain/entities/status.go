package entities

import "time"

// OperationPhase фаза операции пользовательского интерфейса
type OperationPhase int

const (
	PhaseIdle OperationPhase = iota
	PhaseSelected
	PhaseCompressing
	PhaseCompleted
	PhaseFailed
)

// OperationStatus статус текущей операции
type OperationStatus struct {
	Phase       OperationPhase
	CurrentFile string
	Message     string
	LastResult  *CompressionResult
	Error       error
	StartTime   time.Time
	ElapsedTime time.Duration
}

// NewOperationStatus создает статус в состоянии ожидания
func NewOperationStatus() *OperationStatus {
	return &OperationStatus{Phase: PhaseIdle}
}

// Select запоминает выбранный файл
func (s *OperationStatus) Select(path string) {
	s.CurrentFile = path
	s.Phase = PhaseSelected
	s.Error = nil
	s.Message = ""
}

// Start отмечает начало операции
func (s *OperationStatus) Start(phase OperationPhase, message string) {
	s.Phase = phase
	s.Message = message
	s.Error = nil
	s.StartTime = time.Now()
	s.ElapsedTime = 0
}

// Complete завершает операцию
func (s *OperationStatus) Complete(result *CompressionResult) {
	s.Phase = PhaseCompleted
	s.LastResult = result
	if result != nil {
		s.Message = "Изображение сохранено: " + result.DestinationPath
	}
	s.ElapsedTime = time.Since(s.StartTime)
}

// Fail отмечает операцию как неудачную
func (s *OperationStatus) Fail(err error) {
	s.Phase = PhaseFailed
	s.Error = err
	s.ElapsedTime = time.Since(s.StartTime)
}

// IsBusy идет ли длительная операция
func (s *OperationStatus) IsBusy() bool {
	return s.Phase == PhaseCompressing
}

func (phase OperationPhase) String() string {
	switch phase {
	case PhaseIdle:
		return "Файл не выбран"
	case PhaseSelected:
		return "Файл выбран"
	case PhaseCompressing:
		return "Сжатие"
	case PhaseCompleted:
		return "Завершено"
	case PhaseFailed:
		return "Ошибка"
	default:
		return "Неизвестно"
	}
}

// FormatElapsedTime форматирует время выполнения
func (s *OperationStatus) FormatElapsedTime() string {
	if s.ElapsedTime < time.Second {
		return "< 1 сек"
	}
	return s.ElapsedTime.Round(time.Second).String()
}
