package tui

import (
	"fmt"

	"imagecompressor/internal/domain/repositories"
)

// LogSink принимает строки журнала для панели событий
type LogSink interface {
	AddLog(level, message string)
}

// UILogger адаптер логгера для отображения в UI
type UILogger struct {
	fileLogger repositories.Logger
	sink       LogSink
	showDebug  bool
}

// NewUILogger создает новый UI логгер
func NewUILogger(fileLogger repositories.Logger, sink LogSink, showDebug bool) *UILogger {
	return &UILogger{
		fileLogger: fileLogger,
		sink:       sink,
		showDebug:  showDebug,
	}
}

// Debug логирует отладочное сообщение
func (l *UILogger) Debug(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Debug(format, args...)
	}
	if l.showDebug {
		l.toPanel("DEBUG", format, args...)
	}
}

// Info логирует информационное сообщение
func (l *UILogger) Info(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Info(format, args...)
	}
	l.toPanel("INFO", format, args...)
}

// Warning логирует предупреждение
func (l *UILogger) Warning(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Warning(format, args...)
	}
	l.toPanel("WARNING", format, args...)
}

// Error логирует ошибку
func (l *UILogger) Error(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Error(format, args...)
	}
	l.toPanel("ERROR", format, args...)
}

// Success логирует успешное выполнение
func (l *UILogger) Success(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Success(format, args...)
	}
	l.toPanel("SUCCESS", format, args...)
}

// Close закрывает логгер
func (l *UILogger) Close() error {
	if l.fileLogger != nil {
		return l.fileLogger.Close()
	}
	return nil
}

func (l *UILogger) toPanel(level, format string, args ...interface{}) {
	if l.sink != nil {
		l.sink.AddLog(level, fmt.Sprintf(format, args...))
	}
}
