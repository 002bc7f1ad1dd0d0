package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"imagecompressor/internal/domain/entities"
)

// FileLogger реализация логгера в файл с ротацией
type FileLogger struct {
	logger *logrus.Logger
	closer io.Closer
}

// NewFileLogger создает новый файловый логгер.
// При выключенной записи в файл логгер остается рабочим, но ничего не пишет.
func NewFileLogger(config entities.OutputConfig) (*FileLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	if !config.LogToFile || config.LogFileName == "" {
		logger.SetOutput(io.Discard)
		return &FileLogger{logger: logger}, nil
	}

	if dir := filepath.Dir(config.LogFileName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("создание директории журнала: %w", err)
		}
	}

	writer := &lumberjack.Logger{
		Filename:   config.LogFileName,
		MaxSize:    config.LogMaxSizeMB,
		MaxBackups: config.LogMaxBackups,
		MaxAge:     config.LogMaxAgeDays,
		Compress:   config.LogCompress,
	}
	logger.SetOutput(writer)

	return &FileLogger{logger: logger, closer: writer}, nil
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...interface{}) {
	l.logger.WithField("status", "success").Infof(format, args...)
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
