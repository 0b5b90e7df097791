package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LoggerManager управляет логированием в консоль и файл
type LoggerManager struct {
	file   *os.File
	logger *logrus.Logger
}

// NewLoggerManager создает новый экземпляр LoggerManager.
// Пустой logFilePath означает вывод только в консоль.
func NewLoggerManager(logFilePath string, level string) (*LoggerManager, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	m := &LoggerManager{logger: l}
	if logFilePath == "" {
		l.SetOutput(os.Stdout)
		return m, nil
	}

	// Создаем директорию для логов, если её нет
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}
	m.file = file
	l.SetOutput(io.MultiWriter(os.Stdout, file))
	return m, nil
}

// NewWithWriter создает LoggerManager, пишущий в w
func NewWithWriter(w io.Writer, level logrus.Level) *LoggerManager {
	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &LoggerManager{logger: l}
}

// Close закрывает файл логов
func (l *LoggerManager) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug записывает отладочное сообщение
func (l *LoggerManager) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info записывает информационное сообщение
func (l *LoggerManager) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Error записывает сообщение об ошибке
func (l *LoggerManager) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// LogError записывает ошибку с дополнительной информацией
func (l *LoggerManager) LogError(err error, context string) {
	if err != nil {
		l.logger.WithError(err).Error(context)
	}
}

// WithFields возвращает запись с полями для структурированного вывода
func (l *LoggerManager) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.logger.WithFields(fields)
}

// DebugEnabled сообщает, включен ли отладочный уровень
func (l *LoggerManager) DebugEnabled() bool {
	return l.logger.IsLevelEnabled(logrus.DebugLevel)
}
