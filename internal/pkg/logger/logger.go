package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// AppLogger wraps logrus with file output support
type AppLogger struct {
	*logrus.Logger
	file *os.File
}

// NewAppLogger creates a new application logger writing structured JSON
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: l}

	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		appLogger.file = file
		l.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return appLogger, nil
}

// Close releases the log file if one was opened
func (a *AppLogger) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}
