package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До Init пишет в stderr с уровнем info.
var Log = logrus.New()

// Options - параметры логгера. Пустые поля читаются из LOG_LEVEL / LOG_FORMAT.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init(opts Options) {
	Log = New(opts)
}

// New создает логгер с заданными параметрами
func New(opts Options) *logrus.Logger {
	l := logrus.New()

	// 1. Уровень логирования. По умолчанию - "info".
	logLevel := opts.Level
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := opts.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать логи
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	l.SetOutput(out)

	return l
}
