package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init это обычный logrus.New(), так что библиотечный код и тесты
// могут логировать без подготовки.
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте приложения в main.go.
func Init() {
	// 1. Уровень логирования. По умолчанию - "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// 3. Куда писать. LOG_FILE уводит логи в файл, чтобы не мешать терминалу.
	Log.SetOutput(os.Stdout)
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).Warn("Cannot open LOG_FILE, logging to stdout")
			return
		}
		Log.SetOutput(f)
	}
}

// Silence отключает вывод, если логи не перенаправлены в файл.
// Нужен, когда экран занят полноэкранным интерфейсом.
func Silence() {
	if os.Getenv("LOG_FILE") == "" {
		Log.SetOutput(io.Discard)
	}
}
