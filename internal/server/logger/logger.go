// logger - пакет с логером сервера и middleware для логирования входящих запросов.
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ServerLog - синглтон логера сервера. До инициализации логер ничего не пишет.
var ServerLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует синглтон логера с заданным уровнем логирования.
func Initialize(level string) error {
	// преобразую текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	// создаю новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаю уровень
	cfg.Level = lvl
	// создаю логер на основе конфигурации
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	// устанавливаю синглтон
	ServerLog = zl
	return nil
}

type (
	// Структура для хранения сведений об ответе.
	responseData struct {
		status int
		size   int
	}

	// Реализация http.ResponseWriter с сохранением сведений об ответе.
	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write - запись ответа с подсчетом размера.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader - запись заголовка ответа с сохранением статуса.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// RequestLogger - middleware-логер для входящих HTTP-запросов.
func RequestLogger(h http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   responseData,
		}
		h(&lw, req)

		duration := time.Since(start)

		ServerLog.Info("got incoming HTTP request",
			zap.String("uri", req.RequestURI),
			zap.String("method", req.Method),
			zap.String("duration", duration.String()),
			zap.Int("status", responseData.status),
			zap.Int("size", responseData.size),
		)
	}
}
