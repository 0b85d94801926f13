package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewBuildsForEveryEnvironment(t *testing.T) {
	for _, env := range []string{"production", "development", "test", ""} {
		logger, err := New(env)
		if err != nil {
			t.Errorf("New(%q) returned error: %v", env, err)
			continue
		}
		logger.Sync()
	}
}

func TestProperty_LogsAreStructured(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every log entry is one JSON object with level, timestamp and message", prop.ForAll(
		func(message string, level string) bool {
			var buf bytes.Buffer

			encoderConfig := zap.NewProductionEncoderConfig()
			encoderConfig.TimeKey = "timestamp"
			encoderConfig.MessageKey = "message"

			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(&buf),
				zapcore.DebugLevel,
			)

			logger := zap.New(core)
			defer logger.Sync()

			fields := []zap.Field{
				zap.String("session_id", "a2b1"),
				zap.Int("product_id", 2),
			}

			switch level {
			case "debug":
				logger.Debug(message, fields...)
			case "warn":
				logger.Warn(message, fields...)
			case "error":
				logger.Error(message, fields...)
			default:
				logger.Info(message, fields...)
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				return false
			}

			for _, key := range []string{"level", "timestamp", "message", "session_id", "product_id"} {
				if _, ok := entry[key]; !ok {
					return false
				}
			}

			return entry["message"] == message
		},
		gen.AnyString(),
		gen.OneConstOf("debug", "info", "warn", "error"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
