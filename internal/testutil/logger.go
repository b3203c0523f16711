package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/dtroode/newsletter-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.New(0, logger.WithWriter(io.Discard))
}

// LogBuffer collects text log output for assertions.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Lines returns every record logged at the given slog level name, e.g. "WARN".
func (b *LogBuffer) Lines(level string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var lines []string
	for _, line := range strings.Split(b.buf.String(), "\n") {
		if strings.Contains(line, "level="+level) {
			lines = append(lines, line)
		}
	}
	return lines
}

// MakeBufferLogger returns a debug level logger writing into a LogBuffer.
func MakeBufferLogger() (*logger.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return logger.New(-4, logger.WithWriter(buf)), buf
}
