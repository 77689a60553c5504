package coderland_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coderland"
	"github.com/dmitrymomot/coderland/pkg/logger"
	"github.com/dmitrymomot/coderland/pkg/requestid"
)

// logSink is a goroutine-safe log destination that can be decoded line by line.
type logSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *logSink) entries(t *testing.T) []map[string]any {
	t.Helper()
	s.mu.Lock()
	data := s.buf.String()
	s.mu.Unlock()

	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), "line %q", sc.Text())
		out = append(out, entry)
	}
	return out
}

func (s *logSink) messages(t *testing.T) []string {
	t.Helper()
	var msgs []string
	for _, e := range s.entries(t) {
		if msg, ok := e["msg"].(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func countPrefix(msgs []string, prefix string) int {
	n := 0
	for _, m := range msgs {
		if strings.HasPrefix(m, prefix) {
			n++
		}
	}
	return n
}

func newTestLogger() (*slog.Logger, *logSink) {
	sink := &logSink{}
	return logger.New(
		logger.WithOutput(sink),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	), sink
}

// requestsTotal reads coderland_requests_total from the App's registry.
func requestsTotal(t *testing.T, app *coderland.App) float64 {
	t.Helper()
	families, err := app.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "coderland_requests_total" {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	require.FailNow(t, "coderland_requests_total not registered")
	return 0
}
