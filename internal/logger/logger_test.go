package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, nil)

	output := buf.String()
	if strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("expected messages below WARN to be discarded, got %q", output)
	}
	if !strings.Contains(output, "warn message") || !strings.Contains(output, "error message") {
		t.Errorf("expected WARN and ERROR messages, got %q", output)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("season synced", Fields{"season": 2025, "count": 42})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "season synced" {
		t.Errorf("expected message 'season synced', got %s", entry.Message)
	}
	if entry.Fields["season"] != float64(2025) {
		t.Errorf("expected season field 2025, got %v", entry.Fields["season"])
	}
	if entry.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("sync.runs")
	m.IncrCounter("sync.runs")
	m.SetGauge("dataset.size", 128)
	m.RecordTiming("sync.season", 100*time.Millisecond)
	m.RecordTiming("sync.season", 300*time.Millisecond)

	snapshot := m.GetSnapshot()

	counters := snapshot["counters"].(map[string]int64)
	if counters["sync.runs"] != 2 {
		t.Errorf("expected counter 2, got %d", counters["sync.runs"])
	}

	gauges := snapshot["gauges"].(map[string]float64)
	if gauges["dataset.size"] != 128 {
		t.Errorf("expected gauge 128, got %f", gauges["dataset.size"])
	}

	timings := snapshot["timings"].(map[string]map[string]interface{})
	stats, ok := timings["sync.season"]
	if !ok {
		t.Fatal("expected sync.season timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("expected timing count 2, got %v", stats["count"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("expected average 200ms, got %v", stats["average"])
	}
}
