package infra

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "debug", level: "debug", want: logrus.DebugLevel},
		{name: "warn", level: "warn", want: logrus.WarnLevel},
		{name: "unknown falls back to info", level: "chatty", want: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLogger(tt.level, &bytes.Buffer{})
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("info", &buf)
	l.WithField("scenario", "realistic").Info("projection done")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["scenario"] != "realistic" || entry["msg"] != "projection done" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
