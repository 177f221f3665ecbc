package logger

import "testing"

func TestNewZapLogger_AllLevels(t *testing.T) {
	for _, level := range []LogLevel{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		l, err := NewZapLogger(Config{Level: level, Format: JSONFormat})
		if err != nil {
			t.Fatalf("unexpected error for level %s: %v", level, err)
		}
		if l == nil {
			t.Fatalf("expected non-nil logger for level %s", level)
		}
	}
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(Config{Level: "verbose", Format: TextFormat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestZapLogger_WithReturnsChild(t *testing.T) {
	l, err := NewZapLogger(DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := l.With("collection", "users")
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	child.Info("child logger works")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"info", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"loud", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseLogLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLogLevel(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLogLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    LogFormat
		wantErr bool
	}{
		{"json", JSONFormat, false},
		{"text", TextFormat, false},
		{"console", TextFormat, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLogFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseLogFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLogFormat(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLogFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Debug("ignored")
	l.Info("ignored")
	l.Warn("ignored")
	l.Error("ignored")
	if l.With("k", "v") == nil {
		t.Fatal("expected non-nil logger from With")
	}
}
