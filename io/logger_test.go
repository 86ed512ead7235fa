package argsio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger() (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	m := New().WithOut(&out).WithErr(&errOut).NoColor()
	return NewLogger(m), &out, &errOut
}

func TestLoggerFormats(t *testing.T) {
	for _, tc := range []struct {
		format LogFormat
		want   string
	}{
		{LogFormatCircles, "🔵 hello 1\n"},
		{LogFormatSymbols, "◆ hello 1\n"},
		{LogFormatTagged, "[INFO] hello 1\n"},
		{LogFormatPlain, "hello 1\n"},
	} {
		l, out, _ := newTestLogger()
		l.WithFormat(tc.format).Info("hello %d", 1)
		if out.String() != tc.want {
			t.Errorf("format %d: want %q, got %q", tc.format, tc.want, out.String())
		}
	}
}

func TestLoggerErrorsToStderr(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.WithFormat(LogFormatTagged)
	l.Warning("careful")
	l.Error("broken")
	l.Success("done")

	if errOut.String() != "[WARN] careful\n[ERROR] broken\n" {
		t.Fatalf("unexpected stderr: %q", errOut.String())
	}
	if out.String() != "[SUCCESS] done\n" {
		t.Fatalf("unexpected stdout: %q", out.String())
	}

	l.ErrorsToStderr(false).Error("now stdout")
	if !strings.HasSuffix(out.String(), "[ERROR] now stdout\n") {
		t.Fatalf("error should go to stdout, got %q", out.String())
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, out, _ := newTestLogger()
	l.WithFormat(LogFormatPlain).WithLevel(LevelInfo)
	l.Debug("hidden")
	l.Info("shown")
	if out.String() != "shown\n" {
		t.Fatalf("expected only the info line, got %q", out.String())
	}
}

func TestLoggerTimestampAndPrefix(t *testing.T) {
	l, out, _ := newTestLogger()
	l.WithFormat(LogFormatTagged).WithTimestamp(true).WithTimeFormat("2006")
	l.SetPrefix(LevelInfo, ">>")
	l.Info("x")
	line := out.String()
	if !strings.HasPrefix(line, ">> [") || !strings.HasSuffix(line, "] x\n") {
		t.Fatalf("unexpected timestamped line: %q", line)
	}

	l2, out2, _ := newTestLogger()
	l2.WithFormat(LogFormatPlain).WithTimestamp(true).WithTimeFormat("06")
	l2.Info("y")
	if strings.Contains(out2.String(), "[") || !strings.HasSuffix(out2.String(), " y\n") {
		t.Fatalf("plain timestamps are unbracketed, got %q", out2.String())
	}
}

func TestLoggerBlankMessage(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Info("")
	if out.String() != "\n" {
		t.Fatalf("blank message should print an empty line, got %q", out.String())
	}
}

func TestLoggerColorized(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var out bytes.Buffer
	m := New().WithOut(&out).ForceColor().ForceColorLevel(1)
	NewLogger(m).WithFormat(LogFormatPlain).Success("ok")
	if out.String() != "\x1b[92mok\x1b[0m\n" {
		t.Fatalf("unexpected colorized output: %q", out.String())
	}
}

func TestLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argsdemo.log")

	var out bytes.Buffer
	m := New().WithOut(&out).ForceColor()
	l := NewLogger(m).ToFile(path)
	l.Info("parsed %d flags", 3)
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[INFO] parsed 3 flags") {
		t.Fatalf("log file missing message: %q", content)
	}
	if strings.Contains(content, "\x1b[") {
		t.Fatalf("log file should not contain ANSI sequences: %q", content)
	}
	if !strings.Contains(out.String(), "parsed 3 flags") {
		t.Fatalf("terminal output missing message: %q", out.String())
	}

	// Closed logger keeps writing to the terminal only.
	l.Info("after close")
	if data2, _ := os.ReadFile(path); strings.Contains(string(data2), "after close") {
		t.Fatalf("closed file should not receive messages")
	}
}

func TestParseLogFormat(t *testing.T) {
	for name, want := range map[string]LogFormat{
		"":        LogFormatCircles,
		"circles": LogFormatCircles,
		"Symbols": LogFormatSymbols,
		"tagged":  LogFormatTagged,
		" plain ": LogFormatPlain,
	} {
		got, err := ParseLogFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseLogFormat(%q): want %d, got %d (err %v)", name, want, got, err)
		}
	}
	if _, err := ParseLogFormat("json"); err == nil {
		t.Error("expected error for unknown format")
	}
}
