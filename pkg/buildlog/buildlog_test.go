package buildlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_SectionAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)

	log, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	log.Section("Configuring with generator: %s", "Ninja")
	if _, err := log.Write([]byte("-- Configuring done\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	want := "Configuring with generator: Ninja\n-- Configuring done\n"
	if string(data) != want {
		t.Errorf("log contents = %q, want %q", string(data), want)
	}
}

func TestCreate_TruncatesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)
	if err := os.WriteFile(path, []byte("stale output from last run\n"), 0o644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	log, err := Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	log.Section("fresh run")
	_ = log.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Errorf("log still contains previous run output: %q", string(data))
	}
}

func TestLog_CloseTwice(t *testing.T) {
	log, err := Create(filepath.Join(t.TempDir(), DefaultName))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)
	if err := os.WriteFile(path, []byte("error: expected ';'\n"), 0o644); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}

	var buf bytes.Buffer
	Dump(&buf, path)

	out := buf.String()
	if !strings.Contains(out, "---- build log ("+path+") ----") {
		t.Errorf("Dump output missing header: %q", out)
	}
	if !strings.Contains(out, "error: expected ';'") {
		t.Errorf("Dump output missing log contents: %q", out)
	}
	if !strings.HasSuffix(out, "---- end log ----\n") {
		t.Errorf("Dump output missing footer: %q", out)
	}
}

func TestDump_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	Dump(&buf, filepath.Join(t.TempDir(), "nope.log"))

	if !strings.Contains(buf.String(), "(log file not found)") {
		t.Errorf("Dump output = %q, want missing-file note", buf.String())
	}
}
