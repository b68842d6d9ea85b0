package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"", log.InfoLevel, false},
		{"INFO", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{" error ", log.ErrorLevel, false},
		{"fatal", log.FatalLevel, false},
		{"verbose", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Formatter
		wantErr bool
	}{
		{"", log.TextFormatter, false},
		{"text", log.TextFormatter, false},
		{"JSON", log.JSONFormatter, false},
		{"logfmt", log.LogfmtFormatter, false},
		{"xml", log.TextFormatter, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormatter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormatter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("json output with level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: "warn", Format: "json"})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		logger.Info("hidden")
		logger.Warn("shown", "path", "tasks.json")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if entry["msg"] != "shown" || entry["path"] != "tasks.json" {
			t.Errorf("unexpected entry: %v", entry)
		}
	})

	t.Run("prefix in text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, DefaultOptions())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		logger.Info("hello")
		if !strings.Contains(buf.String(), "taskdeck") || !strings.Contains(buf.String(), "hello") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("invalid options", func(t *testing.T) {
		if _, err := New(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
			t.Error("expected error for bad level")
		}
		if _, err := New(&bytes.Buffer{}, Options{Format: "yaml"}); err == nil {
			t.Error("expected error for bad format")
		}
	})
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nowhere")
}

func TestOpenFile(t *testing.T) {
	t.Run("creates nested dir and appends", func(t *testing.T) {
		baseDir := filepath.Join(t.TempDir(), "logs", "nested")
		workDir := t.TempDir()

		f, err := OpenFile(baseDir, workDir)
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		if _, err := f.Writer().Write([]byte("first\n")); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
		if filepath.Base(f.Path) != "taskdeck.log" {
			t.Errorf("Path = %q, want taskdeck.log", f.Path)
		}
		if filepath.Dir(f.Path) != f.Dir {
			t.Errorf("Path %q is not inside Dir %q", f.Path, f.Dir)
		}

		f, err = OpenFile(baseDir, workDir)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if _, err := f.Writer().Write([]byte("second\n")); err != nil {
			t.Fatal(err)
		}
		f.Close()

		data, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "first\nsecond\n" {
			t.Errorf("log content = %q", data)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := OpenFile("", t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Errorf("expected empty dir error, got %v", err)
		}
	})

	t.Run("close nil file", func(t *testing.T) {
		var f *File
		if err := f.Close(); err != nil {
			t.Errorf("Close on nil = %v", err)
		}
	})
}

func TestFindLogDir(t *testing.T) {
	baseDir := t.TempDir()
	workDir := t.TempDir()

	got, err := FindLogDir(baseDir, workDir)
	if err != nil {
		t.Fatalf("FindLogDir: %v", err)
	}
	if filepath.Dir(got) != filepath.Clean(baseDir) {
		t.Errorf("FindLogDir = %q, want a child of %q", got, baseDir)
	}
	again, _ := FindLogDir(baseDir, workDir)
	if again != got {
		t.Errorf("FindLogDir not stable: %q vs %q", got, again)
	}
}

func TestResolveBaseDir(t *testing.T) {
	workDir := filepath.Join(string(filepath.Separator), "work")
	abs := filepath.Join(string(filepath.Separator), "var", "log", "..", "log")

	if got, want := resolveBaseDir(abs, workDir), filepath.Join(string(filepath.Separator), "var", "log"); got != want {
		t.Errorf("absolute: got %q, want %q", got, want)
	}
	if got, want := resolveBaseDir("logs", workDir), filepath.Join(workDir, "logs"); got != want {
		t.Errorf("relative: got %q, want %q", got, want)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"Hello World", "Hello_World"},
		{"many   spaces", "many_spaces"},
		{"special@chars!", "special_chars"},
		{"test.-_project", "test.-_project"},
		{"test/directory", "test_directory"},
		{"café", "caf"},
		{"", "project"},
		{"   ", "project"},
		{"___", "project"},
		{"..", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := slugify(tt.input); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHashPath(t *testing.T) {
	a := hashPath("/home/user/project")
	if len(a) != 8 {
		t.Errorf("hashPath length = %d, want 8", len(a))
	}
	if a != hashPath("/home/user/project") {
		t.Error("hashPath not deterministic")
	}
	if a == hashPath("/home/user/other") {
		t.Error("different paths should hash differently")
	}
}

func TestProjectSlug(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "home", "user", "My Tasks")
	got := projectSlug(root)
	if !strings.HasPrefix(got, "My_Tasks-") {
		t.Errorf("projectSlug(%q) = %q", root, got)
	}
	if !strings.HasSuffix(got, hashPath(root)) {
		t.Errorf("projectSlug(%q) = %q, missing hash", root, got)
	}
}

func TestTailLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"all lines", 0, "one\ntwo\nthree\nfour\n"},
		{"last two", 2, "three\nfour\n"},
		{"more than available", 10, "one\ntwo\nthree\nfour\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := TailLog(context.Background(), &buf, path, tt.n, false); err != nil {
				t.Fatalf("TailLog: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("TailLog(n=%d) = %q, want %q", tt.n, buf.String(), tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := TailLog(context.Background(), &bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.log"), 0, false)
		if err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestTailLogFollowStopsOnCancel(t *testing.T) {
	orig := followInterval
	followInterval = 5 * time.Millisecond
	t.Cleanup(func() { followInterval = orig })

	path := filepath.Join(t.TempDir(), "taskdeck.log")
	if err := os.WriteFile(path, []byte("start\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	if err := TailLog(ctx, &buf, path, 1, true); err != nil {
		t.Fatalf("TailLog: %v", err)
	}
	if buf.String() != "start\n" {
		t.Errorf("TailLog output = %q", buf.String())
	}
}
