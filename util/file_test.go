package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendToFileCreatesAndAppends(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "records.jsonl")
	if err := AppendToFile(target, "one"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AppendToFile(target, "two", "three"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bs, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(bs)), "\n")
	if len(lines) != 3 || lines[0] != "one" || lines[2] != "three" {
		t.Errorf("unexpected file contents: %q", string(bs))
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "record.json")
	if err := WriteJSON(target, map[string]int{"generation": 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bs, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(bs), `"generation":3`) {
		t.Errorf("unexpected json contents: %q", string(bs))
	}
}
