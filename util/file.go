package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// WriteToFile writes the given lines to the file, replacing its contents.
func WriteToFile(savePath string, content ...string) error {
	if err := EnsureDir(filepath.Dir(savePath)); err != nil {
		return err
	}
	out := ""
	for _, c := range content {
		out += c + "\n"
	}
	return os.WriteFile(savePath, []byte(out), 0o644)
}

// AppendToFile appends the given lines to the file, creating it if needed.
func AppendToFile(savePath string, content ...string) error {
	if err := EnsureDir(filepath.Dir(savePath)); err != nil {
		return err
	}
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON marshals v and writes it to the file.
func WriteJSON(savePath string, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", savePath, err)
	}
	return WriteToFile(savePath, string(bs))
}

// AppendJSONL appends v as one JSON line.
func AppendJSONL(savePath string, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", savePath, err)
	}
	return AppendToFile(savePath, string(bs))
}
