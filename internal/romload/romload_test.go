package romload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.rom")
	want := []byte{0x80, 0x01, 0x00}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Load = %v, want %v", got, want)
	}
}

func TestLoadRejectsOversizedROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.rom")
	if err := os.WriteFile(path, make([]byte, maxROMSize+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load: want error for oversized ROM, got nil")
	}
}

func TestLoadReportsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.rom")); err == nil {
		t.Fatal("Load: want error for missing file, got nil")
	}
}
