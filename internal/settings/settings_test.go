package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load(missing) failed: %v", err)
	}
	if s != Default() {
		t.Errorf("Load(missing) = %+v, expected defaults %+v", s, Default())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	want := Settings{MusicEnabled: false, SfxEnabled: true, BowType: "advanced"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Error("Load(corrupt) should report the parse error")
	}
	if s != Default() {
		t.Errorf("Load(corrupt) = %+v, expected defaults", s)
	}
}

func TestLoadFillsMissingBowType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"music_enabled":false}`), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.BowType != Default().BowType {
		t.Errorf("BowType = %q, expected default %q", s.BowType, Default().BowType)
	}
	if s.MusicEnabled {
		t.Error("MusicEnabled should honor the file")
	}
}
