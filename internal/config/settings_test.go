package config

import (
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", s)
	}
}

func TestLoadSettingsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, "mode: hard\nworkers: 3\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.Mode != ModeHard || s.Workers != 3 {
		t.Errorf("LoadSettings() = %+v", s)
	}
	if s.DefaultVariant != "wordle_5" || !s.UseOpeningCache {
		t.Errorf("LoadSettings() lost defaults: %+v", s)
	}
}

func TestLoadSettingsBadMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeFile(t, path, "mode: nightmare\n")
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() accepted an unknown mode")
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := DefaultSettings()
	want.DefaultVariant = "primel_5"
	want.Mode = ModeNormal

	if err := want.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("LoadSettings() = %+v, want %+v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeVariant},
		{in: "normal", want: ModeNormal},
		{in: "hard", want: ModeHard},
		{in: "variant", want: ModeVariant},
		{in: "HARD", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	v := Variant{HardMode: true}
	if !ModeVariant.HardFor(v) || ModeNormal.HardFor(v) || !ModeHard.HardFor(Variant{}) {
		t.Error("HardFor resolved the wrong rule set")
	}
}
