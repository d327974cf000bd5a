package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
)

// isolate keeps the developer's own config and env out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	for _, key := range []string{"FRONTEND", "TRACE", "WINDOW_WIDTH", "WINDOW_HEIGHT", "TUI_LOG_FILE"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := Config{
		Frontend: FrontendGUI,
		Trace:    true,
		Window:   WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, writeConfig(t, `
frontend: TUI
trace: false
window:
  width: 640
  height: 480
tui:
  log_file: /tmp/person-form.log
`))

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := Config{
		Frontend: FrontendTUI,
		Trace:    false,
		Window:   WindowConfig{Width: 640, Height: 480},
		TUI:      TUIConfig{LogFile: "/tmp/person-form.log"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("file config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(nil); err != nil {
		t.Fatalf("Expected missing config file to be ignored, got %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, writeConfig(t, "frontend: gui\ntrace: true\n"))
	t.Setenv("PERSONFORM_FRONTEND", "tui")
	t.Setenv("PERSONFORM_TRACE", "false")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Frontend != FrontendTUI || cfg.Trace {
		t.Errorf("Expected env to override file, got %+v", cfg)
	}

	cfg, err = Load([]string{"--frontend", "gui", "--trace=true", "--log-file", "trace.log"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Frontend != FrontendGUI || !cfg.Trace || cfg.TUI.LogFile != "trace.log" {
		t.Errorf("Expected flags to override env, got %+v", cfg)
	}
}

func TestLoad_UnknownFrontend(t *testing.T) {
	isolate(t)

	_, err := Load([]string{"--frontend", "web"})
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Expected ErrUnknownFrontend, got %v", err)
	}
}

func TestLoad_BadFlag(t *testing.T) {
	isolate(t)

	if _, err := Load([]string{"--no-such-flag"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestLoad_Help(t *testing.T) {
	isolate(t)

	for _, arg := range []string{"--help", "-h"} {
		_, err := Load([]string{arg})
		if !errors.Is(err, pflag.ErrHelp) {
			t.Errorf("%s: expected pflag.ErrHelp, got %v", arg, err)
		}
	}
}

func TestLoad_BadFile(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, writeConfig(t, "frontend: [unterminated\n"))

	if _, err := Load(nil); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gui", Config{Frontend: FrontendGUI, Window: WindowConfig{Width: 1, Height: 1}}, false},
		{"tui", Config{Frontend: FrontendTUI, Window: WindowConfig{Width: 1, Height: 1}}, false},
		{"empty frontend", Config{Window: WindowConfig{Width: 1, Height: 1}}, true},
		{"zero window", Config{Frontend: FrontendGUI}, true},
	}

	for _, tc := range tests {
		err := tc.cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %t", tc.name, err, tc.wantErr)
		}
	}
}
