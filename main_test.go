package main

import (
	"testing"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PERSONFORM_CONFIG", "")
	t.Setenv("PERSONFORM_FRONTEND", "")
}

func TestRun_Help(t *testing.T) {
	isolateConfig(t)

	for _, arg := range []string{"--help", "-h"} {
		if code := run([]string{arg}); code != 0 {
			t.Errorf("run(%s) = %d, expected 0", arg, code)
		}
	}
}

func TestRun_BadConfig(t *testing.T) {
	isolateConfig(t)

	if code := run([]string{"--frontend", "web"}); code != 1 {
		t.Errorf("Expected exit code 1 for unknown frontend, got %d", code)
	}
	if code := run([]string{"--no-such-flag"}); code != 1 {
		t.Errorf("Expected exit code 1 for unknown flag, got %d", code)
	}
}
