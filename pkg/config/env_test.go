package config_test

import (
	"testing"
	"time"

	"newsdesk/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := config.GetEnvString("TEST_STR", "fallback"); got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
	if got := config.GetEnvString("TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := config.GetEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := config.GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("got %d, want default 7", got)
	}

	if got := config.GetEnvInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("got %d, want default 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := config.GetEnvBool("TEST_BOOL", !tt.want); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	t.Setenv("TEST_BOOL", "maybe")
	if got := config.GetEnvBool("TEST_BOOL", true); got != true {
		t.Error("invalid value should fall back to default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := config.GetEnvDuration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}

	t.Setenv("TEST_DUR_BAD", "ninety")
	if got := config.GetEnvDuration("TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("got %v, want default 1m", got)
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "https://a.example.com, https://b.example.com ,")
	got := config.GetEnvStringList("TEST_LIST", []string{"*"})
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("got %v", got)
	}

	fallback := config.GetEnvStringList("TEST_LIST_MISSING", []string{"*"})
	if len(fallback) != 1 || fallback[0] != "*" {
		t.Errorf("got %v, want [*]", fallback)
	}
}
