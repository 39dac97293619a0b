package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PLANNER_BUILD_TARGET", "PLANNER_DB_DRIVER", "PLANNER_HTTP_PORT",
		"PLANNER_REMINDER_MODE", "PLANNER_NOTIFY_SINK",
	} {
		_ = os.Unsetenv(k)
	}

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.BuildTarget != "local" || cfg.DBDriver != "sqlite" {
		t.Fatalf("unexpected default target/driver: %+v", cfg)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default port: %d", cfg.HTTPPort)
	}
	if cfg.ReminderMode != "poll" || cfg.ReminderIntervalSeconds != 60 {
		t.Fatalf("unexpected reminder defaults: %+v", cfg)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("PLANNER_REMINDER_MODE", "timer")
	defer func() { _ = os.Unsetenv("PLANNER_REMINDER_MODE") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.ReminderMode != "timer" {
		t.Fatalf("reminder mode env override failed, got %s", cfg.ReminderMode)
	}
}

func TestResolveDefaults_CloudDerivesPostgres(t *testing.T) {
	cfg := &Config{BuildTarget: "cloud", DBDriver: "auto", ReminderMode: "poll", NotifySink: "desktop"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected postgres, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_RejectsUnknownTarget(t *testing.T) {
	cfg := &Config{BuildTarget: "mainframe", ReminderMode: "poll", NotifySink: "desktop"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for unknown build target")
	}
}

func TestResolveDefaults_WebhookRequiresURL(t *testing.T) {
	cfg := &Config{BuildTarget: "local", DBDriver: "auto", ReminderMode: "poll", NotifySink: "webhook"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error when webhook sink has no URL")
	}
}

func TestLocation_FallsBackOnBadZone(t *testing.T) {
	cfg := &Config{TimeZone: "Not/AZone"}
	if cfg.Location() == nil {
		t.Fatal("expected non-nil location")
	}
}
