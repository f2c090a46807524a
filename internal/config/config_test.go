package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mcatur/sol/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"
catalog_path = "questions.toml"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "2m"
shutdown_timeout = "30s"

[api]
base_path = "/api"

[api.cors]
enabled = false

[advisor]
base_url = "https://chat.example.com/api"
api_key = "test-key"
model = "sabia-4"
request_timeout = "30s"
pacing_floor = "4.5s"

[flow]
countdown = "900s"
drafting_delay = "1.8s"
session_ttl = "30m"
sweep_interval = "1m"

[outreach]
agent_number = "5511981366140"
`

const overlayConfig = `
[server]
port = 9090

[advisor]
model = "sabia-3"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.Advisor.Model != "sabia-4" {
		t.Errorf("advisor model: got %s, want sabia-4", cfg.Advisor.Model)
	}
	if !cfg.Advisor.Configured() {
		t.Error("advisor should be configured with base_url and api_key set")
	}
	if cfg.Flow.Countdown != "900s" {
		t.Errorf("flow countdown: got %s, want 900s", cfg.Flow.Countdown)
	}
	if cfg.Outreach.AgentNumber != "5511981366140" {
		t.Errorf("agent number: got %s", cfg.Outreach.AgentNumber)
	}
	if cfg.CatalogPath != "questions.toml" {
		t.Errorf("catalog path: got %s, want questions.toml", cfg.CatalogPath)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("SOL_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Advisor.Model != "sabia-3" {
		t.Errorf("advisor model: got %s, want sabia-3 (from overlay)", cfg.Advisor.Model)
	}
	if cfg.Advisor.APIKey != "test-key" {
		t.Errorf("advisor api_key: got %s, want test-key (from base)", cfg.Advisor.APIKey)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("SOL_VERSION", "2.0.0")
	t.Setenv("SOL_SERVER_PORT", "3000")
	t.Setenv("SOL_ADVISOR_PACING_FLOOR", "2s")
	t.Setenv("SOL_FLOW_SESSION_TTL", "5m")
	t.Setenv("SOL_OUTREACH_AGENT_NUMBER", "5511999999999")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Advisor.PacingFloor != "2s" {
		t.Errorf("pacing floor: got %s, want 2s", cfg.Advisor.PacingFloor)
	}
	if cfg.Flow.SessionTTL != "5m" {
		t.Errorf("session ttl: got %s, want 5m", cfg.Flow.SessionTTL)
	}
	if cfg.Outreach.AgentNumber != "5511999999999" {
		t.Errorf("agent number: got %s, want 5511999999999", cfg.Outreach.AgentNumber)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Advisor.Model != "sabia-4" {
		t.Errorf("advisor model default: got %s, want sabia-4", cfg.Advisor.Model)
	}
	if cfg.Advisor.Configured() {
		t.Error("advisor should not be configured without base_url and api_key")
	}
	if cfg.Flow.DraftingDelay != "1.8s" {
		t.Errorf("drafting delay default: got %s, want 1.8s", cfg.Flow.DraftingDelay)
	}
	if cfg.Outreach.AgentNumber != "5511981366140" {
		t.Errorf("agent number default: got %s", cfg.Outreach.AgentNumber)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `server = not toml`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "shutdown_timeout = \"soon\"\n")
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid shutdown_timeout")
	}
}

func TestEnvDefault(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}
}

func TestEnvFromEnvVar(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("SOL_ENV", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "production" {
		t.Errorf("env: got %s, want production", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
}

func TestServerAddr(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if addr := cfg.Server.Addr(); addr != "0.0.0.0:8080" {
		t.Errorf("addr: got %s, want 0.0.0.0:8080", addr)
	}
}

func TestFlowDurations(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if d := cfg.Flow.CountdownDuration(); d != 900*time.Second {
		t.Errorf("countdown: got %v, want 900s", d)
	}
	if d := cfg.Advisor.PacingFloorDuration(); d != 4500*time.Millisecond {
		t.Errorf("pacing floor: got %v, want 4.5s", d)
	}
}

func TestInvalidAgentNumber(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("SOL_OUTREACH_AGENT_NUMBER", "+55 11 98136-6140")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-digit agent number")
	}
}
