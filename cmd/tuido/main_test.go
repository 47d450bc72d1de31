package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/tuido/internal/update"
)

func TestRuntimeConfigFlagsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TUIDO_BACKEND", "json")
	t.Setenv("TUIDO_STORE", filepath.Join(dir, "env.json"))

	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.ParseFlags([]string{"--backend", "sqlite", "--log-file", "-", "--no-alt-screen"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := opts.runtimeConfig(cmd)
	if err != nil {
		t.Fatalf("runtime config: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Fatalf("flag must override env backend, got %q", cfg.Backend)
	}
	if cfg.StorePath != filepath.Join(dir, "env.json") {
		t.Fatalf("unset flag must keep env store, got %q", cfg.StorePath)
	}
	if cfg.LogPath != update.LogDisabled || cfg.AltScreen {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRuntimeConfigDefaultsWithoutFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := opts.runtimeConfig(cmd)
	if err != nil {
		t.Fatalf("runtime config: %v", err)
	}
	if cfg.StorePath != filepath.Join(dir, "tuido", "tasks.json") {
		t.Fatalf("unexpected default store: %q", cfg.StorePath)
	}
	if !cfg.AltScreen {
		t.Fatal("alt screen must default on")
	}
}

func TestRuntimeConfigRejectsUnknownBackend(t *testing.T) {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	if err := cmd.ParseFlags([]string{"--backend", "csv"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := opts.runtimeConfig(cmd); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tuido.log")
	logger, closeLog, err := openLogger(path)
	if err != nil {
		t.Fatalf("open logger: %v", err)
	}
	logger.Info("hello", "k", "v")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "msg=hello") || !strings.Contains(string(raw), "k=v") {
		t.Fatalf("unexpected log contents: %q", raw)
	}
}

func TestOpenLoggerDisabled(t *testing.T) {
	logger, closeLog, err := openLogger(update.LogDisabled)
	if err != nil || logger == nil {
		t.Fatalf("disabled logger: %v", err)
	}
	logger.Info("dropped")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
