package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "host_key")

	got, err := resolveHostKey(want)
	if err != nil {
		t.Fatalf("resolveHostKey() error = %v", err)
	}
	if got != want {
		t.Errorf("resolveHostKey() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}

	t.Setenv("HOME", dir)
	got, err = resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey(\"\") error = %v", err)
	}
	if expected := filepath.Join(dir, ".neontype", "host_key"); got != expected {
		t.Errorf("resolveHostKey(\"\") = %q, expected %q", got, expected)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "history.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.store == nil {
		t.Errorf("history store not opened")
	}
	if srv.Players() != 0 {
		t.Errorf("Players() = %d, expected 0", srv.Players())
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}

	srv.closeStore()
	if srv.store != nil {
		t.Errorf("closeStore() left the store open")
	}
}
