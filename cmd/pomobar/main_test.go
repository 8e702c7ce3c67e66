package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeAutostart struct {
	enabled  bool
	execPath string
}

func (service *fakeAutostart) GetConfigDir() (string, error) {
	return os.TempDir(), nil
}

func (service *fakeAutostart) EnableAutostart(_ string, execPath string) error {
	service.enabled = true
	service.execPath = execPath
	return nil
}

func (service *fakeAutostart) DisableAutostart(string) error {
	service.enabled = false
	return nil
}

func (service *fakeAutostart) AutostartEnabled(string) (bool, error) {
	return service.enabled, nil
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestConfigInitWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out := execute(t, "--config", path, "config", "init")
	require.Contains(t, out, "wrote "+path)
	require.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 40\n"), 0o644))
	out = execute(t, "--config", path, "config", "init")
	require.Contains(t, out, "config already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "focus_minutes: 40\n", string(data))
}

func TestConfigShowMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focus_minutes: 40\n"), 0o644))

	out := execute(t, "--config", path, "config", "show")
	require.Contains(t, out, "# "+path)
	require.Contains(t, out, "focus_minutes: 40")
	require.Contains(t, out, "short_break_minutes: 5")
	require.Contains(t, out, "cycles_before_long_break: 4")
}

func TestConfigShowRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cycles_before_long_break: 0\n"), 0o644))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "show"})
	require.Error(t, root.Execute())
}

func TestAutostartCommands(t *testing.T) {
	service := &fakeAutostart{}
	cmd := newAutostartCmd(service)
	var out bytes.Buffer
	cmd.SetOut(&out)

	cmd.SetArgs([]string{"enable"})
	require.NoError(t, cmd.Execute())
	require.True(t, service.enabled)
	require.NotEmpty(t, service.execPath)

	cmd.SetArgs([]string{"status"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "autostart enabled")

	cmd.SetArgs([]string{"disable"})
	require.NoError(t, cmd.Execute())
	require.False(t, service.enabled)
	require.Contains(t, out.String(), "autostart disabled")
}
