//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testPortfolio = `[profile]
name = "Sam Okafor"
title = "Systems Engineer"
roles = ["Systems Engineer", "Tinkerer"]

[[projects]]
id = "relay"
title = "Packet Relay"
description = "Forwards packets between two lossy links."
category = "other"
status = "completed"
images = ["relay-1.png", "relay-2.png"]
`

func startFolio(t *testing.T, args ...string) (*TUITestFramework, string) {
	t.Helper()
	tf := NewTUITest(t)
	workspace, err := tf.CreateWorkspace()
	require.NoError(t, err, "Failed to create workspace")
	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first frame")
	return tf, workspace
}

func TestStartAndQuit(t *testing.T) {
	t.Parallel()
	tf, _ := startFolio(t)
	defer tf.Cleanup()

	require.True(t, tf.SeePlain("Alex Rivera"), "Should show the profile name")
	require.NoError(t, tf.Quit())

	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err, "Should exit cleanly")
	case <-time.After(3 * time.Second):
		t.Fatal("App did not exit after q")
	}
}

func TestProjectModal(t *testing.T) {
	t.Parallel()
	tf, _ := startFolio(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Jump(4))
	require.True(t, tf.SeePlain("Projects"), "Should show the projects section")

	require.NoError(t, tf.Tab())
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("esc close"), "Should open the project modal")

	require.NoError(t, tf.Esc())
	require.True(t, tf.SeePlain("[normal]"), "Should return to the page")
}

func TestContactValidation(t *testing.T) {
	t.Parallel()
	tf, _ := startFolio(t)
	defer tf.Cleanup()

	require.NoError(t, tf.Write())
	require.True(t, tf.SeePlain("Send Message"), "Should show the contact form")
	require.NoError(t, tf.Submit())
	require.True(t, tf.SeePlain("Name is required"), "Should reject an empty form")
}

func TestThemeSavedOnExit(t *testing.T) {
	t.Parallel()
	tf, workspace := startFolio(t)
	defer tf.Cleanup()

	require.NoError(t, tf.SendKeys(KeyTheme))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tf.Quit())
	_ = tf.cmd.Wait()

	data, err := os.ReadFile(filepath.Join(workspace, ".config", "folio", "config.toml"))
	require.NoError(t, err, "Config should be written on exit")
	require.Contains(t, string(data), `theme = "light"`)
}

func TestContentReloadWhileRunning(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateWorkspace()
	require.NoError(t, err)
	path := filepath.Join(workspace, "portfolio.toml")
	require.NoError(t, os.WriteFile(path, []byte(testPortfolio), 0644))

	require.NoError(t, tf.StartApp("-content", path, "-watch"))
	require.True(t, tf.Ready(), "Should draw the first frame")
	require.True(t, tf.SeePlain("Sam Okafor"), "Should show the file's profile")

	edited := strings.Replace(testPortfolio, "Sam Okafor", "Sam O. Okafor", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	require.True(t, tf.WaitForStatusMessage("Reloaded", 5*time.Second), "Should report the reload")
	require.True(t, tf.SeePlain("Sam O. Okafor"), "Should show the new name")
}
