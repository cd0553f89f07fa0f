//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	binDir, err := os.MkdirTemp("", "folio-e2e-bin-*")
	if err != nil {
		fmt.Printf("Failed to create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(binDir)
	binPath = filepath.Join(binDir, "folio_e2e")

	// folio has no cgo dependencies
	fmt.Println("Building folio...")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = ".."
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("Failed to build folio: %v\n%s", err, out)
		return 1
	}
	return m.Run()
}
