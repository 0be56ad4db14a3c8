// Package testutils provides helper functions and utilities for testing the greeter codebase.
package testutils

import (
	"io"
	"os"
	"testing"

	"github.com/savantbuild/greeter/datamodel"
	"github.com/savantbuild/greeter/logger"
	"gopkg.in/yaml.v3"
)

// CreateTempConfigFile creates a temporary YAML configuration file from a Config struct.
func CreateTempConfigFile(t *testing.T, config *datamodel.Config) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "greeter-test-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	yamlBytes, err := yaml.Marshal(config)
	if err != nil {
		t.Fatalf("Failed to marshal config to YAML: %v", err)
	}

	if _, err := tmpFile.Write(yamlBytes); err != nil {
		t.Fatalf("Failed to write config to temp file: %v", err)
	}

	return tmpFile.Name()
}

// CaptureStdout swaps os.Stdout for a pipe while fn runs and returns
// everything fn wrote to it.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	original := os.Stdout
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	func() {
		defer func() {
			os.Stdout = original
			w.Close()
		}()
		fn()
	}()

	out := <-done
	r.Close()
	return string(out)
}

// InitLogging ensures the logger is properly initialized for tests
func InitLogging() {
	logger.Init(logger.LevelDebug)
}
