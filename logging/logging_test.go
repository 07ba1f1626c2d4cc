package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "site.log")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w, closeFn, err := Setup(path)
	require.NoError(t, err)

	log.Printf("[INFO] hello from the log")
	_, err = w.Write([]byte("echo line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello from the log")
	assert.Contains(t, string(data), "echo line")
}

func TestSetupWithoutFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w, closeFn, err := Setup("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closeFn())
}
