package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlerRunsAsmProgramToCompletion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Add.asm")
	require.NoError(t, os.WriteFile(path, []byte("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"), 0644))

	code := Handler([]string{path}, map[string]string{"steps": "6"})
	require.Equal(t, 0, code)
}

func TestHandlerRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Add.txt")
	require.NoError(t, os.WriteFile(path, []byte("nonsense"), 0644))

	code := Handler([]string{path}, map[string]string{})
	require.Equal(t, -1, code)
}

func TestHandlerReportsOutOfBoundsFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Loop.hack")
	require.NoError(t, os.WriteFile(path, []byte("0000000000000000\n"), 0644))

	code := Handler([]string{path}, map[string]string{"steps": "40000"})
	require.Equal(t, -1, code)
}
