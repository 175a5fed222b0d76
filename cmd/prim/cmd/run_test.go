/*
File    : prim/cmd/prim/cmd/run_test.go
*/
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFile_HelloWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.prim")
	assert.NoError(t, os.WriteFile(path, []byte(`print("hello")`), 0o644))

	err := runFile(nil, []string{path})
	assert.NoError(t, err)
}

func TestRunFile_MissingFileFails(t *testing.T) {
	err := runFile(nil, []string{filepath.Join(t.TempDir(), "missing.prim")})
	assert.Error(t, err)
}

func TestRunFile_RuntimeErrorFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.prim")
	assert.NoError(t, os.WriteFile(path, []byte(`x := 1; x := "a"`), 0o644))

	err := runFile(nil, []string{path})
	assert.Error(t, err)
}
