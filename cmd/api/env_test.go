package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	path, err := loadDotEnv()
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("APP_ENV=production\nGPA_TEST_ONLY_VAR=from-file\n"), 0o600))

	t.Setenv("ENV_FILE", file)
	t.Setenv("APP_ENV", "development")
	t.Cleanup(func() { _ = os.Unsetenv("GPA_TEST_ONLY_VAR") })

	path, err := loadDotEnv()
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, "development", os.Getenv("APP_ENV"))
	assert.Equal(t, "from-file", os.Getenv("GPA_TEST_ONLY_VAR"))
}

func TestLoadDotEnvReportsMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(file, []byte("BAD-KEY=1\n"), 0o600))
	t.Setenv("ENV_FILE", file)

	_, err := loadDotEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load "+file)
}
