package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# viewer overrides
VIEWER_TEST_ASSET="models/a b.glb"
export VIEWER_TEST_DEBUG=true
VIEWER_TEST_KEPT=from-file
=novalue
broken line
`), 0644))
	t.Setenv("VIEWER_TEST_KEPT", "from-env")
	t.Setenv("VIEWER_TEST_ASSET", "")
	os.Unsetenv("VIEWER_TEST_ASSET")
	t.Setenv("VIEWER_TEST_DEBUG", "")
	os.Unsetenv("VIEWER_TEST_DEBUG")

	set, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"VIEWER_TEST_ASSET", "VIEWER_TEST_DEBUG"}, set)
	assert.Equal(t, "models/a b.glb", os.Getenv("VIEWER_TEST_ASSET"))
	assert.Equal(t, "true", os.Getenv("VIEWER_TEST_DEBUG"))
	assert.Equal(t, "from-env", os.Getenv("VIEWER_TEST_KEPT"))
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}
