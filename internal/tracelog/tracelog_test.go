package tracelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesAndAppends(t *testing.T) {
	t.Setenv("MERGEALIGN_LOG_FILE", filepath.Join(t.TempDir(), "mergealign.log"))

	Log("merged %d mappings", 2)
	Log("gap [%d,%d)", 3, 6)

	b, err := os.ReadFile(os.Getenv("MERGEALIGN_LOG_FILE"))
	require.NoError(t, err)
	require.Equal(t, "merged 2 mappings\ngap [3,6)\n", string(b))
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv("MERGEALIGN_LOG_FILE", "")
	Log("should not %s", "panic")
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MERGEALIGN_LOG_FILE", dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
