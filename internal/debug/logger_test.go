package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDisabledByDefault(t *testing.T) {
	Enable("")
	t.Setenv("SEQUEL_DEBUG_LOG", "")

	assert.Equal(t, "", activeLogPath())
}

func TestLoggingViaEnvironment(t *testing.T) {
	Enable("")
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("SEQUEL_DEBUG_LOG", path)

	LogToFilef("window size %dx%d\n", 80, 24)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "window size 80x24\n", string(data))
}

func TestLoggingViaEnable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	Enable(path)
	t.Cleanup(func() { Enable("") })

	LogToFile("refresh requested\n")
	LogToFileWithTimestamp("done\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refresh requested")
	assert.Contains(t, string(data), "done")
}

func TestEnvToggleValuesTreatedAsDisabled(t *testing.T) {
	Enable("")
	for _, value := range []string{"0", "false"} {
		t.Setenv("SEQUEL_DEBUG_LOG", value)
		assert.Equal(t, "", activeLogPath())
	}
}

func TestBareEnvValueFallsBackToTempDir(t *testing.T) {
	Enable("")
	t.Setenv("SEQUEL_DEBUG_LOG", "1")

	assert.Equal(t, filepath.Join(os.TempDir(), "sequel_debug.log"), activeLogPath())
}
