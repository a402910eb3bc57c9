package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetLog(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
		log.SetPrefix("")
	})
}

func TestSetup_DisabledByDefault(t *testing.T) {
	resetLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := Setup(dir, "vec2term", false)
	require.NoError(t, err)
	require.Nil(t, f)
	require.Equal(t, io.Discard, log.Writer())

	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err), "no directory is created when disabled")
}

func TestSetup_EnabledWithDebug(t *testing.T) {
	resetLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := Setup(dir, "vec2view", true)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	require.NotEqual(t, os.Stdout, log.Writer())
	require.NotEqual(t, os.Stderr, log.Writer())

	log.Println("follower reached target")

	info, err := os.Stat(filepath.Join(dir, "vec2view.log"))
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestSetup_Rotation(t *testing.T) {
	resetLog(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "vec2view.log")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxSize+1), 0644))

	f, err := Setup(dir, "vec2view", true)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Less(t, info.Size(), int64(MaxSize))
}

func TestSetup_SmallLogIsKept(t *testing.T) {
	resetLog(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "vec2term.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0644))

	f, err := Setup(dir, "vec2term", true)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSetup_BadDirectory(t *testing.T) {
	resetLog(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := Setup(filepath.Join(blocker, "logs"), "vec2view", true)
	require.ErrorContains(t, err, "create log directory")
}
