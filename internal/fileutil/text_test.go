package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid utf-8 with bom", func(t *testing.T) {
		path := filepath.Join(dir, "bom.cs")
		content := "\ufeffusing System; // héllo\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		text, err := ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, content, text)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.js")
		require.NoError(t, os.WriteFile(path, []byte("caf\xe9"), 0o644))

		_, err := ReadText(path)
		assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadText(filepath.Join(dir, "missing.ts"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestWriteTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.xml")
	assert.ErrorIs(t, WriteText(path, "<x/>"), os.ErrNotExist)

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "missing file must not be created")
}

func TestWriteTextInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.config")
	hardLink := filepath.Join(dir, "app.link.config")
	require.NoError(t, os.WriteFile(path, []byte("<a><!-- x --></a>"), 0o644))
	if err := os.Link(path, hardLink); err != nil {
		t.Skipf("hard links not supported: %v", err)
	}

	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, WriteText(path, "<a></a>"))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after), "file was replaced instead of overwritten")

	data, err := os.ReadFile(hardLink)
	require.NoError(t, err)
	assert.Equal(t, "<a></a>", string(data))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteTextKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo # x\n"), 0o755))

	require.NoError(t, WriteText(path, "echo \n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestWriteTextThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.ts")
	link := filepath.Join(dir, "link.ts")
	require.NoError(t, os.WriteFile(target, []byte("a // b\n"), 0o644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	require.NoError(t, WriteText(link, "a \n"))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a \n", string(data))
}
