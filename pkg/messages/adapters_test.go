package messages_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validations/pkg/messages"
)

const yamlCatalog = `
en:
  validations:
    invalid: "%{attribute} is invalid"
`

const jsonCatalog = `{"en": {"validations": {"blank": "%{attribute} can't be blank"}}, "de": {"validations": {"invalid": "%{attribute} ist ungültig"}}}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestFileAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("yaml file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.yaml", yamlCatalog)
		data, err := messages.FileAdapter{Path: p}.Load(ctx)
		require.NoError(t, err)
		require.Contains(t, data, "en")
		assert.Contains(t, data["en"], "validations")
	})

	t.Run("json file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "all.json", jsonCatalog)
		data, err := messages.FileAdapter{Path: p}.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, data, 2)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.txt", "x")
		_, err := messages.FileAdapter{Path: p}.Load(ctx)
		assert.ErrorIs(t, err, messages.ErrUnsupportedFileType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := messages.FileAdapter{Path: filepath.Join(t.TempDir(), "none.yml")}.Load(ctx)
		assert.ErrorIs(t, err, messages.ErrFailedToReadFile)
	})

	t.Run("empty file", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.yml", "")
		_, err := messages.FileAdapter{Path: p}.Load(ctx)
		assert.ErrorIs(t, err, messages.ErrEmptyFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "en.yaml", yamlCatalog)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := messages.FileAdapter{Path: p}.Load(cctx)
		assert.ErrorIs(t, err, messages.ErrLoadingCancelled)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("merges supported files on disk", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", yamlCatalog)
		writeFile(t, dir, "b.json", jsonCatalog)
		writeFile(t, dir, "README.md", "ignored")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

		c, err := messages.NewCatalog(ctx, messages.NewDirectoryAdapter(dir))
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, c.Locales())
		assert.True(t, c.Has("en", "validations.invalid"))
		assert.True(t, c.Has("en", "validations.blank"))
	})

	t.Run("reads from fs.FS", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/en.yml": {Data: []byte(yamlCatalog)},
		}
		data, err := messages.DirectoryAdapter{FS: fsys, Dir: "locales"}.Load(ctx)
		require.NoError(t, err)
		assert.Contains(t, data, "en")
	})

	t.Run("no catalog files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "notes.txt", "x")
		_, err := messages.NewDirectoryAdapter(dir).Load(ctx)
		assert.ErrorIs(t, err, messages.ErrNoCatalogFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := messages.NewDirectoryAdapter(filepath.Join(t.TempDir(), "missing")).Load(ctx)
		assert.ErrorIs(t, err, messages.ErrFailedToReadDir)
	})

	t.Run("broken file fails the load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.yaml", "en: [unclosed")
		_, err := messages.NewDirectoryAdapter(dir).Load(ctx)
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})
}
