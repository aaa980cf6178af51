package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// Adapter loads a catalog from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter map[string]map[string]any

// Load returns the map as is.
func (a MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return map[string]map[string]any{}, nil
	}
	return a, nil
}

// FileAdapter loads a single catalog file, choosing the parser by extension.
type FileAdapter struct {
	Path string
}

// Load reads and parses the file, picking the parser by extension.
func (a FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	parser := ParserForFile(a.Path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, a.Path)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseContent(ctx, parser, a.Path, content)
}

// DirectoryAdapter merges every supported file at the top level of a
// directory. Use os.DirFS for disk directories or an embed.FS for bundled
// catalogs. Nested keys are merged; on conflict the file read later wins.
type DirectoryAdapter struct {
	FS  fs.FS
	Dir string
}

// NewDirectoryAdapter reads catalogs from a directory on disk.
func NewDirectoryAdapter(dir string) DirectoryAdapter {
	return DirectoryAdapter{FS: os.DirFS(dir), Dir: "."}
}

// Load merges every supported file in Dir. Files with other extensions are skipped.
func (a DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	dir := a.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(a.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalog, err := parseContent(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}
		for locale, msgs := range catalog {
			if all[locale] == nil {
				all[locale] = make(map[string]any, len(msgs))
			}
			merge(all[locale], msgs)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, dir)
	}
	return all, nil
}

// merge copies src into dst, descending into maps present on both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcOK := asStringMap(v)
		dstMap, dstOK := asStringMap(dst[k])
		if srcOK && dstOK {
			merged := maps.Clone(dstMap)
			merge(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}
	catalog, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return catalog, nil
}
