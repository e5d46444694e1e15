package source

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Dir serves schemas from a directory tree.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the directory the source reads from.
func (d *Dir) Root() string {
	return d.root
}

// Load reads the schema stored under ref.
func (d *Dir) Load(ctx context.Context, ref string) ([]byte, error) {
	clean, err := cleanRef(ref)
	if err != nil {
		return nil, err
	}
	for _, name := range candidates(clean) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, errNotFound(ref)
}

// List returns the slash-separated paths of every schema file under the
// root, sorted.
func (d *Dir) List(ctx context.Context) ([]string, error) {
	var refs []string
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			if p != d.root && entry.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasSchemaExt(entry.Name()) {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		refs = append(refs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(refs)
	return refs, nil
}
