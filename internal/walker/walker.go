package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// FileInfo holds metadata about a discovered document.
type FileInfo struct {
	Path string // absolute path
	Name string // base name, used as the document's source name
	Ext  string // extension without dot, lowercase
	Size int64
}

// List returns the files directly inside dir whose extension matches one of
// exts (without dot, case-sensitive). Files are grouped in the order exts are
// given and sorted by name within each group. Subdirectories are not
// descended into. Dotfiles are listed, and so are symlinks unless they point
// at a directory; a dangling link is listed so its read fails and the caller
// skips it.
func List(dir string, exts ...string) ([]FileInfo, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("read document dir: %w", err)
	}

	groups := make(map[string][]FileInfo, len(exts))
	for _, e := range entries {
		ext := strings.TrimPrefix(filepath.Ext(e.Name()), ".")
		if !slices.Contains(exts, ext) {
			continue
		}
		path := filepath.Join(absDir, e.Name())
		size, ok := fileSize(path, e)
		if !ok {
			continue
		}
		groups[ext] = append(groups[ext], FileInfo{
			Path: path,
			Name: e.Name(),
			Ext:  strings.ToLower(ext),
			Size: size,
		})
	}

	var files []FileInfo
	for _, ext := range exts {
		g := groups[ext]
		sort.Slice(g, func(i, j int) bool { return g[i].Name < g[j].Name })
		files = append(files, g...)
	}
	return files, nil
}

// fileSize reports the size of a listable entry. Regular files and links to
// regular files are listable; directories and other special files are not.
func fileSize(path string, e os.DirEntry) (int64, bool) {
	switch {
	case e.Type().IsRegular():
		info, err := e.Info()
		if err != nil {
			return 0, false // removed between ReadDir and Info
		}
		return info.Size(), true
	case e.Type()&os.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return 0, true
		}
		if !info.Mode().IsRegular() {
			return 0, false
		}
		return info.Size(), true
	}
	return 0, false
}

// Matches reports whether name has one of the given extensions.
func Matches(name string, exts ...string) bool {
	return slices.Contains(exts, strings.TrimPrefix(filepath.Ext(name), "."))
}
