package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Discover finds all C files under rootPath. When rootPath names a single
// file it is returned as is, whatever its extension.
func Discover(rootPath string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			Type:         ClassifyFile(absRoot),
			ModTime:      info.ModTime(),
			Size:         info.Size(),
		}}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != absRoot && isHiddenDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		fileType := ClassifyFile(d.Name())
		if fileType == FileTypeOther {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			Type:         fileType,
			ModTime:      info.ModTime(),
			Size:         info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})

	return files, nil
}

// DiscoverAll runs Discover for each path and merges the results, dropping
// files reached through more than one path. Order follows the arguments.
// With more than one path every RelativePath is prefixed with the argument
// it was found under, so equal names below different roots stay apart.
func DiscoverAll(paths []string) ([]DiscoveredFile, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var all []DiscoveredFile
	seen := make(map[string]bool)
	names := make(map[string]bool)

	for _, p := range paths {
		files, err := Discover(p)
		if err != nil {
			return nil, err
		}

		absRoot, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}

		for _, f := range files {
			if seen[f.Path] {
				continue
			}
			if len(paths) > 1 {
				if f.Path == absRoot {
					f.RelativePath = filepath.Clean(p)
				} else {
					f.RelativePath = filepath.Join(filepath.Clean(p), f.RelativePath)
				}
			}
			// Overlapping roots can still produce the same name
			if names[f.RelativePath] {
				f.RelativePath = f.Path
			}
			all = append(all, f)
			seen[f.Path] = true
			names[f.RelativePath] = true
		}
	}

	return all, nil
}

// FilterByType keeps only files of the given type
func FilterByType(files []DiscoveredFile, fileType FileType) []DiscoveredFile {
	var out []DiscoveredFile
	for _, f := range files {
		if f.Type == fileType {
			out = append(out, f)
		}
	}
	return out
}
