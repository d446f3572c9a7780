package discovery

import (
	"path/filepath"
	"strings"
)

// ClassifyFile determines the file type from its extension (case-insensitive)
func ClassifyFile(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".c":
		return FileTypeSource
	case ".h":
		return FileTypeHeader
	default:
		return FileTypeOther
	}
}

// IsCFile returns true for C sources and headers
func IsCFile(filename string) bool {
	return ClassifyFile(filename) != FileTypeOther
}

// isHiddenDir reports directories skipped during the walk (.git, .clex, ...)
func isHiddenDir(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}
