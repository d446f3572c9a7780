package discovery

import "time"

// DiscoveredFile represents a C file discovered during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	Type         FileType  // Source or Header
	ModTime      time.Time // Last modification time
	Size         int64     // Size in bytes
}

// FileType indicates what kind of C file was found
type FileType int

const (
	FileTypeSource FileType = iota // *.c
	FileTypeHeader                 // *.h
	FileTypeOther                  // anything else, never returned by Discover
)

// String returns a string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeSource:
		return "source"
	case FileTypeHeader:
		return "header"
	default:
		return "other"
	}
}
