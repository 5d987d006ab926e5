package fs

import "time"

// FileInfo describes a file returned by ListFiles.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}
