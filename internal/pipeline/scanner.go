package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered still-image frame to analyze.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the scan root.
	RelPath string
	// Key identifies the frame in the report (relpath without extension).
	Key string
	// Format is the source format (png, jpeg, webp, gif, bmp, tiff).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized still-image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanSources resolves an input path into frame sources. A single file is
// returned as one source; a directory is walked recursively, skipping
// hidden directories.
func ScanSources(input string) ([]Source, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}

	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(input))
		if !imageExtensions[ext] {
			return nil, fmt.Errorf("unsupported image format: %s", input)
		}
		base := filepath.Base(input)
		return []Source{{
			AbsPath: input,
			RelPath: base,
			Key:     strings.TrimSuffix(base, ext),
			Format:  normalizeFormat(ext),
			Size:    info.Size(),
		}}, nil
	}

	var sources []Source
	err = filepath.Walk(input, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if strings.HasPrefix(fi.Name(), ".") && fi.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: relPath,
			Key:     strings.TrimSuffix(relPath, ext),
			Format:  normalizeFormat(ext),
			Size:    fi.Size(),
		})
		return nil
	})

	return sources, err
}

func normalizeFormat(ext string) string {
	f := strings.TrimPrefix(ext, ".")
	switch f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return f
}
