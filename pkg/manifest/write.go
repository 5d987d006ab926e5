package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lerenn/project-init/pkg/answers"
)

// Write stores a as indented JSON, keys sorted, with a trailing newline.
func (w *realWriter) Write(outputDir, slug string, a answers.Answers) (string, error) {
	if slug == "" {
		return "", ErrSlugEmpty
	}
	if a == nil {
		a = answers.Answers{}
	}

	if exists, err := w.fs.Exists(outputDir); err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputPath, err)
	} else if exists {
		isDir, err := w.fs.IsDir(outputDir)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrOutputPath, err)
		}
		if !isDir {
			return "", fmt.Errorf("%w: %s is a file", ErrOutputPath, outputDir)
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(a); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncode, err)
	}

	path := filepath.Join(outputDir, slug+FileSuffix)
	if err := w.fs.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	w.logger.Infof("Project manifest saved to %s", path)
	return path, nil
}
