package notes

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/lerenn/project-init/pkg/answers"
)

// Parse reads the notes at path.
//
// A line "## <Header>" opens a section when the header, case-insensitively, is a known
// one, and closes the current section otherwise. Inside a known section, non-blank lines
// not starting with "[" (template placeholders) or "#" are kept, trimmed, and joined with
// newlines.
func (p *realParser) Parse(path string) (answers.Answers, error) {
	p.logger.Debugf("Attempting to parse notes file: %s", path)

	exists, err := p.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !exists {
		p.logger.Errorf("Notes file not found at %s", path)
		return nil, fmt.Errorf("%w: %s", ErrNotesNotFound, path)
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	result, err := parseContent(content)
	if err != nil {
		p.logger.Errorf("Failed to parse notes file %s: %v", path, err)
		return nil, err
	}

	p.logger.Infof("Successfully parsed notes file: %s", path)
	return result, nil
}

func parseContent(content []byte) (answers.Answers, error) {
	sections := make(map[string][]string, len(headerToKey))
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "## "):
			current = headerToKey[strings.ToLower(strings.TrimSpace(line[3:]))]
		case current == "" || line == "":
		case strings.HasPrefix(line, "[") || strings.HasPrefix(line, "#"):
		default:
			sections[current] = append(sections[current], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	result := make(answers.Answers, len(headerToKey))
	for _, key := range headerToKey {
		result[key] = strings.TrimSpace(strings.Join(sections[key], "\n"))
	}
	if result.Empty() {
		return nil, ErrNoContent
	}
	return result, nil
}
