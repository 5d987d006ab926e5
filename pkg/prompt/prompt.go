package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// FileChoice is an entry of the notes file selector.
type FileChoice struct {
	Path   string
	Name   string
	Detail string // optional, e.g. the modification time
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForText asks question and returns the trimmed answer, or defaultValue when
	// the answer is blank.
	PromptForText(question, defaultValue string) (string, error)

	// PromptSelectFile lets the user pick one of files.
	PromptSelectFile(files []FileChoice) (FileChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompt creates a new Prompt instance reading stdin and writing stdout.
func NewPrompt() Prompter {
	return NewPromptWithIO(os.Stdin, os.Stdout)
}

// NewPromptWithIO creates a new Prompt instance on the given streams.
func NewPromptWithIO(in io.Reader, out io.Writer) Prompter {
	return &realPrompt{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// PromptForText asks question and returns the trimmed answer.
func (p *realPrompt) PromptForText(question, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [default: %s]: ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s ", question)
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// PromptSelectFile lets the user pick one of files with a Bubble Tea selector.
func (p *realPrompt) PromptSelectFile(files []FileChoice) (FileChoice, error) {
	if len(files) == 0 {
		return FileChoice{}, ErrNoChoices
	}
	return promptSelectFileBubbleTea(files)
}

// readLine reads one line. A last line without newline is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
