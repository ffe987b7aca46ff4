// Package wordlist reads and writes plain-text candidate files, one candidate per line.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Error reports a wordlist that could not be read or written.
type Error struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "(stream)"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("wordlist %s: %s: %v", loc, e.Message, e.Cause)
	}
	return fmt.Sprintf("wordlist %s: %s", loc, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Write streams candidates to w, one per line, and returns how many were written.
// A candidate containing a line break cannot be represented and is rejected.
func Write(w io.Writer, candidates iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for c := range candidates {
		if strings.ContainsAny(c, "\r\n") {
			return n, &Error{Line: n + 1, Message: fmt.Sprintf("candidate %q contains a line break", c)}
		}
		if _, err := bw.WriteString(c); err != nil {
			return n, &Error{Line: n + 1, Message: "write failed", Cause: err}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, &Error{Line: n + 1, Message: "write failed", Cause: err}
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, &Error{Message: "flush failed", Cause: err}
	}
	return n, nil
}

// WriteFile writes candidates to path, replacing any existing file.
func WriteFile(path string, candidates iter.Seq[string]) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, &Error{Path: path, Message: "failed to create file", Cause: err}
	}

	n, err := Write(f, candidates)
	if err != nil {
		_ = f.Close()
		if we, ok := err.(*Error); ok {
			we.Path = path
		}
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, &Error{Path: path, Message: "failed to close file", Cause: err}
	}
	return n, nil
}

// Read returns the trimmed, non-empty lines of r.
func Read(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Line: len(words) + 1, Message: "read failed", Cause: err}
	}
	return words, nil
}

// ReadFile reads the wordlist at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	words, err := Read(f)
	if err != nil {
		if we, ok := err.(*Error); ok {
			we.Path = path
		}
		return nil, err
	}
	return words, nil
}

// CountLines counts the non-empty lines of the wordlist at path.
func CountLines(path string) (int, error) {
	words, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}
