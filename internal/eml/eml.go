// Package eml extracts plain text from RFC 5322 email files. It is the
// email-to-text boundary of the pipeline: one .eml in, one whitespace-tidied
// text blob out.
package eml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/jhillyerd/enmime"
)

// Load reads an .eml file and returns its extracted text. An email with no
// extractable text returns "" with a nil error; only I/O and MIME structure
// problems are errors.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open email %s: %w", path, err)
	}
	defer f.Close()

	text, err := FromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse email %s: %w", path, err)
	}
	return text, nil
}

// FromReader extracts text from a raw email stream. Plain text parts are
// used as-is; HTML parts are down-converted. All parts are concatenated,
// each line right-trimmed, and the whole result trimmed.
func FromReader(r io.Reader) (string, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return "", fmt.Errorf("failed to read MIME envelope: %w", err)
	}

	var parts []string
	if t := strings.TrimSpace(env.Text); t != "" {
		parts = append(parts, env.Text)
	}
	if env.HTML != "" {
		if t, err := html2text.FromString(env.HTML); err == nil && strings.TrimSpace(t) != "" {
			parts = append(parts, t)
		}
	}

	return tidy(strings.Join(parts, "\n")), nil
}

// tidy right-trims every line and trims the overall result.
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CollectSources resolves an input path to an ordered list of .eml files.
// A directory yields its *.eml entries sorted by name; a single .eml file
// yields itself. Anything else is an error, as is a directory with no .eml
// files.
func CollectSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path %s: %w", path, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory %s: %w", path, err)
		}
		var sources []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".eml") {
				sources = append(sources, filepath.Join(path, e.Name()))
			}
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("no .eml files found in %s", path)
		}
		sort.Strings(sources)
		return sources, nil
	}

	if !strings.EqualFold(filepath.Ext(path), ".eml") {
		return nil, fmt.Errorf("input must be an .eml file or a directory containing .eml files: %s", path)
	}
	return []string{path}, nil
}
