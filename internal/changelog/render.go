package changelog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output format for a changelog.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatMarkdown, FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s (supported: markdown, text, json, yaml)", s)
}

const degradedSuffix = " (no distinct source)"

// Render writes cl to w. Markdown and text use the commit subject, JSON and YAML
// carry the full message.
func Render(w io.Writer, cl *Changelog, format Format) error {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(w, cl)
	case FormatText:
		return renderText(w, cl)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cl)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cl); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderMarkdown(w io.Writer, cl *Changelog) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## Changes in [#%d](%s)\n\n", cl.Integration.Number, cl.Integration.URL)
	if len(cl.Entries) == 0 {
		b.WriteString("No commits.\n")
	}
	for _, e := range cl.Entries {
		author := e.AuthorLogin
		if e.AuthorURL != "" {
			author = fmt.Sprintf("[%s](%s)", e.AuthorLogin, e.AuthorURL)
		}
		fmt.Fprintf(&b, "- %s commits %s in %s", author, e.Subject(), e.SourcePullRequestURL)
		if e.Degraded() {
			b.WriteString(degradedSuffix)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderText(w io.Writer, cl *Changelog) error {
	var b strings.Builder
	for _, e := range cl.Entries {
		b.WriteString(e.String())
		if e.Degraded() {
			b.WriteString(degradedSuffix)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
