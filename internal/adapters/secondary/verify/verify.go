// Package verify re-parses generated decks to prove they are valid
// Slidev input: well-formed frontmatter, sections that parse as
// markdown, and no stray unescaped angle brackets in visible text.
package verify

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// Report summarizes one verified deck.
type Report struct {
	// Frontmatter is the decoded metadata block.
	Frontmatter map[string]interface{}

	// Sections is the number of slide sections after the frontmatter.
	Sections int

	// Images counts img references across all sections.
	Images int

	// Excerpts holds a plain-text preview per section, tags stripped.
	Excerpts []string

	// Problems lists anything that would break playback.
	Problems []string
}

// knownComponents are Slidev/Vue elements the converter emits on
// purpose; their brackets are fine.
var knownComponents = regexp.MustCompile(`</?(?:v-clicks|v-click|div|span|img|carbon:[\w-]+)\b[^>]*/?>`)

var imgTag = regexp.MustCompile(`<img\s`)

// Verifier checks generated decks.
type Verifier struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewVerifier creates a deck verifier.
func NewVerifier() *Verifier {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Verifier{
		md:        md,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Verify parses a generated deck document and reports on it. A non-nil
// error means the document is not a deck at all; structural defects in
// an otherwise parseable deck land in Report.Problems.
func (v *Verifier) Verify(content []byte) (*Report, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	report := &Report{Frontmatter: fm}

	for key := range fm {
		if key == "src" {
			report.Problems = append(report.Problems, "frontmatter carries the reserved src inclusion key")
		}
	}

	sections := splitSections(body)
	report.Sections = len(sections)

	for i, section := range sections {
		var buf bytes.Buffer
		if err := v.md.Convert(section, &buf); err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("section %d does not parse as markdown: %v", i+1, err))
			continue
		}

		report.Images += len(imgTag.FindAll(section, -1))
		report.Excerpts = append(report.Excerpts, excerpt(v.sanitizer.Sanitize(buf.String())))

		for _, problem := range scanBrackets(section, i+1) {
			report.Problems = append(report.Problems, problem)
		}
	}

	return report, nil
}

// splitFrontmatter decodes and removes the leading metadata block.
func splitFrontmatter(content []byte) (map[string]interface{}, []byte, error) {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, nil, fmt.Errorf("deck has no frontmatter block")
	}

	rest := content[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, nil, fmt.Errorf("frontmatter block is not closed")
	}

	var fm map[string]interface{}
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	return fm, rest[end+len("\n---\n"):], nil
}

// splitSections splits the body on the Slidev separator token.
func splitSections(body []byte) [][]byte {
	return bytes.Split(body, []byte("\n---\n"))
}

// scanBrackets flags raw angle brackets that are neither entity-escaped
// text nor deliberate component markup. HTML comments (note blocks and
// remediation placeholders) are stripped before scanning.
func scanBrackets(section []byte, index int) []string {
	text := string(section)
	text = stripComments(text)
	text = knownComponents.ReplaceAllString(text, "")

	var problems []string
	if strings.ContainsAny(text, "<>") {
		problems = append(problems, fmt.Sprintf("section %d contains unescaped angle brackets", index))
	}
	return problems
}

var commentBlock = regexp.MustCompile(`(?s)<!--.*?-->`)

func stripComments(text string) string {
	return commentBlock.ReplaceAllString(text, "")
}

// excerpt trims a sanitized section render down to a one-line preview.
func excerpt(text string) string {
	const max = 80
	line := strings.Join(strings.Fields(text), " ")
	if len(line) > max {
		line = line[:max] + "..."
	}
	return line
}
