package render

import (
	"fmt"
	"regexp"
	"time"
)

// timestampPattern matches the whole "Last Updated" line.
var timestampPattern = regexp.MustCompile(`\*\*Last Updated:\*\*.*`)

const timestampLayout = "January 2, 2006 15:04 MST"

// Document is a README's full text with named marker-delimited sections.
// All edits happen in memory; the caller writes the final text back in one go.
type Document struct {
	text string
}

// NewDocument wraps raw README text.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// ReplaceSection replaces everything between <!-- NAME_START --> and
// <!-- NAME_END --> with fragment, keeping both markers in place. The match
// between the markers is non-greedy. Missing markers are an error.
func (d *Document) ReplaceSection(name, fragment string) error {
	start := fmt.Sprintf("<!-- %s_START -->", name)
	end := fmt.Sprintf("<!-- %s_END -->", name)
	pattern := regexp.MustCompile(regexp.QuoteMeta(start) + `(?s).*?` + regexp.QuoteMeta(end))
	if !pattern.MatchString(d.text) {
		return fmt.Errorf("markers %s / %s not found in document", start, end)
	}
	d.text = pattern.ReplaceAllLiteralString(d.text, start+"\n"+fragment+end)
	return nil
}

// Touch rewrites the "Last Updated" line with now, rendered in UTC.
// A document without such a line is left unchanged.
func (d *Document) Touch(now time.Time) {
	d.text = timestampPattern.ReplaceAllLiteralString(d.text, "**Last Updated:** "+now.UTC().Format(timestampLayout))
}

// String returns the document's full text.
func (d *Document) String() string {
	return d.text
}
