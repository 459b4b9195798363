// ABOUTME: HTML rendering of diff segments
// ABOUTME: Escapes all markup-significant characters before highlighting

package diff

import "strings"

const (
	deleteSpanOpen = `<span class="diff-delete" style="background:#ffcccc;text-decoration:line-through;">`
	insertSpanOpen = `<span class="diff-insert" style="background:#ccffcc;">`
	spanClose      = `</span>`
)

// Escapes &, <, >, ", ', and turns newlines into explicit breaks.
// Single-pass, so already-escaped output is never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "<br>",
)

// RenderHTML turns segments into an escaped, highlighted markup string.
// Equal runs are emitted verbatim (escaped), deletions as strikethrough
// spans, insertions as added spans, and replacements as a delete span
// immediately followed by an insert span.
func RenderHTML(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case Equal:
			sb.WriteString(htmlEscaper.Replace(seg.Original))
		case Delete:
			writeDeleteSpan(&sb, seg.Original)
		case Insert:
			writeInsertSpan(&sb, seg.Modified)
		case Replace:
			writeDeleteSpan(&sb, seg.Original)
			writeInsertSpan(&sb, seg.Modified)
		}
	}
	return sb.String()
}

func writeDeleteSpan(sb *strings.Builder, text string) {
	sb.WriteString(deleteSpanOpen)
	sb.WriteString(htmlEscaper.Replace(text))
	sb.WriteString(spanClose)
}

func writeInsertSpan(sb *strings.Builder, text string) {
	sb.WriteString(insertSpanOpen)
	sb.WriteString(htmlEscaper.Replace(text))
	sb.WriteString(spanClose)
}
