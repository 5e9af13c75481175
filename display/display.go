// Package display renders message records and ID lists for the console.
package display

import (
	"fmt"
	"strings"

	"github.com/bassamadnan/gmailfetch/gmail"
)

const (
	emptyBody  = "[Empty body]"
	noMessages = "No messages found."
)

// FormatRecord renders rec as a ruled, labelled block.
func FormatRecord(rec *gmail.EmailRecord) string {
	heavy := RuleStyle.Render(strings.Repeat(HeavyRule, RuleWidth))
	light := RuleStyle.Render(strings.Repeat(LightRule, RuleWidth))

	var b strings.Builder
	b.WriteString("\n" + heavy + "\n")
	writeField(&b, "Message ID:", rec.ID, 11)
	writeField(&b, "Thread ID:", rec.ThreadID, 11)
	b.WriteString(heavy + "\n")
	writeField(&b, "From:", rec.From, 8)
	writeField(&b, "To:", rec.To, 8)
	writeField(&b, "Date:", rec.Date, 8)
	writeField(&b, "Subject:", rec.Subject, 8)
	b.WriteString(light + "\n")
	b.WriteString(SectionStyle.Render("Body:") + "\n")
	if rec.Body == "" {
		b.WriteString(PlaceholderStyle.Render(emptyBody))
	} else {
		b.WriteString(rec.Body)
	}
	b.WriteString("\n" + heavy + "\n")
	return b.String()
}

// writeField writes "key value" with the key left-aligned in width columns.
func writeField(b *strings.Builder, key, value string, width int) {
	fmt.Fprintf(b, "%s %s\n", HeaderKeyStyle.Render(fmt.Sprintf("%-*s", width, key)), HeaderValStyle.Render(value))
}

// FormatIDs renders a count line followed by one bullet per ID.
func FormatIDs(ids []string) string {
	if len(ids) == 0 {
		return noMessages + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d message(s):\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(&b, "  %s %s\n", BulletStyle.Render("-"), id)
	}
	return b.String()
}
