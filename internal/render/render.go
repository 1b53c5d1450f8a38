// Package render turns a per-reader selection into the digest documents
// handed to delivery: Markdown, a standalone HTML page, and an email
// payload.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"newsbrief/internal/news"
	"newsbrief/internal/reader"
	"newsbrief/internal/relevance"
)

const dateLayout = "January 2, 2006"

// Markdown builds the personalized digest in Markdown: a lead "Top Stories"
// section, one section per category (skipping documents already shown in
// the lead), and a preferences footer.
func Markdown(profile *reader.Profile, sel relevance.Selection, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s's Personalized Newsletter\n", profile.Name)
	fmt.Fprintf(&b, "### %s\n\n", now.Format(dateLayout))

	b.WriteString("## Today's Top Stories\n\n")
	inTop := make(map[string]bool, len(sel.TopStories))
	for _, doc := range sel.TopStories {
		inTop[doc.ID] = true
		fmt.Fprintf(&b, "### [%s](%s)\n", doc.Title, doc.URL)
		if doc.Summary != "" {
			b.WriteString(doc.Summary + "\n")
		}
		fmt.Fprintf(&b, "*Source: %s*\n\n", doc.Source)
	}

	b.WriteString("---\n\n")

	for _, section := range sel.Sections {
		rest := make([]*news.Document, 0, len(section.Documents))
		for _, doc := range section.Documents {
			if !inTop[doc.ID] {
				rest = append(rest, doc)
			}
		}
		if len(rest) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", capitalize(section.Category))
		for _, doc := range rest {
			fmt.Fprintf(&b, "### [%s](%s)\n", doc.Title, doc.URL)
			if doc.Author != "" {
				fmt.Fprintf(&b, "*By %s*\n", doc.Author)
			}
			if doc.Summary != "" {
				b.WriteString(doc.Summary + "\n")
			}
			fmt.Fprintf(&b, "*Source: %s | %s*\n\n", doc.Source, doc.Published.Format(dateLayout))
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("## Your Newsletter Preferences\n\n")
	b.WriteString("Your newsletter is customized based on your interests:\n\n")
	fmt.Fprintf(&b, "**Interests:** %s\n\n", strings.Join(profile.Interests, ", "))
	fmt.Fprintf(&b, "**Preferred Sources:** %s\n\n", strings.Join(profile.PreferredSources, ", "))
	b.WriteString("*To update your preferences or unsubscribe, click [here](#).*\n")

	return b.String()
}

// HTML converts digest Markdown into a standalone HTML page.
func HTML(title, markdown string) string {
	body := blackfriday.Run([]byte(markdown))
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; margin: 0 auto; max-width: 800px; padding: 20px; }
        h1, h2, h3 { color: #333; }
        a { color: #0066cc; text-decoration: none; }
        a:hover { text-decoration: underline; }
        hr { border: 0; border-top: 1px solid #ddd; margin: 20px 0; }
        .source { color: #666; font-style: italic; font-size: 0.9em; }
    </style>
</head>
<body>
%s</body>
</html>`, title, body)
}

// Email is a prepared digest delivery for a mail transport.
type Email struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	BodyText string `json:"body_text"`
	BodyHTML string `json:"body_html"`
	ReaderID string `json:"user_id"`
}

// PrepareEmail wraps the rendered digest into an email payload. Actual
// sending belongs to an external transport.
func PrepareEmail(profile *reader.Profile, markdown string, now time.Time) Email {
	return Email{
		To:       profile.Email,
		From:     "newsletter@example.com",
		Subject:  fmt.Sprintf("Your Personalized Newsletter - %s", now.Format(dateLayout)),
		BodyText: markdown,
		BodyHTML: string(blackfriday.Run([]byte(markdown))),
		ReaderID: profile.ID,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
