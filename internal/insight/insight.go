// Package insight produces the short reader-facing texts attached to a book detail.
// The output is template based and deterministic.
package insight

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// SummaryBudget is the maximum length, in runes, of a quick summary.
	SummaryBudget = 220
	// MaxIdealFor bounds the number of "ideal for" statements.
	MaxIdealFor = 3

	maxSummarySentences = 2
	ellipsis            = "…"

	fallbackSummary   = "No description is available for this work yet. Browse the editions and subjects below to get a feel for it."
	fallbackCompanion = "Keep a notebook nearby and jot down the ideas that stay with you as you read."
)

var readerArchetypes = []string{
	"Readers curious about %s",
	"Students and researchers exploring %s",
	"Book clubs looking for a conversation on %s",
}

// Summarize returns one or two leading sentences of text that fit SummaryBudget.
// When the first sentence alone is too long the text is cut at the budget and an
// ellipsis is appended.
func Summarize(text *string) string {
	if text == nil {
		return fallbackSummary
	}
	clean := strings.Join(strings.Fields(*text), " ")
	if clean == "" {
		return fallbackSummary
	}

	var b strings.Builder
	for i, sentence := range sentences(clean) {
		if i == maxSummarySentences {
			break
		}
		next := sentence
		if b.Len() > 0 {
			next = " " + sentence
		}
		if utf8.RuneCountInString(b.String()+next) > SummaryBudget {
			break
		}
		b.WriteString(next)
	}
	if b.Len() > 0 {
		return b.String()
	}

	runes := []rune(clean)
	return strings.TrimSpace(string(runes[:SummaryBudget])) + ellipsis
}

// IdealFor maps up to MaxIdealFor leading subjects onto reader archetypes. Without
// subjects a single generic statement is returned.
func IdealFor(subjects, authors []string) []string {
	if len(subjects) == 0 {
		if len(authors) > 0 {
			return []string{fmt.Sprintf("Readers who already enjoy the work of %s", authors[0])}
		}
		return []string{"Curious readers looking for their next discovery"}
	}

	n := min(len(subjects), MaxIdealFor)
	out := make([]string, 0, n)
	for i, subject := range subjects[:n] {
		out = append(out, fmt.Sprintf(readerArchetypes[i%len(readerArchetypes)], subject))
	}
	return out
}

// ReadingCompanion suggests one way to read the book alongside its themes.
func ReadingCompanion(subjects, authors []string) string {
	topic := strings.Join(subjects[:min(len(subjects), 2)], " and ")

	switch {
	case topic != "" && len(authors) > 0:
		return fmt.Sprintf("Pair this book with another title on %s and compare how %s approaches the theme.", topic, authors[0])
	case topic != "":
		return fmt.Sprintf("Pair this book with another title on %s and compare the two perspectives.", topic)
	case len(authors) > 0:
		return fmt.Sprintf("Follow up with another work by %s to see how the author's ideas develop.", authors[0])
	default:
		return fallbackCompanion
	}
}

// sentences splits on '.', '!' or '?' followed by whitespace or end of text. The
// terminator stays with its sentence.
func sentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i + utf8.RuneLen(r)
		if end < len(text) && text[end] != ' ' {
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			out = append(out, s)
		}
		start = end
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
