package render

import (
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/termtarot/internal/card"
)

// CardDetail writes every field of a card, wrapping long text to width
func CardDetail(out io.Writer, c *card.Card, deckName string, width int) error {
	w := &errWriter{w: out}

	label := func(name string) string {
		return colorize.CyanString("%-9s", name+":")
	}

	w.println("")
	w.println(label("Card") + colorize.HiWhiteString("%s", c.Name))
	w.println(label("Deck") + colorize.HiWhiteString("%s", deckName))
	w.println(label("Suit") + colorize.HiWhiteString("%s", c.Suit))
	w.println(label("Rank") + colorize.HiWhiteString("%d", c.Rank))

	if len(c.Keywords) > 0 {
		w.println(label("Keywords") + strings.Join(c.Keywords, ", "))
	}

	writeSection(w, "Fortune telling", c.FortuneTelling, NoFortune, width)
	writeSection(w, "Light", c.Meanings.Light, NoLight, width)
	writeSection(w, "Shadow", c.Meanings.Shadow, NoShadow, width)
	w.println("")

	return w.err
}

func writeSection(w *errWriter, title string, variants []string, fallback string, width int) {
	w.println("")
	w.println(colorize.CyanString(title + ":"))

	if len(variants) == 0 {
		w.println("  " + fallback)
		return
	}

	for _, v := range variants {
		for i, line := range wrapText(v, width-4) {
			prefix := "    "
			if i == 0 {
				prefix = "  • "
			}
			w.println(prefix + line)
		}
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
