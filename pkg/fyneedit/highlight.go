package fyneedit

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// highlightSegments returns a view copy of the document where every code
// block is replaced by syntax colored inline runs. The document itself is
// never modified; highlighting is a render concern.
func highlightSegments(doc []widget.RichTextSegment, language string) []widget.RichTextSegment {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	out := make([]widget.RichTextSegment, 0, len(doc))
	for _, seg := range doc {
		ts, ok := seg.(*widget.TextSegment)
		if !ok || StyleName(ts.Style) != FormatCodeBlock || ts.Text == "" {
			out = append(out, seg)
			continue
		}
		out = append(out, highlightBlock(lexer, ts.Text)...)
	}
	return out
}

// highlightBlock tokenizes one code block and renders it as colored
// monospace runs followed by a block terminator.
func highlightBlock(lexer chroma.Lexer, text string) []widget.RichTextSegment {
	fallback := []widget.RichTextSegment{
		&widget.TextSegment{Text: text, Style: widget.RichTextStyleCodeBlock},
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("Error tokenizing code block: %v", err)
		return fallback
	}

	var segments []widget.RichTextSegment
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := widget.RichTextStyle{
			Inline:    true,
			TextStyle: fyne.TextStyle{Monospace: true},
		}
		if name := tokenColorName(token.Type); name != "" {
			style.ColorName = fyne.ThemeColorName(name)
		}
		segments = append(segments, &widget.TextSegment{Text: token.Value, Style: style})
	}
	if len(segments) == 0 {
		return fallback
	}

	// Close the block so following content starts on a fresh line.
	segments = append(segments, &widget.TextSegment{Style: widget.RichTextStyleCodeBlock})
	return segments
}

// tokenColorName maps token types to Fyne theme color names
func tokenColorName(tokenType chroma.TokenType) string {
	switch {
	case tokenType.InCategory(chroma.Keyword):
		return "primary"
	case tokenType.InCategory(chroma.String):
		return "success"
	case tokenType.InCategory(chroma.Comment):
		return "disabled"
	case tokenType.InCategory(chroma.Number):
		return "warning"
	case tokenType.InCategory(chroma.Name):
		if tokenType == chroma.NameFunction {
			return "primary"
		}
		return ""
	case tokenType.InCategory(chroma.Error):
		return "error"
	default:
		return ""
	}
}
