package fyneedit

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Named formats recognized by the editor. Inline formats wrap runs of text
// inside a block; block formats apply to a whole paragraph-level block.
const (
	FormatPlain       = "plain"
	FormatBold        = "bold"
	FormatItalic      = "italic"
	FormatCode        = "code"
	FormatPlaceholder = "placeholder"

	FormatParagraph  = "paragraph"
	FormatHeading    = "heading"
	FormatSubHeading = "subheading"
	FormatCodeBlock  = "codeblock"
	FormatBlockquote = "blockquote"
)

// placeholderStyle renders text in the theme's placeholder color, used for
// the "placeholder" named format (template markers inside the content, not
// the empty-document hint).
var placeholderStyle = widget.RichTextStyle{
	ColorName: theme.ColorNamePlaceHolder,
	Inline:    true,
	TextStyle: fyne.TextStyle{Italic: true},
}

// Style returns the rich text style for a named format. Unknown names fall
// back to the plain inline style.
func Style(name string) widget.RichTextStyle {
	switch name {
	case FormatBold:
		return widget.RichTextStyleStrong
	case FormatItalic:
		return widget.RichTextStyleEmphasis
	case FormatCode:
		return widget.RichTextStyleCodeInline
	case FormatPlaceholder:
		return placeholderStyle
	case FormatParagraph:
		return widget.RichTextStyleParagraph
	case FormatHeading:
		return widget.RichTextStyleHeading
	case FormatSubHeading:
		return widget.RichTextStyleSubHeading
	case FormatCodeBlock:
		return widget.RichTextStyleCodeBlock
	case FormatBlockquote:
		return widget.RichTextStyleBlockquote
	default:
		return widget.RichTextStyleInline
	}
}

// StyleName classifies a rich text style back to its format name. It inspects
// the style's shape rather than comparing against the named values, so styles
// produced by splitting or re-styling segments still classify correctly.
func StyleName(style widget.RichTextStyle) string {
	if !style.Inline {
		switch {
		case style.SizeName == theme.SizeNameHeadingText:
			return FormatHeading
		case style.SizeName == theme.SizeNameSubHeadingText:
			return FormatSubHeading
		case style.TextStyle.Monospace:
			return FormatCodeBlock
		case style.TextStyle.Italic:
			return FormatBlockquote
		default:
			return FormatParagraph
		}
	}
	switch {
	case style.ColorName == theme.ColorNamePlaceHolder:
		return FormatPlaceholder
	case style.TextStyle.Bold:
		return FormatBold
	case style.TextStyle.Monospace:
		return FormatCode
	case style.TextStyle.Italic:
		return FormatItalic
	default:
		return FormatPlain
	}
}
