package telegram

import (
	"fmt"
	"strings"

	// Packages
	gte "github.com/igor-pavlenko/goldmark-telegram/extension"
	gteast "github.com/igor-pavlenko/goldmark-telegram/extension/ast"
	goldmark "github.com/yuin/goldmark"
	ast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	text "github.com/yuin/goldmark/text"
	tele "gopkg.in/telebot.v4"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// markdownToEntities converts Markdown into plain text plus Telegram
// MessageEntity objects by walking the goldmark AST. Offsets and lengths
// are in UTF-16 code units, as Telegram requires.
func markdownToEntities(markdown string) (string, tele.Entities) {
	source := []byte(markdown)

	parser := goldmark.New(goldmark.WithExtensions(gte.GTE))
	doc := parser.Parser().Parse(text.NewReader(source))

	b := &entityBuilder{}
	b.walkNode(doc, source)

	result := strings.TrimRight(b.text.String(), "\n")
	if len(b.entities) == 0 {
		return result, nil
	}
	return result, b.entities
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE TYPES

type entityBuilder struct {
	text     strings.Builder
	entities tele.Entities
	utf16Off int // current offset in UTF-16 code units
	listItem int // 1-based ordered list counter, 0 for unordered
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (b *entityBuilder) writeString(s string) {
	b.text.WriteString(s)
	b.utf16Off += utf16Len(s)
}

// newline writes a line break only if the buffer doesn't already end with one
func (b *entityBuilder) newline() {
	if s := b.text.String(); len(s) > 0 && s[len(s)-1] != '\n' {
		b.writeString("\n")
	}
}

// separator inserts a blank line before a new block if there is content
func (b *entityBuilder) separator() {
	s := b.text.String()
	switch {
	case len(s) == 0:
	case strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		b.writeString("\n")
	default:
		b.writeString("\n\n")
	}
}

// mark appends an entity covering everything written since start
func (b *entityBuilder) mark(entityType tele.EntityType, start int) {
	if length := b.utf16Off - start; length > 0 {
		b.entities = append(b.entities, tele.MessageEntity{
			Type:   entityType,
			Offset: start,
			Length: length,
		})
	}
}

func (b *entityBuilder) walkNode(node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Document:
		b.walkChildren(n, source)

	case *ast.Paragraph:
		b.separator()
		b.walkChildren(n, source)

	case *ast.TextBlock:
		// Tight list item content, no blank line before
		b.walkChildren(n, source)

	case *ast.Heading:
		b.separator()
		start := b.utf16Off
		b.walkChildren(n, source)
		b.mark(tele.EntityBold, start)

	case *ast.List:
		b.newline()
		saved := b.listItem
		if n.IsOrdered() {
			b.listItem = max(n.Start, 1)
		} else {
			b.listItem = 0
		}
		b.walkChildren(n, source)
		b.listItem = saved

	case *ast.ListItem:
		b.newline()
		if b.listItem > 0 {
			b.writeString(fmt.Sprintf("%d. ", b.listItem))
			b.listItem++
		} else {
			b.writeString("• ")
		}
		b.walkChildren(n, source)

	case *ast.Emphasis:
		start := b.utf16Off
		b.walkChildren(n, source)
		if n.Level == 2 {
			b.mark(tele.EntityBold, start)
		} else {
			b.mark(tele.EntityItalic, start)
		}

	case *ast.CodeSpan:
		start := b.utf16Off
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.writeString(string(t.Segment.Value(source)))
			}
		}
		b.mark(tele.EntityCode, start)

	case *ast.Link:
		start := b.utf16Off
		b.walkChildren(n, source)
		if length := b.utf16Off - start; length > 0 {
			b.entities = append(b.entities, tele.MessageEntity{
				Type:   tele.EntityTextLink,
				Offset: start,
				Length: length,
				URL:    string(n.Destination),
			})
		}

	case *ast.AutoLink:
		b.writeString(string(n.URL(source)))

	case *ast.Text:
		b.writeString(string(n.Segment.Value(source)))
		if n.HardLineBreak() || n.SoftLineBreak() {
			b.writeString("\n")
		}

	case *ast.String:
		b.writeString(string(n.Value))

	default:
		switch node.Kind() {
		case east.KindStrikethrough:
			start := b.utf16Off
			b.walkChildren(node, source)
			b.mark(tele.EntityStrikethrough, start)
		case gteast.KindUnderline:
			start := b.utf16Off
			b.walkChildren(node, source)
			b.mark(tele.EntityUnderline, start)
		default:
			// Unknown node, walk children to preserve text content
			b.walkChildren(node, source)
		}
	}
}

func (b *entityBuilder) walkChildren(node ast.Node, source []byte) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		b.walkNode(c, source)
	}
}

// utf16Len returns the length of s in UTF-16 code units
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2 // surrogate pair
		} else {
			n++
		}
	}
	return n
}
