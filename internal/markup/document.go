// Package markup binds calculators to server-rendered HTML. Calculator
// blocks and their fields are located with the same class selectors the page
// template uses, mutated in place, and serialized back out.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/iwvelando/mortgage-calc/internal/calculator"
	"github.com/microcosm-cc/bluemonday"
)

// Document is a parsed page holding zero or more calculator blocks.
type Document struct {
	doc      *goquery.Document
	policy   *bluemonday.Policy
	fragment bool
	blocks   []*Block
}

// Parse reads an HTML page or fragment.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read markup: %w", err)
	}
	return ParseString(string(raw))
}

// ParseString parses an HTML page or fragment held in memory.
func ParseString(raw string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	d := &Document{
		doc:      doc,
		policy:   newCostHTMLPolicy(),
		fragment: !strings.Contains(strings.ToLower(raw), "<html"),
	}
	doc.Find(calculator.BlockSelector).Each(func(i int, sel *goquery.Selection) {
		d.blocks = append(d.blocks, &Block{id: blockID(sel, i), sel: sel, policy: d.policy})
	})
	return d, nil
}

// newCostHTMLPolicy allows the light markup written into the monthly
// payment display.
func newCostHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("strong", "span", "small", "sup", "sub")
	return policy
}

// blockID prefers the container's id attribute and falls back to its
// position on the page.
func blockID(sel *goquery.Selection, index int) string {
	if id, ok := sel.Attr("id"); ok && strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}
	return "mc-" + strconv.Itoa(index)
}

// Blocks returns every calculator block in document order.
func (d *Document) Blocks() []calculator.Block {
	blocks := make([]calculator.Block, 0, len(d.blocks))
	for _, b := range d.blocks {
		blocks = append(blocks, b)
	}
	return blocks
}

// Block returns the block with the given id.
func (d *Document) Block(id string) (*Block, bool) {
	for _, b := range d.blocks {
		if b.id == id {
			return b, true
		}
	}
	return nil, false
}

// BlockIDFor returns the id of the calculator block containing the first
// element matching selector.
func (d *Document) BlockIDFor(selector string) (string, bool) {
	origin := d.doc.Find(selector).First()
	if origin.Length() == 0 {
		return "", false
	}
	container := origin.Closest(calculator.BlockSelector)
	if container.Length() == 0 {
		return "", false
	}
	for _, b := range d.blocks {
		if b.sel.IsSelection(container) {
			return b.id, true
		}
	}
	return "", false
}

// HTML serializes the document. Fragments come back without the html, head
// and body wrappers the parser adds.
func (d *Document) HTML() (string, error) {
	if d.fragment {
		return d.doc.Find("body").Html()
	}
	return d.doc.Html()
}

// Block is one calculator container inside a Document.
type Block struct {
	id     string
	sel    *goquery.Selection
	policy *bluemonday.Policy
}

// ID returns the block identity.
func (b *Block) ID() string { return b.id }

// Find returns the first element under the block matching selector, or nil.
func (b *Block) Find(selector string) calculator.Element {
	el := b.Element(selector)
	if el == nil {
		return nil
	}
	return el
}

// Element is Find with the concrete type.
func (b *Block) Element(selector string) *Element {
	sel := b.sel.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &Element{sel: sel.First(), policy: b.policy}
}
