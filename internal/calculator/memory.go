package calculator

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
)

// MemoryElement is an Element held entirely in memory.
type MemoryElement struct {
	value string
	text  string
	attrs map[string]string
	style map[string]string
}

// NewMemoryElement returns an element holding value.
func NewMemoryElement(value string) *MemoryElement {
	return &MemoryElement{value: value, attrs: make(map[string]string), style: make(map[string]string)}
}

func (m *MemoryElement) Value() string         { return m.value }
func (m *MemoryElement) SetValue(value string) { m.value = value }
func (m *MemoryElement) SetText(text string)   { m.text = html.EscapeString(text) }
func (m *MemoryElement) SetHTML(h string)      { m.text = h }

// Text returns the element content as markup.
func (m *MemoryElement) Text() string { return m.text }

func (m *MemoryElement) Attr(name string) (string, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// SetAttr sets an attribute and returns the element for chaining.
func (m *MemoryElement) SetAttr(name, value string) *MemoryElement {
	m.attrs[name] = value
	return m
}

func (m *MemoryElement) SetStyle(property, value string) { m.style[property] = value }

// Style returns one inline style property.
func (m *MemoryElement) Style(property string) string { return m.style[property] }

// StyleString renders the inline style in property order.
func (m *MemoryElement) StyleString() string {
	props := make([]string, 0, len(m.style))
	for p := range m.style {
		props = append(props, p)
	}
	sort.Strings(props)
	var b strings.Builder
	for _, p := range props {
		b.WriteString(p + ": " + m.style[p] + ";")
	}
	return b.String()
}

// MemoryBlock is a Block whose elements are registered by selector.
type MemoryBlock struct {
	id       string
	elements map[string]*MemoryElement
}

// NewMemoryBlock returns an empty block.
func NewMemoryBlock(id string) *MemoryBlock {
	return &MemoryBlock{id: id, elements: make(map[string]*MemoryElement)}
}

func (b *MemoryBlock) ID() string { return b.id }

// Find returns the element registered under selector, or nil.
func (b *MemoryBlock) Find(selector string) Element {
	el, ok := b.elements[selector]
	if !ok {
		return nil
	}
	return el
}

// Add registers el under selector.
func (b *MemoryBlock) Add(selector string, el *MemoryElement) *MemoryElement {
	b.elements[selector] = el
	return el
}

// Element returns the element bound to field, or nil.
func (b *MemoryBlock) Element(field Field) *MemoryElement {
	if field == FieldInfoCostTotal {
		if over, ok := b.elements[CostOverGraphSelector]; ok {
			return over
		}
	}
	selector, ok := Selector(field)
	if !ok {
		return nil
	}
	return b.elements[selector]
}

// Remove drops the element bound to field, if any.
func (b *MemoryBlock) Remove(field Field) {
	if selector, ok := Selector(field); ok {
		delete(b.elements, selector)
	}
}

// NewMemoryCalculator builds a complete calculator block pre-filled with v,
// the way a server-rendered template would be. When circular is set, the
// block carries a cost-over-graph display and circle bands of radius 45.
func NewMemoryCalculator(id string, v mortgage.Values, circular bool) *MemoryBlock {
	v = v.WithDefaults()
	b := NewMemoryBlock(id)

	initial := map[Field]string{
		FieldTerm:              strconv.Itoa(v.Term),
		FieldInterestText:      format.Number(v.Interest),
		FieldInterestSlider:    format.Number(v.Interest),
		FieldPriceText:         format.Number(v.Price),
		FieldPriceSlider:       format.Number(v.Price),
		FieldDownpaymentText:   format.Number(v.Downpayment),
		FieldDownpaymentTextP:  format.Number(v.DownpaymentPercent),
		FieldDownpaymentSlider: format.Number(v.DownpaymentPercent),
		FieldTax:               format.Number(v.Tax),
		FieldHOA:               format.Number(v.HOA),
		FieldCurrencySign:      v.CurrencySign,
		FieldSignPosition:      string(v.SignPosition),
	}
	for _, field := range AllFields() {
		selector, _ := Selector(field)
		b.Add(selector, NewMemoryElement(initial[field]))
	}

	if circular {
		b.Add(CostOverGraphSelector, NewMemoryElement("")).SetAttr(CostPrefixAttr, "/mo")
		for _, field := range []Field{FieldGraphInterest, FieldGraphTax, FieldGraphHOA} {
			b.Element(field).SetAttr(RadiusAttr, "45")
		}
	}
	return b
}

// MemoryPage is a Page made of memory blocks.
type MemoryPage []*MemoryBlock

func (p MemoryPage) Blocks() []Block {
	blocks := make([]Block, 0, len(p))
	for _, b := range p {
		blocks = append(blocks, b)
	}
	return blocks
}
