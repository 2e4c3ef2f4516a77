package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Element wraps one node of a parsed page.
type Element struct {
	sel    *goquery.Selection
	policy *bluemonday.Policy
}

// Value returns the form value: the selected (or first) option of a select,
// the content of a textarea, or the value attribute otherwise.
func (e *Element) Value() string {
	switch goquery.NodeName(e.sel) {
	case "select":
		option := e.sel.Find("option[selected]").First()
		if option.Length() == 0 {
			option = e.sel.Find("option").First()
		}
		return optionValue(option)
	case "textarea":
		return e.sel.Text()
	default:
		return e.sel.AttrOr("value", "")
	}
}

// SetValue writes the form value. For a select the matching option becomes
// the selected one; unknown values leave the selection alone.
func (e *Element) SetValue(value string) {
	switch goquery.NodeName(e.sel) {
	case "select":
		var match *goquery.Selection
		e.sel.Find("option").EachWithBreak(func(_ int, option *goquery.Selection) bool {
			if optionValue(option) == value {
				match = option
				return false
			}
			return true
		})
		if match == nil {
			return
		}
		e.sel.Find("option").RemoveAttr("selected")
		match.SetAttr("selected", "selected")
	case "textarea":
		e.sel.SetText(value)
	default:
		e.sel.SetAttr("value", value)
	}
}

// SetText replaces the content with escaped text.
func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

// SetHTML replaces the content with sanitized markup.
func (e *Element) SetHTML(html string) {
	e.sel.SetHtml(e.policy.Sanitize(html))
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// SetStyle sets one inline style property, keeping the others in place.
func (e *Element) SetStyle(property, value string) {
	decls := parseStyle(e.sel.AttrOr("style", ""))
	decls = decls.set(property, value)
	e.sel.SetAttr("style", decls.String())
}

// Style returns one inline style property.
func (e *Element) Style(property string) string {
	return parseStyle(e.sel.AttrOr("style", "")).get(property)
}

// Text returns the element text content.
func (e *Element) Text() string {
	return e.sel.Text()
}

// InnerHTML returns the element content as markup.
func (e *Element) InnerHTML() (string, error) {
	return e.sel.Html()
}

func optionValue(option *goquery.Selection) string {
	if option.Length() == 0 {
		return ""
	}
	if v, ok := option.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(option.Text())
}
