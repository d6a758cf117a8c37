// Package envelope locates the canonical rDE node inside the XML shapes
// SIFEN documents arrive in: a SOAP response, an rLoteDE batch, or a bare
// rDE root.
package envelope

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/sifenlabs/kude/internal/model"
)

// Element aliases the underlying tree node so callers outside this
// package don't import etree directly.
type Element = etree.Element

// Canonical is the unwrapped document node. RDE is guaranteed to contain
// a DE child.
type Canonical struct {
	RDE *etree.Element
}

// Parse reads XML bytes into an element tree. Namespace prefixes are kept
// out of tag matching; all lookups go by local name.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, model.NewUnwrapError(model.ShapeUnknown, "unparseable XML: "+err.Error(), nil)
	}
	return doc, nil
}

// soapPath is the exact branch a SOAP envelope must carry. Absence of any
// intermediate node is malformed SOAP, not a fallthrough to the next shape.
var soapPath = []string{"Body", "rEnviDe", "xDE", "rDE"}

// Unwrap resolves the canonical document node. Detection order is strict:
// SOAP, then batch, then single document; anything else is an unknown
// root shape.
func Unwrap(doc *etree.Document) (*Canonical, error) {
	root := doc.Root()
	if root == nil {
		return nil, model.NewUnwrapError(model.ShapeUnknown, "document has no root element", nil)
	}

	switch root.Tag {
	case "Envelope":
		cur := root
		for _, tag := range soapPath {
			next := Child(cur, tag)
			if next == nil {
				return nil, model.NewUnwrapError(model.ShapeSOAP,
					"missing <"+tag+"> under <"+cur.Tag+">", childTags(cur))
			}
			cur = next
		}
		return canonical(cur, model.ShapeSOAP)

	case "rLoteDE":
		rde := Child(root, "rDE")
		if rde == nil {
			return nil, model.NewUnwrapError(model.ShapeBatch,
				"batch contains no rDE documents", childTags(root))
		}
		return canonical(rde, model.ShapeBatch)

	case "rDE":
		return canonical(root, model.ShapeSingle)
	}

	return nil, model.NewUnwrapError(model.ShapeUnknown,
		"root <"+root.Tag+"> matches no known envelope shape", childTags(root))
}

func canonical(rde *etree.Element, shape model.Shape) (*Canonical, error) {
	if Child(rde, "DE") == nil {
		return nil, model.NewUnwrapError(shape, "rDE carries no DE node", childTags(rde))
	}
	return &Canonical{RDE: rde}, nil
}

func childTags(el *etree.Element) []string {
	var tags []string
	for _, c := range el.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

// Child returns the first child element with the given local tag name.
func Child(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Children returns all child elements with the given local tag name.
func Children(el *etree.Element, tag string) []*etree.Element {
	if el == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Find walks a path of local tag names, returning nil as soon as any
// segment is missing.
func Find(el *etree.Element, path ...string) *etree.Element {
	cur := el
	for _, tag := range path {
		cur = Child(cur, tag)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Text returns the trimmed text at the given path, or "" when any segment
// is missing.
func Text(el *etree.Element, path ...string) string {
	found := Find(el, path...)
	if found == nil {
		return ""
	}
	return strings.TrimSpace(found.Text())
}

// Attr returns the attribute value on the element at the given path, or "".
func Attr(el *etree.Element, name string, path ...string) string {
	found := Find(el, path...)
	if found == nil {
		return ""
	}
	return found.SelectAttrValue(name, "")
}
