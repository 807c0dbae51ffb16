/*
Copyright 2025 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package statement

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ReadXML reads a bank XML statement (CAMT and friends) and returns one
// row per element whose tag is mainTag, in document order. Namespaces are
// stripped: the tree keeps only local names, so paths in extraction
// expressions never need prefixes.
func ReadXML(r io.Reader, mainTag string) ([]Row, error) {
	root, err := parseXML(r)
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	rows := []Row{}
	var walk func(n *xmlNode)
	walk = func(n *xmlNode) {
		if n.tag == mainTag {
			rows = append(rows, &xmlRow{node: n, index: len(rows)})
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	return rows, nil
}

// xmlNode is one element of the statement document. Only what extraction
// needs: local tag, attributes, trimmed text, children in order.
type xmlNode struct {
	tag      string
	attrs    map[string]string
	text     string
	children []*xmlNode
}

func (n *xmlNode) value() string {
	return strings.TrimSpace(n.text)
}

func parseXML(r io.Reader) (*xmlNode, error) {
	dec := xml.NewDecoder(r)

	root := &xmlNode{}
	stack := []*xmlNode{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{tag: t.Name.Local}
			if len(t.Attr) > 0 {
				n.attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.attrs[a.Name.Local] = a.Value
				}
			}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.text += string(t)
		}
	}

	return root, nil
}

// first returns the first element reached by following the path segments
// child by child, ElementTree style.
func (n *xmlNode) first(segs []string) *xmlNode {
	if len(segs) == 0 {
		return n
	}
	for _, c := range n.children {
		if c.tag != segs[0] {
			continue
		}
		if found := c.first(segs[1:]); found != nil {
			return found
		}
	}
	return nil
}

// every collects all elements reachable by the path segments, in
// document order.
func (n *xmlNode) every(segs []string, out []*xmlNode) []*xmlNode {
	if len(segs) == 0 {
		return append(out, n)
	}
	for _, c := range n.children {
		if c.tag == segs[0] {
			out = c.every(segs[1:], out)
		}
	}
	return out
}

// descendant finds the first element with the given tag anywhere below
// this one, depth first.
func (n *xmlNode) descendant(tag string) *xmlNode {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
		if d := c.descendant(tag); d != nil {
			return d
		}
	}
	return nil
}

type xmlRow struct {
	node  *xmlNode
	index int
}

func (x *xmlRow) Source() string {
	return fmt.Sprintf("%v %v", x.node.tag, x.index)
}

// Field returns the text of the first descendant with the given tag.
func (x *xmlRow) Field(name string) (string, bool) {
	n := x.node.descendant(name)
	if n == nil {
		return "", false
	}
	return n.value(), true
}

// Path resolves a slash-separated tag path relative to the row element.
// A trailing @name selects an attribute of the found element instead of
// its text: "Amt@Ccy" is the currency attribute of the Amt child.
func (x *xmlRow) Path(path string) (string, bool) {
	elem, attr := splitAttr(path)
	n := x.node.first(splitPath(elem))
	if n == nil {
		return "", false
	}
	if attr != "" {
		v, ok := n.attrs[attr]
		return v, ok
	}
	return n.value(), true
}

// PathAll resolves a path to every matching element, in document order.
func (x *xmlRow) PathAll(path string) []string {
	elem, attr := splitAttr(path)
	out := []string{}
	for _, n := range x.node.every(splitPath(elem), nil) {
		if attr != "" {
			if v, ok := n.attrs[attr]; ok {
				out = append(out, v)
			}
			continue
		}
		out = append(out, n.value())
	}
	return out
}

func splitAttr(path string) (string, string) {
	if i := strings.LastIndexByte(path, '@'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

func splitPath(elem string) []string {
	if elem == "" {
		return nil
	}
	return strings.Split(elem, "/")
}
