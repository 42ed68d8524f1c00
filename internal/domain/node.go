package domain

import (
	"bytes"
	"encoding/json"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Node wraps a decoded JSON value. Every accessor tolerates a missing or
// mistyped level and returns an absent Node instead of failing, so a lookup
// chain like n.Key("a").Key("b").Index(0) never panics.
type Node struct {
	v       any
	present bool
}

// ParseNode decodes a JSON document, ignoring a leading UTF-8 BOM
func ParseNode(data []byte) (Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Node{}, err
	}
	return Node{v: v, present: true}, nil
}

// NewNode wraps an already decoded value
func NewNode(v any) Node {
	return Node{v: v, present: v != nil}
}

// Present reports whether the value exists and is not JSON null
func (n Node) Present() bool {
	return n.present && n.v != nil
}

// Key returns the member of an object, or an absent Node
func (n Node) Key(name string) Node {
	obj, ok := n.v.(map[string]any)
	if !ok {
		return Node{}
	}
	v, ok := obj[name]
	if !ok {
		return Node{}
	}
	return Node{v: v, present: true}
}

// Path follows a chain of object keys
func (n Node) Path(keys ...string) Node {
	cur := n
	for _, k := range keys {
		cur = cur.Key(k)
		if !cur.Present() {
			return Node{}
		}
	}
	return cur
}

// Items returns the elements of an array; nil when n is not an array
func (n Node) Items() []Node {
	arr, ok := n.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Node, len(arr))
	for i, v := range arr {
		out[i] = Node{v: v, present: true}
	}
	return out
}

// Text returns the string value and whether n held a non-empty string
func (n Node) Text() (string, bool) {
	s, ok := n.v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// TextOr returns the string value or def
func (n Node) TextOr(def string) string {
	if s, ok := n.Text(); ok {
		return s
	}
	return def
}
