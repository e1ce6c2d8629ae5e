package soap

import (
	"strconv"
	"strings"
)

// Node is a decoded complex element: child name -> string | Node | []any.
type Node map[string]any

// AsNode returns v as a Node, or an empty Node when v is a string or nil.
func AsNode(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return Node{}
}

func (n Node) lookup(key string) (any, bool) {
	if v, ok := n[key]; ok {
		return v, true
	}
	for k, v := range n {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// Text returns the first non-empty text among keys; names match case-insensitively.
func (n Node) Text(keys ...string) string {
	for _, k := range keys {
		v, ok := n.lookup(k)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (n Node) Child(key string) Node {
	v, _ := n.lookup(key)
	return AsNode(v)
}

func (n Node) Has(key string) bool {
	_, ok := n.lookup(key)
	return ok
}

// List normalizes a single child or repeated children into a slice.
func (n Node) List(key string) []any {
	v, ok := n.lookup(key)
	if !ok || v == nil {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func (n Node) Nodes(key string) []Node {
	items := n.List(key)
	out := make([]Node, 0, len(items))
	for _, it := range items {
		if node, ok := it.(Node); ok {
			out = append(out, node)
		}
	}
	return out
}

func (n Node) Bool(keys ...string) (bool, bool) {
	text := n.Text(keys...)
	if text == "" {
		return false, false
	}
	b, err := strconv.ParseBool(strings.ToLower(text))
	if err != nil {
		return false, false
	}
	return b, true
}

func (n Node) Float(keys ...string) float64 {
	f, err := strconv.ParseFloat(n.Text(keys...), 64)
	if err != nil {
		return 0
	}
	return f
}

func (n Node) Int(keys ...string) int {
	text := n.Text(keys...)
	if i, err := strconv.Atoi(text); err == nil {
		return i
	}
	return int(n.Float(keys...))
}
