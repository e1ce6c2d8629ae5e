package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

var ErrMalformedXML = errors.New("malformed soap response")

const unknownFault = "Unknown SOAP Fault"

type element struct {
	name     string
	children []*element
	text     strings.Builder
}

func (e *element) find(local string) *element {
	if e.name == local {
		return e
	}
	for _, c := range e.children {
		if found := c.find(local); found != nil {
			return found
		}
	}
	return nil
}

func parseTree(body []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	root := &element{}
	stack := []*element{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		}
	}
	if len(stack) != 1 {
		return nil, ErrMalformedXML
	}
	return root, nil
}

// faultString returns the fault message and true when the document carries a SOAP fault.
func faultString(root *element) (string, bool) {
	fault := root.find("Fault")
	if fault == nil {
		return "", false
	}
	if fs := fault.find("faultstring"); fs != nil {
		if msg := strings.TrimSpace(fs.text.String()); msg != "" {
			return msg, true
		}
	}
	// SOAP 1.2 carries the reason under Reason/Text.
	if reason := fault.find("Reason"); reason != nil {
		if txt := reason.find("Text"); txt != nil {
			if msg := strings.TrimSpace(txt.text.String()); msg != "" {
				return msg, true
			}
		}
	}
	return unknownFault, true
}

// result returns the converted <{action}Result> value, or nil when the element is absent.
// A result without child elements yields its text.
func result(root *element, action string) any {
	node := root.find(action + "Result")
	if node == nil {
		return nil
	}
	if len(node.children) == 0 {
		return node.text.String()
	}
	return convert(node)
}

// convert collapses text-only elements to strings and repeated sibling names to slices.
func convert(e *element) any {
	if len(e.children) == 0 {
		if text := e.text.String(); strings.TrimSpace(text) != "" {
			return text
		}
		return Node{}
	}

	out := Node{}
	for _, c := range e.children {
		v := convert(c)
		existing, seen := out[c.name]
		if !seen {
			out[c.name] = v
			continue
		}
		if list, ok := existing.([]any); ok {
			out[c.name] = append(list, v)
		} else {
			out[c.name] = []any{existing, v}
		}
	}
	return out
}
