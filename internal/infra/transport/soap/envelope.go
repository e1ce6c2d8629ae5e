package soap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var ErrUndeclaredArray = errors.New("array parameter has no declared item tag")

// Field is one named operation parameter. Order is preserved on the wire.
type Field struct {
	Name  string
	Value any
}

type Params []Field

func P(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// ArraySchema maps an array-valued parameter name to the element name of each item,
// e.g. "turistas" -> "TuristaSoap" yields <turistas><TuristaSoap>...</TuristaSoap></turistas>.
// Arrays without an entry are written as the parameter element repeated once per item.
type ArraySchema map[string]string

type Request struct {
	Action string
	Params Params
	Arrays ArraySchema
}

const envelopeHead = `<?xml version="1.0" encoding="utf-8"?>` +
	`<soap:Envelope xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
	`<soap:Body>`

const envelopeTail = `</soap:Body></soap:Envelope>`

// BuildEnvelope renders a document/literal SOAP 1.1 envelope for req under namespace.
func BuildEnvelope(namespace string, req Request) (string, error) {
	if req.Action == "" {
		return "", errors.New("soap action is required")
	}

	var b strings.Builder
	b.WriteString(envelopeHead)
	fmt.Fprintf(&b, `<%s xmlns="%s">`, req.Action, escapeAttr(namespace))
	if err := writeParams(&b, req.Params, req.Arrays); err != nil {
		return "", err
	}
	fmt.Fprintf(&b, `</%s>`, req.Action)
	b.WriteString(envelopeTail)
	return b.String(), nil
}

func writeParams(b *strings.Builder, params Params, arrays ArraySchema) error {
	for _, f := range params {
		if err := writeField(b, f.Name, f.Value, arrays); err != nil {
			return err
		}
	}
	return nil
}

func writeField(b *strings.Builder, name string, value any, arrays ArraySchema) error {
	if isNil(value) {
		fmt.Fprintf(b, `<%s xsi:nil="true" />`, name)
		return nil
	}

	switch v := value.(type) {
	case Params:
		fmt.Fprintf(b, "<%s>", name)
		if err := writeParams(b, v, arrays); err != nil {
			return err
		}
		fmt.Fprintf(b, "</%s>", name)
		return nil
	case []byte:
		return writeScalar(b, name, string(v))
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return writeArray(b, name, rv, arrays)
	}
	return writeScalar(b, name, rv.Interface())
}

func writeArray(b *strings.Builder, name string, rv reflect.Value, arrays ArraySchema) error {
	itemTag, declared := arrays[name]
	if !declared {
		for i := 0; i < rv.Len(); i++ {
			if err := writeField(b, name, rv.Index(i).Interface(), arrays); err != nil {
				return err
			}
		}
		return nil
	}
	if itemTag == "" {
		return fmt.Errorf("%w: %s", ErrUndeclaredArray, name)
	}

	fmt.Fprintf(b, "<%s>", name)
	for i := 0; i < rv.Len(); i++ {
		if err := writeField(b, itemTag, rv.Index(i).Interface(), arrays); err != nil {
			return err
		}
	}
	fmt.Fprintf(b, "</%s>", name)
	return nil
}

func writeScalar(b *strings.Builder, name string, value any) error {
	text, err := formatScalar(value)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	fmt.Fprintf(b, "<%s>", name)
	if err := xml.EscapeText(b, []byte(text)); err != nil {
		return err
	}
	fmt.Fprintf(b, "</%s>", name)
	return nil
}

func formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported parameter type %T", value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
