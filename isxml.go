package xmlstring

import (
	"reflect"
)

// xmlStart opens every XML element, declaration, comment and processing instruction.
const xmlStart = '<'

// IsXML reports whether data (possibly) holds a well-formed XML document.
//
// Only data[0] is inspected. Leading whitespace and byte order marks are not skipped,
// so both " <a/>" and "\xEF\xBB\xBF<a/>" report false. Empty or nil data reports false.
func IsXML(data []byte) bool {
	return len(data) > 0 && data[0] == xmlStart
}

// byteser is implemented by buffers exposing their contents, like *bytes.Buffer.
type byteser interface {
	Bytes() []byte
}

// Sniff is IsXML for a value of unknown type.
//
// v must be bytes-like: a []byte, a named type with []byte underlying type (json.RawMessage)
// or a value with a Bytes() []byte method (*bytes.Buffer). A nil buffer pointer counts as empty.
//
// Decoded text is never converted back to bytes. A string, []rune, nil or any other
// value returns false and TypeMismatchError.
func Sniff(v interface{}) (bool, error) {
	data, err := bytesOf(v)
	if err != nil {
		return false, err
	}

	return IsXML(data), nil
}

func bytesOf(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, TypeMismatchError("nil")
	case []byte:
		return b, nil
	case byteser:
		if rv := reflect.ValueOf(b); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, nil
		}

		return b.Bytes(), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), nil
	}

	return nil, TypeMismatchError(rv.Type().String())
}
