// this file parses JSON documents into the Value tree.
//
// Tokenizing is delegated to jsontext (strict RFC 8259 grammar, UTF-8 validation).
// Duplicate object names are deliberately let through the tokenizer and kept in the tree
// so that the encoder can report them as malformed input rather than a parse failure.

package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Parse parses a single JSON document.
//
// Returns a parse error if the input is empty, is not valid JSON, contains invalid UTF-8
// or has data after the top-level value.
func Parse(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses a single JSON document from r.
// Errors returned by r itself are reported as I/O errors.
func ParseReader(r io.Reader) (Value, error) {
	dec := jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))

	v, err := parseValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, NewParseError("document is empty")
		}
		return Value{}, classifyDecodeError(err)
	}

	tok, err := dec.ReadToken()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return Value{}, classifyDecodeError(err)
	default:
		kind := tok.Kind()
		return Value{}, NewParseError(fmt.Sprintf("unexpected %s after top-level value at offset %d",
			kind, dec.InputOffset()))
	}
}

func classifyDecodeError(err error) error {
	if CodeOf(err) != "" {
		return err
	}
	var syntaxErr *jsontext.SyntacticError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return WrapParseError(err, "invalid JSON")
	}
	return WrapIOError(err, "failed to read JSON document")
}

func parseValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return Value{}, err
		}
		return Number(string(raw)), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return String(tok.String()), nil
	case '{':
		return parseObject(dec)
	case '[':
		return parseArray(dec)
	default:
		// null, true, false, or an error surfaced by ReadToken
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		switch tok.Kind() {
		case 'n':
			return Null(), nil
		case 't', 'f':
			return Bool(tok.Bool()), nil
		default:
			return Value{}, NewParseError(fmt.Sprintf("unexpected token %s at offset %d", tok.Kind(), dec.InputOffset()))
		}
	}
}

func parseObject(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil {
		return Value{}, err
	}

	members := []Member{}
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		// the token is invalidated by the next decoder call
		name := tok.String()

		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Name: name, Value: val})
	}

	if _, err := dec.ReadToken(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, members: members}, nil
}

func parseArray(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil {
		return Value{}, err
	}

	items := []Value{}
	for dec.PeekKind() != ']' {
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}

	if _, err := dec.ReadToken(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, items: items}, nil
}
