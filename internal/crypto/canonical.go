// this file serializes Value trees into canonical JSON bytes.
//
// The output is a pure function of the value tree: object member order and source formatting
// do not affect it. Canonical bytes are the input to the proof digest, so any change to the
// rules below changes every attested hash.
//
// The jcs profile uses the gowebpki/jcs library (RFC 8785) on top of the oaps encoding.

package crypto

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/gowebpki/jcs"
)

// Encode returns the canonical encoding of v under ProfileOAPS.
func Encode(v Value) ([]byte, error) {
	return EncodeWithProfile(v, ProfileOAPS)
}

// EncodeWithProfile returns the canonical encoding of v under the given profile.
//
// Returns a malformed input error if the tree contains duplicate object names, non-finite or
// invalid numbers, invalid UTF-8 or an unknown value kind.
func EncodeWithProfile(v Value, profile Profile) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch profile {
	case ProfileOAPS:
		e := &encoder{formatNumber: oapsNumber}
		err = e.encodeValue(v, "$")
		out = e.buf
	case ProfileLegacy:
		e := &encoder{formatNumber: formatLegacyNumber, escapeNonASCII: true}
		err = e.encodeValue(v, "$")
		out = e.buf
	case ProfileJCS:
		out, err = encodeJCS(v)
	default:
		return nil, NewEncodingError(fmt.Sprintf("unsupported canonicalization profile %q", profile))
	}
	if err != nil {
		return nil, err
	}

	if !jsontext.Value(out).IsValid() {
		return nil, NewEncodingError("canonical encoder produced invalid JSON")
	}
	return out, nil
}

// Canonicalize parses a JSON document and returns its canonical encoding.
func Canonicalize(data []byte, profile Profile) ([]byte, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return EncodeWithProfile(v, profile)
}

func oapsNumber(lit string, _ bool) (string, error) {
	return formatOAPSNumber(lit)
}

// encodeJCS validates the tree with the oaps encoder (duplicates, numbers, UTF-8) and lets
// the jcs library apply the RFC 8785 ordering and number serialization.
func encodeJCS(v Value) ([]byte, error) {
	e := &encoder{formatNumber: oapsNumber}
	if err := e.encodeValue(v, "$"); err != nil {
		return nil, err
	}
	out, err := jcs.Transform(e.buf)
	if err != nil {
		return nil, WrapMalformedInputError(err, "document cannot be represented under RFC 8785")
	}
	return out, nil
}

type encoder struct {
	buf []byte

	// formatNumber renders a number literal; isFloat reports a fraction or exponent in the source
	formatNumber func(lit string, isFloat bool) (string, error)

	// escapeNonASCII writes every character outside printable ASCII as \uXXXX
	escapeNonASCII bool
}

func (e *encoder) encodeValue(v Value, path string) error {
	switch v.kind {
	case KindNull:
		e.buf = append(e.buf, "null"...)
	case KindBool:
		e.buf = strconv.AppendBool(e.buf, v.boolean)
	case KindNumber:
		s, err := e.formatNumber(v.text, v.float)
		if err != nil {
			return WrapMalformedInputError(err, "invalid number at "+path)
		}
		e.buf = append(e.buf, s...)
	case KindString:
		if !utf8.ValidString(v.text) {
			return NewMalformedInputError(fmt.Sprintf("invalid UTF-8 in string at %s", path))
		}
		e.encodeString(v.text)
	case KindArray:
		e.buf = append(e.buf, '[')
		for i, item := range v.items {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			if err := e.encodeValue(item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		e.buf = append(e.buf, ']')
	case KindObject:
		return e.encodeObject(v, path)
	default:
		return NewMalformedInputError(fmt.Sprintf("unsupported value kind %s at %s", v.kind, path))
	}
	return nil
}

func (e *encoder) encodeObject(v Value, path string) error {
	members := append([]Member(nil), v.members...)
	// byte-wise comparison of Go strings is UTF-8 byte order
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	e.buf = append(e.buf, '{')
	for i, m := range members {
		if !utf8.ValidString(m.Name) {
			return NewMalformedInputError(fmt.Sprintf("invalid UTF-8 in object name at %s", path))
		}
		if i > 0 {
			if members[i-1].Name == m.Name {
				return NewMalformedInputError(fmt.Sprintf("duplicate object name %q at %s", m.Name, path))
			}
			e.buf = append(e.buf, ',')
		}
		e.encodeString(m.Name)
		e.buf = append(e.buf, ':')
		if err := e.encodeValue(m.Value, path+"."+m.Name); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, '}')
	return nil
}

// encodeString writes s as a JSON string. s must be valid UTF-8.
func (e *encoder) encodeString(s string) {
	e.buf = append(e.buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			e.buf = append(e.buf, '\\', '"')
		case '\\':
			e.buf = append(e.buf, '\\', '\\')
		case '\b':
			e.buf = append(e.buf, '\\', 'b')
		case '\t':
			e.buf = append(e.buf, '\\', 't')
		case '\n':
			e.buf = append(e.buf, '\\', 'n')
		case '\f':
			e.buf = append(e.buf, '\\', 'f')
		case '\r':
			e.buf = append(e.buf, '\\', 'r')
		default:
			switch {
			case r < 0x20:
				e.appendUnicodeEscape(r)
			case e.escapeNonASCII && r > 0x7e:
				if r > 0xffff {
					hi, lo := utf16.EncodeRune(r)
					e.appendUnicodeEscape(hi)
					e.appendUnicodeEscape(lo)
				} else {
					e.appendUnicodeEscape(r)
				}
			default:
				e.buf = utf8.AppendRune(e.buf, r)
			}
		}
	}
	e.buf = append(e.buf, '"')
}

const hexDigits = "0123456789abcdef"

func (e *encoder) appendUnicodeEscape(r rune) {
	e.buf = append(e.buf, '\\', 'u',
		hexDigits[(r>>12)&0xf], hexDigits[(r>>8)&0xf], hexDigits[(r>>4)&0xf], hexDigits[r&0xf])
}
