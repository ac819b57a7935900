// this file formats JSON numbers for the canonical encoders.
//
// The oaps profile normalizes every number to its exact decimal value: the literal is never
// converted to a float64, so big integers and long fractions keep every digit. Non-integral
// values use the ECMAScript Number.prototype.toString layout, which makes the output identical
// to RFC 8785 for any number that is exactly a shortest-form double. Integral values never
// contain a decimal point: they are written as plain digits, or as digits followed by an
// exponent (12e+30) when that is shorter.
//
// The legacy profile reproduces Python's json.dumps: integer literals stay integers and
// anything written with a fraction or exponent is rendered like repr(float).

package crypto

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxExponent bounds the decimal exponent accepted in non-zero number literals.
const maxExponent = 1_000_000_000

// decimal is the exact value (-1)^neg * digits * 10^exp.
// digits has no leading or trailing zeros; empty digits means zero.
type decimal struct {
	neg    bool
	digits string
	exp    int
}

// parseDecimal parses a JSON number literal into its exact decimal value.
func parseDecimal(lit string) (decimal, error) {
	if isNonFiniteLiteral(lit) {
		return decimal{}, NewMalformedInputError(fmt.Sprintf("non-finite number %s is not allowed", lit))
	}

	s := lit
	var d decimal
	if strings.HasPrefix(s, "-") {
		d.neg = true
		s = s[1:]
	}

	// integer part: 0 | [1-9][0-9]*
	i := scanDigits(s)
	if i == 0 || (i > 1 && s[0] == '0') {
		return decimal{}, invalidNumber(lit)
	}
	intPart := s[:i]
	s = s[i:]

	var fracPart string
	if strings.HasPrefix(s, ".") {
		j := scanDigits(s[1:])
		if j == 0 {
			return decimal{}, invalidNumber(lit)
		}
		fracPart = s[1 : 1+j]
		s = s[1+j:]
	}

	exp := 0
	var expLit string
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		expText := s[1:]
		if len(expText) > 0 && (expText[0] == '+' || expText[0] == '-') {
			expText = expText[1:]
		}
		j := scanDigits(expText)
		if j == 0 || j != len(expText) {
			return decimal{}, invalidNumber(lit)
		}
		expLit = s[1:]
		s = ""
	}
	if s != "" {
		return decimal{}, invalidNumber(lit)
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	if digits == "" {
		// -0, 0.000 and 0e999999999999 are all zero
		return decimal{}, nil
	}

	if expLit != "" {
		n, err := strconv.Atoi(expLit)
		if err != nil || n > maxExponent || n < -maxExponent {
			return decimal{}, NewMalformedInputError(fmt.Sprintf("number %s has an exponent out of range", lit))
		}
		exp = n
	}
	trimmed := strings.TrimRight(digits, "0")
	d.digits = trimmed
	d.exp = exp - len(fracPart) + (len(digits) - len(trimmed))
	return d, nil
}

func scanDigits(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func invalidNumber(lit string) error {
	return NewMalformedInputError(fmt.Sprintf("invalid number literal %q", lit))
}

func isNonFiniteLiteral(lit string) bool {
	switch lit {
	case nanLiteral, posInfLiteral, negInfLiteral, "+Inf", "-Inf", "Inf":
		return true
	}
	return false
}

// String renders d in ECMAScript Number.prototype.toString layout, except that integral
// values are never given a decimal point.
func (d decimal) String() string {
	if d.digits == "" {
		return "0"
	}

	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}

	k := len(d.digits)
	// n is the position of the decimal point relative to the first digit
	n := d.exp + k

	switch {
	case d.exp >= 0:
		// integral: plain digits up to 21 places, beyond that unless digits+exponent is shorter
		expForm := "e+" + strconv.Itoa(d.exp)
		b.WriteString(d.digits)
		if n <= 21 || d.exp <= len(expForm) {
			b.WriteString(strings.Repeat("0", d.exp))
		} else {
			b.WriteString(expForm)
		}
	case 0 < n && n <= 21:
		b.WriteString(d.digits[:n])
		b.WriteByte('.')
		b.WriteString(d.digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(d.digits)
	default:
		b.WriteByte(d.digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(d.digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

// formatOAPSNumber returns the canonical form of a number literal under the oaps profile.
func formatOAPSNumber(lit string) (string, error) {
	d, err := parseDecimal(lit)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// formatLegacyNumber returns the number as Python's json.dumps would print it after json.load.
func formatLegacyNumber(lit string, isFloat bool) (string, error) {
	d, err := parseDecimal(lit)
	if err != nil {
		return "", err
	}

	if !isFloat {
		// JSON integers load as exact Python ints, printed in full
		if d.digits == "" {
			return "0", nil
		}
		return lit, nil
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && math.IsInf(f, 0) {
			return "", NewMalformedInputError(fmt.Sprintf("number %s overflows a double", lit))
		}
		return "", invalidNumber(lit)
	}
	return pythonFloatRepr(f), nil
}

// pythonFloatRepr formats a finite float64 the way Python's repr(float) does:
// shortest round-trip digits, fixed notation when -4 < decpt <= 16, otherwise
// exponent notation with at least two exponent digits.
func pythonFloatRepr(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
		f = -f
	}

	// d.ddddde±XX
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expText, _ := strings.Cut(s, "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp10, _ := strconv.Atoi(expText)
	decpt := exp10 + 1
	k := len(digits)

	if -4 < decpt && decpt <= 16 {
		switch {
		case decpt <= 0:
			b.WriteString("0.")
			b.WriteString(strings.Repeat("0", -decpt))
			b.WriteString(digits)
		case decpt >= k:
			b.WriteString(digits)
			b.WriteString(strings.Repeat("0", decpt-k))
			b.WriteString(".0")
		default:
			b.WriteString(digits[:decpt])
			b.WriteByte('.')
			b.WriteString(digits[decpt:])
		}
		return b.String()
	}

	b.WriteByte(digits[0])
	if k > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	e := decpt - 1
	if e < 0 {
		b.WriteString("e-")
		e = -e
	} else {
		b.WriteString("e+")
	}
	fmt.Fprintf(&b, "%02d", e)
	return b.String()
}
