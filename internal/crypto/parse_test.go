package crypto

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`{"name":"proof","n":1.50,"tags":["a","b"],"ok":true,"none":null,"dup":1,"dup":2}`))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if v.Kind() != KindObject {
		t.Fatalf("Kind() = %s, want object", v.Kind())
	}

	// members keep source order, including duplicates
	members := v.Members()
	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}
	if got, want := strings.Join(names, ","), "name,n,tags,ok,none,dup,dup"; got != want {
		t.Errorf("member names = %s, want %s", got, want)
	}

	n, ok := v.Lookup("n")
	if !ok {
		t.Fatal("Lookup(n) not found")
	}
	if n.Literal() != "1.50" {
		t.Errorf("number literal = %q, want the source text %q", n.Literal(), "1.50")
	}
	if !n.IsFloat() {
		t.Errorf("IsFloat() = false for 1.50")
	}

	tags, _ := v.Lookup("tags")
	if tags.Len() != 2 || tags.Index(1).Str() != "b" {
		t.Errorf("tags = %v, want [a b]", tags.Items())
	}

	okVal, _ := v.Lookup("ok")
	if okVal.Kind() != KindBool || !okVal.Bool() {
		t.Errorf("ok = %v, want true", okVal)
	}

	none, _ := v.Lookup("none")
	if none.Kind() != KindNull {
		t.Errorf("none kind = %s, want null", none.Kind())
	}

	dup, _ := v.Lookup("dup")
	if dup.Literal() != "1" {
		t.Errorf("Lookup(dup) = %s, want the first member", dup.Literal())
	}
}

func TestParse_MemberNamesSurviveValues(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"a":"x"}`, `{"a":"x"}`},
		{`{"a":true}`, `{"a":true}`},
		{`{"a":null}`, `{"a":null}`},
		{`{"a":1}`, `{"a":1}`},
		{`{"a":[1]}`, `{"a":[1]}`},
		{`{"b":2,"a":1}`, `{"a":1,"b":2}`},
		{`{"outer":{"inner":{"leaf":"v"},"list":[{"k":false}]},"z":"last"}`, `{"outer":{"inner":{"leaf":"v"},"list":[{"k":false}]},"z":"last"}`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() returned error: %v", err)
			}
			got, err := Encode(v)
			if err != nil {
				t.Fatalf("Encode() returned error: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Encode(Parse(%s)) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t"},
		{"truncated object", `{"test": "value"`},
		{"trailing comma", `[1,2,]`},
		{"single quotes", `{'a':1}`},
		{"trailing data", `{} x`},
		{"second document", `{} {}`},
		{"NaN literal", `[NaN]`},
		{"Infinity literal", `[Infinity]`},
		{"leading zero", `[01]`},
		{"invalid utf-8", "\"\xff\""},
		{"lone surrogate escape", `"\ud800"`},
		{"unquoted key", `{a:1}`},
		{"comment", `{"a":1 /* c */}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if code := CodeOf(err); code != ErrCodeParse {
				t.Errorf("error code = %q, want %q (%v)", code, ErrCodeParse, err)
			}
		})
	}
}

func TestParseReader_ReadFailure(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, err := ParseReader(iotest.ErrReader(readErr))
	if err == nil {
		t.Fatal("ParseReader() expected error, got nil")
	}
	if code := CodeOf(err); code != ErrCodeIO {
		t.Errorf("error code = %q, want %q (%v)", code, ErrCodeIO, err)
	}
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, KindNull},
		{`true`, KindBool},
		{`false`, KindBool},
		{`-12.5e3`, KindNumber},
		{`"text"`, KindString},
		{`[]`, KindArray},
		{`{}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() returned error: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", v.Kind(), tt.kind)
			}
		})
	}
}
