package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/mattn/go-isatty"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
	"github.com/information-sharing-networks/oaps-proof/internal/proof"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// printer writes the human-readable status lines.
// Colors are only used when w is a terminal. The first write error is kept in err.
type printer struct {
	w   io.Writer
	err error

	good  *color.Color
	bad   *color.Color
	label *color.Color
	del   *color.Color
	ins   *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:     w,
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		label: color.New(color.Bold),
		del:   color.New(color.FgRed),
		ins:   color.New(color.FgGreen),
	}

	useColor := !color.NoColor && isTerminal(w)
	for _, c := range []*color.Color{p.good, p.bad, p.label, p.del, p.ins} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) header(text string) {
	p.printf("%s\n", p.good.Sprint(text))
}

func (p *printer) failure(text string) {
	p.printf("%s\n", p.bad.Sprint(text))
}

func (p *printer) field(name, value string) {
	p.printf("%s %s\n", p.label.Sprint(name+":"), value)
}

func (p *printer) errorLine(err error) {
	p.printf("%s %s\n", p.bad.Sprint("Error:"), err)
}

// segments prints a diff inline, deletions as [-text-] and insertions as {+text+}.
func (p *printer) segments(segments []proof.DiffSegment) {
	for _, s := range segments {
		switch s.Op {
		case proof.DiffDelete:
			p.printf("%s", p.del.Sprint("[-"+s.Text+"-]"))
		case proof.DiffInsert:
			p.printf("%s", p.ins.Sprint("{+"+s.Text+"+}"))
		default:
			p.printf("%s", s.Text)
		}
	}
	p.printf("\n")
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return crypto.WrapEncodingError(err, "failed to encode output")
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return crypto.WrapIOError(err, "failed to write output")
	}
	return nil
}

// hashOutput is the JSON form of a generated proof hash.
type hashOutput struct {
	InputFile string `json:"inputFile"`
	Profile   string `json:"profile"`
	Hash      string `json:"hash"`
	Canonical string `json:"canonical"`
}

func newHashOutput(r *proof.Result) hashOutput {
	return hashOutput{
		InputFile: r.Source,
		Profile:   r.Profile.String(),
		Hash:      r.Hash,
		Canonical: string(r.Canonical),
	}
}

type verifyOutput struct {
	InputFile string `json:"inputFile"`
	Profile   string `json:"profile"`
	Hash      string `json:"hash"`
	Verified  bool   `json:"verified"`
}

func newVerifyOutput(r *proof.Result, verified bool) verifyOutput {
	return verifyOutput{
		InputFile: r.Source,
		Profile:   r.Profile.String(),
		Hash:      r.Hash,
		Verified:  verified,
	}
}

type batchItemOutput struct {
	InputFile string `json:"inputFile"`
	Hash      string `json:"hash,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type batchOutput struct {
	RunID   string            `json:"runId"`
	Profile string            `json:"profile"`
	Files   int               `json:"files"`
	Failed  int               `json:"failed"`
	Results []batchItemOutput `json:"results"`
}

type diffSegmentOutput struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

type diffOutput struct {
	Identical bool                `json:"identical"`
	From      hashOutput          `json:"from"`
	To        hashOutput          `json:"to"`
	Segments  []diffSegmentOutput `json:"segments,omitempty"`
}

func diffOpName(op proof.DiffOp) string {
	switch op {
	case proof.DiffDelete:
		return "delete"
	case proof.DiffInsert:
		return "insert"
	default:
		return "equal"
	}
}
