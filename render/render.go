package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	sent "github.com/revelaction/sentcomp/sentence"
)

const (
	Defaultformat = "text"
)

var (
	Off = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "compressed", "table", "conll"}
}

// IsSupported tells whether format is one of SupportedFormats.
func IsSupported(format string) bool {
	for _, f := range SupportedFormats() {
		if f == format {
			return true
		}
	}
	return false
}

type Renderer struct {
	HasColor bool

	HasPrefix bool

	// Format determines how an example is written
	//
	// text: the whole sentence, deleted tokens dimmed (or in brackets
	// without color)
	// compressed: only the kept tokens
	// table: one token per line with tag, stem and label
	// conll: tab separated form, tag, stem and label, a blank line after
	// each example
	Format string

	Out io.Writer
}

func NewRenderer() *Renderer {
	return &Renderer{
		Format: Defaultformat,
		Out:    os.Stdout,
	}
}

// Example writes a single example in the Renderer Format.
func (r *Renderer) Example(ex sent.Example) {
	switch r.Format {
	case "compressed":
		fmt.Fprintf(r.Out, "%s%s\n", r.prefix(ex), r.compressed(ex))
	case "table":
		fmt.Fprintf(r.Out, "%s%s\n", r.prefix(ex), r.text(ex))
		r.table(ex)
	case "conll":
		r.conll(ex)
	default:
		fmt.Fprintf(r.Out, "%s%s\n", r.prefix(ex), r.text(ex))
	}
}

func (r *Renderer) text(ex sent.Example) string {
	words := make([]string, len(ex.Tokens))
	for i, t := range ex.Tokens {
		words[i] = colorToken(t, r.HasColor)
	}
	return strings.Join(words, " ")
}

func (r *Renderer) compressed(ex sent.Example) string {
	var words []string
	for _, t := range ex.Kept() {
		words = append(words, t.Form)
	}
	return strings.Join(words, " ")
}

func (r *Renderer) table(ex sent.Example) {
	for i, t := range ex.Tokens {
		fmt.Fprintf(r.Out, "%4d %20q %15q %8s %s\n", i, t.Form, t.Stem, t.Tag, labelString(t.Label, r.HasColor))
	}
}

func (r *Renderer) conll(ex sent.Example) {
	for _, t := range ex.Tokens {
		fmt.Fprintf(r.Out, "%s\t%s\t%s\t%s\n", t.Form, t.Tag, t.Stem, t.Label)
	}
	fmt.Fprintln(r.Out)
}

func colorToken(t sent.LabeledToken, hasColor bool) string {
	if !hasColor {
		if t.Label == sent.Delete {
			return "[" + t.Form + "]"
		}
		return t.Form
	}

	if t.Label == sent.Keep {
		return Green256 + t.Form + Off
	}

	return Grey256 + t.Form + Off
}

func labelString(l sent.Label, hasColor bool) string {
	if !hasColor {
		return l.String()
	}

	if l == sent.Keep {
		return Green256 + l.String() + Off
	}
	return Grey256 + l.String() + Off
}

func (r *Renderer) prefix(ex sent.Example) string {
	if !r.HasPrefix {
		return ""
	}

	if ex.Unmatched > 0 {
		return fmt.Sprintf("%6d %s%2d%s ✍  ", ex.Id, Yellow256, ex.Unmatched, Off)
	}

	return fmt.Sprintf("%6d    ✍  ", ex.Id)
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			return
		}
	}

	r.Format = supported[0]
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
