package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Field describes a single prompted form field
type Field struct {
	Name  string
	Label string
	// Hint is printed next to the label, e.g. the known account types
	Hint string
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Bool prompts for y/n input returning a bool
func Bool(in io.Reader, out io.Writer) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "(y/n): ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "n":
			return false, nil
		case "y":
			return true, nil
		default:
			fmt.Fprintln(out, "Input must be \"y\" or \"n\"")
		}
	}
}

// Form prompts for field values on first access and remembers the answers
type Form struct {
	reader  *bufio.Reader
	out     io.Writer
	fields  map[string]Field
	answers map[string]string
}

// NewForm returns a Form reading answers from in and writing prompts to out
func NewForm(in io.Reader, out io.Writer, fields ...Field) *Form {
	f := &Form{
		reader:  bufio.NewReader(in),
		out:     out,
		fields:  make(map[string]Field, len(fields)),
		answers: make(map[string]string, len(fields)),
	}
	for _, field := range fields {
		f.fields[field.Name] = field
	}
	return f
}

// Value prompts for the named field, unknown fields and read errors yield ""
func (f *Form) Value(name string) string {
	if v, ok := f.answers[name]; ok {
		return v
	}
	field, ok := f.fields[name]
	if !ok {
		return ""
	}

	label := field.Label
	if label == "" {
		label = field.Name
	}
	if field.Hint != "" {
		fmt.Fprintf(f.out, "%s [%s]: ", label, field.Hint)
	} else {
		fmt.Fprintf(f.out, "%s: ", label)
	}

	text, err := f.reader.ReadString('\n')
	if err != nil && text == "" {
		f.answers[name] = ""
		return ""
	}
	// only the line terminator is stripped, the value itself is kept as typed
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	f.answers[name] = text
	return text
}
