package evaluator

import "strings"

// Output is the text a program has printed so far. Output is immutable:
// appending returns a new Output sharing all previous text. The nil
// *Output is the empty output.
type Output struct {
	prev *Output
	text string
	size int
}

// Append returns o followed by s.
func (o *Output) Append(s string) *Output {
	if s == "" {
		return o
	}
	return &Output{prev: o, text: s, size: o.Len() + len(s)}
}

// Len returns the length of the output in bytes.
func (o *Output) Len() int {
	if o == nil {
		return 0
	}
	return o.size
}

func (o *Output) String() string {
	if o == nil {
		return ""
	}
	var chunks []string
	for c := o; c != nil; c = c.prev {
		chunks = append(chunks, c.text)
	}
	var b strings.Builder
	b.Grow(o.size)
	for i := len(chunks) - 1; i >= 0; i-- {
		b.WriteString(chunks[i])
	}
	return b.String()
}
