package grammar

import "fmt"

// tokenStream is a cursor over an immutable slice of tokens. Consuming a
// token advances the cursor.
type tokenStream struct {
	tokens []string
	pos    int
}

func newTokenStream(tokens []string) *tokenStream {
	return &tokenStream{tokens: tokens}
}

// peek returns the next token without consuming it. At the end of the input
// it returns the empty string, which never is a valid token.
func (ts *tokenStream) peek() string {
	if ts.pos >= len(ts.tokens) {
		return ""
	}
	return ts.tokens[ts.pos]
}

func (ts *tokenStream) atEOF() bool {
	return ts.pos >= len(ts.tokens)
}

// pop consumes the next token and returns it.
func (ts *tokenStream) pop() string {
	t := ts.peek()
	if !ts.atEOF() {
		ts.pos++
	}
	return t
}

// expect consumes token s if it is the next one in the stream. Otherwise
// the stream is left untouched and an error node is returned.
func (ts *tokenStream) expect(s string) *ErrorMessage {
	if !ts.atEOF() && ts.peek() == s {
		ts.pos++
		return nil
	}
	return &ErrorMessage{Text: fmt.Sprintf("Expected a '%s'", s)}
}

// rest returns the tokens not consumed yet.
func (ts *tokenStream) rest() []string {
	if ts.atEOF() {
		return nil
	}
	return ts.tokens[ts.pos:]
}
