package grammar

import (
	"regexp"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Comments are removed by textual substitution before tokenizing. Order
// matters: leading whitespace first, so that comments indented in the source
// do count as starting a line.
var (
	leadingSpace  = regexp.MustCompile(`(?m)^[\s\v]*`)
	lineComment   = regexp.MustCompile(`(?m)^//.*(\n|$)`)
	blockComment  = regexp.MustCompile(`(?ms)^/\*.*?\*/`)
	inlineComment = regexp.MustCompile(`/\*.*?\*/`)
)

// StripComments removes comments from WhileProc source text.
// A line comment has to start a line. A multi-line block comment has to
// start a line as well, everything else in /* … */ must not span lines.
func StripComments(source string) string {
	s := leadingSpace.ReplaceAllString(source, "")
	s = lineComment.ReplaceAllString(s, "")
	s = blockComment.ReplaceAllString(s, "")
	s = inlineComment.ReplaceAllString(s, "")
	return s
}

// --- Tokenizer -------------------------------------------------------------

// Token types produced by the DFA.
const (
	symbolTok int = iota + 1
	wordTok
)

var lexerOnce sync.Once // monitors one-time creation of the lexer
var wpLexer *lexmachine.Lexer

func initLexer() {
	lexerOnce.Do(func() {
		var err error
		tracer().Infof("Creating lexer")
		if wpLexer, err = newLexer(); err != nil {
			panic("Cannot create lexer: " + err.Error())
		}
	})
}

func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[+\-*/\^,:=<{}();]`), makeToken(symbolTok))
	lexer.Add([]byte("[^ \t\n\r\v\f+\\-*/\\^,:=<{}();]+"), makeToken(wordTok))
	lexer.Add([]byte("[ \t\n\r\v\f]+"), skip) // skip whitespace
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
}

func makeToken(toktype int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(toktype, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Lex strips comments from source and splits the rest into tokens.
// Lex never fails: input the parser cannot make sense of will surface as
// a parse error later.
func Lex(source string) []string {
	initLexer()
	text := StripComments(source)
	scanner, err := wpLexer.Scanner([]byte(text))
	if err != nil {
		tracer().Errorf("cannot scan input: %v", err)
		return nil
	}
	var tokens []string
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Errorf("lexer skipping unconsumed input at %d", ui.FailTC)
			scanner.TC = ui.FailTC
			continue
		} else if err != nil {
			tracer().Errorf("lexer: %v", err)
			break
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, token.Value.(string))
	}
	tracer().Debugf("lexer produced %d tokens", len(tokens))
	return tokens
}
