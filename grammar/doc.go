/*
Package grammar implements the front end of the WhileProc language:
a lexer, a hand-written recursive descent parser and the AST node types.

Lexing

Source text is cleaned of comments first (line comments starting a line,
block comments starting a line, and single-line inline block comments).
The remaining text is cut into tokens by a DFA lexer, where every
character out of

   + - / * ^ , : = < { } ( ) ;

forms a token of its own and everything between symbols and whitespace
forms a word. Words are classified at parse time, not at lex time.

Parsing

The parser follows the grammar

   P → S { ';' S }
   S → 'proc' id '(' L ')' '{' P '}'
     | 'if' C '{' P '}' 'else' '{' P '}'
     | 'while' C '{' P '}'
     | 'print' C
     | C
   L → ε | id { ',' id }
   C → E [ ('<' | '=') E ]
   E → T { ('+' | '-') T }
   T → F { ('*' | '/') F }
   F → A [ '^' F ]
   A → '(' C ')' | id ':' '=' C | id '(' R ')' | id | number
   R → ε | C { ',' C }

Parse errors are not reported through a separate channel. Every parse
function returns either a node or an *ErrorMessage, which is a node
itself. The caller checks and forwards it, and the top-level result
may be evaluated like any other program: it prints the error text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'whileproc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("whileproc.grammar")
}
