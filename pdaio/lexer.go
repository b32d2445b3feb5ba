package pdaio

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of definition files. Comments and white space are skipped by the lexer.
const (
	wordToken int = iota + 1
	newlineToken
)

var (
	lexer    *lexmachine.Lexer
	lexerErr error
	initOnce sync.Once // monitors one-time creation of the lexer
)

// definitionLexer creates the lexmachine lexer for definition files, once.
func definitionLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`#[^\n]*`), skip)
		lexer.Add([]byte(`( |\t|\r)+`), skip)
		lexer.Add([]byte(`\n`), makeToken(newlineToken))
		lexer.Add([]byte(`[^ \t\r\n#]+`), makeToken(wordToken))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// line is a non-empty line of a definition file, split into tokens.
type line struct {
	no     int // line number within the file, 1…n
	tokens []string
}

// tokenizeLines splits input into lines of tokens, stripping comments and dropping
// empty lines.
func tokenizeLines(input []byte) ([]line, error) {
	lx, err := definitionLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var lines []line
	current := line{no: 1}
	flush := func() {
		if len(current.tokens) > 0 {
			lines = append(lines, current)
		}
	}
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if _, is := err.(*machines.UnconsumedInput); is {
				return nil, &FormatError{Line: current.no, Msg: fmt.Sprintf("unreadable input: %v", err)}
			}
			return nil, err
		}
		token := tok.(*lexmachine.Token)
		switch token.Type {
		case newlineToken:
			flush()
			current = line{no: current.no + 1}
		case wordToken:
			current.tokens = append(current.tokens, token.Value.(string))
		}
	}
	flush()
	tracer().Debugf("definition has %d non-empty lines", len(lines))
	return lines, nil
}
