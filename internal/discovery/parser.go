package discovery

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser recognizes test declarations of the form
//
//	bool test_name();
//
// Whitespace may appear between tokens; the parameter list must be empty and
// the declaration must end with a semicolon. Anything after the semicolon is
// ignored so trailing comments are allowed.
type Parser struct {
	returnType string
}

// NewParser creates a new Parser for declarations returning returnType
func NewParser(returnType string) *Parser {
	return &Parser{returnType: returnType}
}

// ParseDeclaration returns the declared test name, or false if the line is
// not a test declaration.
func (p *Parser) ParseDeclaration(line string) (string, bool) {
	lx := lexer{src: strings.TrimSpace(line)}

	if !lx.keyword(p.returnType) {
		return "", false
	}
	if lx.skipSpace() == 0 {
		return "", false
	}
	name := lx.identifier()
	if name == "" {
		return "", false
	}
	for _, punct := range []rune{'(', ')', ';'} {
		lx.skipSpace()
		if !lx.accept(punct) {
			return "", false
		}
	}
	return name, true
}

// lexer walks a single trimmed line token by token
type lexer struct {
	src string
	pos int
}

func (l *lexer) peek() (rune, int) {
	if l.pos >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.src[l.pos:])
}

func (l *lexer) keyword(word string) bool {
	if word == "" || !strings.HasPrefix(l.src[l.pos:], word) {
		return false
	}
	l.pos += len(word)
	return true
}

func (l *lexer) skipSpace() int {
	start := l.pos
	for {
		r, size := l.peek()
		if size == 0 || !unicode.IsSpace(r) {
			return l.pos - start
		}
		l.pos += size
	}
}

func (l *lexer) identifier() string {
	start := l.pos
	for {
		r, size := l.peek()
		if size == 0 {
			break
		}
		if r == '_' || unicode.IsLetter(r) || (l.pos > start && unicode.IsDigit(r)) {
			l.pos += size
			continue
		}
		break
	}
	return l.src[start:l.pos]
}

func (l *lexer) accept(want rune) bool {
	r, size := l.peek()
	if size == 0 || r != want {
		return false
	}
	l.pos += size
	return true
}
