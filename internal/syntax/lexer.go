package syntax

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/typeshift/internal/ast"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokPrivateName
	tokNumber
	tokBigInt
	tokString
	tokTemplate       // `...` with no substitutions
	tokTemplateHead   // `...${
	tokTemplateMiddle // }...${
	tokTemplateTail   // }...`
	tokRegex
	tokPunct
)

// token is one lexeme. For template pieces text holds the raw quasi without
// delimiters; for everything else it is the source spelling.
type token struct {
	kind     tokenKind
	text     string
	value    string // decoded contents of string literals
	pos      ast.Pos
	off, end int
	nl       bool // a line terminator precedes the token
	blank    bool // a blank line precedes the token or its comments
	comments []string
}

// Punctuators in longest-first order. '>' is always a token of its own; the
// parser joins adjacent '>' and '=' into shift and comparison operators so
// that nested type argument lists close correctly.
var puncts = []string{
	"...", "===", "!==", "**=", "<<=", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"++", "--", "**", "<<", "&&", "||", "??", "?.",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@",
}

// Words after which a '/' starts a regular expression.
var regexAfterWord = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

type lexer struct {
	src       string
	off       int
	line      int
	lineStart int
	braces    []bool // true marks a template interpolation
	toks      []token
}

func tokenize(src string) ([]token, error) {
	l := &lexer{src: src, line: 1}
	if strings.HasPrefix(src, "#!") {
		for l.off < len(src) && src[l.off] != '\n' {
			l.off++
		}
	}
	for {
		comments, nl, blank, err := l.skipTrivia()
		if err != nil {
			return nil, err
		}
		if l.off >= len(l.src) {
			l.toks = append(l.toks, token{
				kind: tokEOF, pos: l.pos(), off: l.off, end: l.off,
				nl: true, blank: blank, comments: comments,
			})
			return l.toks, nil
		}
		tok, err := l.scan()
		if err != nil {
			return nil, err
		}
		tok.nl, tok.blank, tok.comments = nl || len(l.toks) == 0, blank, comments
		l.toks = append(l.toks, tok)
	}
}

func (l *lexer) pos() ast.Pos {
	return ast.Pos{Line: l.line, Column: l.off - l.lineStart + 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	p := l.pos()
	return &Error{Line: p.Line, Column: p.Column, Message: fmt.Sprintf(format, args...)}
}

// advance moves to off, keeping line accounting for any newlines crossed.
func (l *lexer) advance(to int) {
	for i := l.off; i < to; i++ {
		if l.src[i] == '\n' {
			l.line++
			l.lineStart = i + 1
		}
	}
	l.off = to
}

func (l *lexer) skipTrivia() (comments []string, nl, blank bool, err error) {
	run := 0
	for l.off < len(l.src) {
		c := l.src[l.off]
		switch {
		case c == '\n':
			nl = true
			run++
			if run >= 2 {
				blank = true
			}
			l.advance(l.off + 1)
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.off++
		case c == '/' && l.peekAt(1) == '/':
			end := strings.IndexByte(l.src[l.off:], '\n')
			if end < 0 {
				end = len(l.src) - l.off
			}
			comments = append(comments, strings.TrimRight(l.src[l.off:l.off+end], "\r"))
			l.off += end
			run = 0
		case c == '/' && l.peekAt(1) == '*':
			end := strings.Index(l.src[l.off+2:], "*/")
			if end < 0 {
				return nil, false, false, l.errorf("unterminated comment")
			}
			stop := l.off + 2 + end + 2
			text := l.src[l.off:stop]
			if strings.Contains(text, "\n") {
				nl = true
			}
			comments = append(comments, text)
			l.advance(stop)
			run = 0
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.off:])
			if r == '\u2028' || r == '\u2029' {
				nl = true
				l.off += size
			} else if r == '\u00a0' || r == '\ufeff' || unicode.Is(unicode.Zs, r) {
				l.off += size
			} else {
				return comments, nl, blank, nil
			}
		default:
			return comments, nl, blank, nil
		}
	}
	return comments, nl, blank, nil
}

func (l *lexer) peekAt(n int) byte {
	if l.off+n < len(l.src) {
		return l.src[l.off+n]
	}
	return 0
}

func (l *lexer) scan() (token, error) {
	start, pos := l.off, l.pos()
	tok := token{pos: pos, off: start}
	c := l.src[l.off]

	switch {
	case isIdentStart(l.src[l.off:]):
		l.off = scanIdent(l.src, l.off)
		tok.kind = tokName
	case c == '#' && isIdentStart(l.src[l.off+1:]):
		l.off = scanIdent(l.src, l.off+1)
		tok.kind = tokPrivateName
	case isDigit(c) || (c == '.' && isDigit(l.peekAt(1))):
		kind, err := l.scanNumber()
		if err != nil {
			return tok, err
		}
		tok.kind = kind
	case c == '"' || c == '\'':
		if err := l.scanString(c); err != nil {
			return tok, err
		}
		tok.kind = tokString
		tok.value = unquote(l.src[start:l.off])
	case c == '`':
		l.off++
		kind, err := l.scanTemplate(true)
		if err != nil {
			return tok, err
		}
		tok.kind = kind
	case c == '}' && len(l.braces) > 0 && l.braces[len(l.braces)-1]:
		l.braces = l.braces[:len(l.braces)-1]
		l.off++
		kind, err := l.scanTemplate(false)
		if err != nil {
			return tok, err
		}
		tok.kind = kind
	case c == '/' && l.regexAllowed():
		if err := l.scanRegex(); err != nil {
			return tok, err
		}
		tok.kind = tokRegex
	default:
		p := matchPunct(l.src[l.off:])
		if p == "" {
			r, _ := utf8.DecodeRuneInString(l.src[l.off:])
			return tok, l.errorf("unexpected character %q", r)
		}
		l.off += len(p)
		tok.kind = tokPunct
		switch p {
		case "{":
			l.braces = append(l.braces, false)
		case "}":
			if len(l.braces) > 0 {
				l.braces = l.braces[:len(l.braces)-1]
			}
		}
	}

	end := l.off
	l.off = start
	l.advance(end)
	tok.end = end
	switch tok.kind {
	case tokTemplate, tokTemplateTail:
		tok.text = l.src[start+1 : end-1]
	case tokTemplateHead, tokTemplateMiddle:
		tok.text = l.src[start+1 : end-2]
		l.braces = append(l.braces, true)
	default:
		tok.text = l.src[start:end]
	}
	return tok, nil
}

func matchPunct(s string) string {
	for _, p := range puncts {
		if !strings.HasPrefix(s, p) {
			continue
		}
		if p == "?." && len(s) > 2 && isDigit(s[2]) {
			continue
		}
		return p
	}
	return ""
}

func (l *lexer) regexAllowed() bool {
	if len(l.toks) == 0 {
		return true
	}
	prev := l.toks[len(l.toks)-1]
	switch prev.kind {
	case tokPunct:
		return prev.text != ")" && prev.text != "]" && prev.text != "}"
	case tokName:
		return regexAfterWord[prev.text]
	case tokTemplateHead, tokTemplateMiddle:
		return true
	}
	return false
}

func (l *lexer) scanNumber() (tokenKind, error) {
	s := l.src
	i := l.off
	if s[i] == '0' && i+1 < len(s) && strings.IndexByte("xXoObB", s[i+1]) >= 0 {
		i += 2
		for i < len(s) && (isHexDigit(s[i]) || s[i] == '_') {
			i++
		}
	} else {
		for i < len(s) && (isDigit(s[i]) || s[i] == '_') {
			i++
		}
		if i < len(s) && s[i] == '.' {
			i++
			for i < len(s) && (isDigit(s[i]) || s[i] == '_') {
				i++
			}
		}
		if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			if j < len(s) && isDigit(s[j]) {
				i = j
				for i < len(s) && (isDigit(s[i]) || s[i] == '_') {
					i++
				}
			}
		}
	}
	kind := tokNumber
	if i < len(s) && s[i] == 'n' {
		i++
		kind = tokBigInt
	}
	l.off = i
	if isIdentStart(s[i:]) || (i < len(s) && isDigit(s[i])) {
		return kind, l.errorf("identifier starts immediately after numeric literal")
	}
	return kind, nil
}

func (l *lexer) scanString(quote byte) error {
	i := l.off + 1
	for i < len(l.src) {
		switch c := l.src[i]; c {
		case quote:
			l.off = i + 1
			return nil
		case '\\':
			i += 2
			if i-1 < len(l.src) && l.src[i-1] == '\r' && i < len(l.src) && l.src[i] == '\n' {
				i++
			}
		case '\n', '\r':
			return l.errorf("unterminated string literal")
		default:
			i++
		}
	}
	return l.errorf("unterminated string literal")
}

// scanTemplate scans a template piece after its opening '`' or '}'.
func (l *lexer) scanTemplate(first bool) (tokenKind, error) {
	i := l.off
	for i < len(l.src) {
		switch l.src[i] {
		case '`':
			l.off = i + 1
			if first {
				return tokTemplate, nil
			}
			return tokTemplateTail, nil
		case '\\':
			i += 2
		case '$':
			if i+1 < len(l.src) && l.src[i+1] == '{' {
				l.off = i + 2
				if first {
					return tokTemplateHead, nil
				}
				return tokTemplateMiddle, nil
			}
			i++
		default:
			i++
		}
	}
	return 0, l.errorf("unterminated template literal")
}

func (l *lexer) scanRegex() error {
	i := l.off + 1
	inClass := false
	for {
		if i >= len(l.src) || l.src[i] == '\n' || l.src[i] == '\r' {
			return l.errorf("unterminated regular expression")
		}
		c := l.src[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			break
		}
		i++
	}
	i++
	for i < len(l.src) && isIdentPart(l.src[i:]) {
		_, size := utf8.DecodeRuneInString(l.src[i:])
		i += size
	}
	l.off = i
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c < utf8.RuneSelf {
		return c == '$' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func isIdentPart(s string) bool {
	if isIdentStart(s) {
		return true
	}
	if s == "" {
		return false
	}
	if isDigit(s[0]) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || r == '\u200c' || r == '\u200d'
}

func scanIdent(s string, i int) int {
	for i < len(s) && isIdentPart(s[i:]) {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// unquote decodes a quoted string literal. Malformed escapes are kept as
// written; the raw spelling is what gets printed.
func unquote(raw string) string {
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\r':
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if i+2 < len(body) {
				if v, err := strconv.ParseUint(body[i+1:i+3], 16, 8); err == nil {
					b.WriteRune(rune(v))
					i += 2
					continue
				}
			}
			b.WriteByte(e)
		case 'u':
			hex, n := "", 0
			if i+1 < len(body) && body[i+1] == '{' {
				if end := strings.IndexByte(body[i:], '}'); end > 0 {
					hex, n = body[i+2:i+end], end
				}
			} else if i+4 < len(body) {
				hex, n = body[i+1:i+5], 4
			}
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil && hex != "" {
				b.WriteRune(rune(v))
				i += n
				continue
			}
			b.WriteByte(e)
		default:
			b.WriteByte(e)
		}
	}
	return b.String()
}
