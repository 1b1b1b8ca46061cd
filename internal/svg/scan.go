package svg

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

var (
	errNoMoveTo  = errors.New("path data must begin with a moveto")
	errNoCommand = errors.New("coordinates without a command")
	errArcFlag   = errors.New("arc flag must be 0 or 1")
)

// Scan tokenizes path data into commands. Repeated operand groups without a
// letter repeat the previous command, except that groups following a moveto
// are linetos.
func Scan(d string) ([]Command, error) {
	s := scanner{buf: []byte(d)}
	return s.scan()
}

type scanner struct {
	buf []byte
	pos int
}

func isSep(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'
}

func (s *scanner) skip() {
	for s.pos < len(s.buf) && isSep(s.buf[s.pos]) {
		s.pos++
	}
}

func (s *scanner) scan() ([]Command, error) {
	var cmds []Command
	var cur CommandType
	var rel bool
	for {
		s.skip()
		if s.pos >= len(s.buf) {
			return cmds, nil
		}
		start := s.pos
		c := s.buf[start]
		switch {
		case isLetter(c):
			t := CommandType(c &^ 0x20)
			if _, ok := arity[t]; !ok {
				return nil, pathError(ErrUnsupportedCommand, string(c), start)
			}
			if len(cmds) == 0 && t != MoveTo {
				return nil, &Error{Kind: ErrMalformedPath, Input: string(c), Offset: start, Err: errNoMoveTo}
			}
			cur, rel = t, c >= 'a'
			s.pos++
			if t == ClosePath {
				cmds = append(cmds, Command{Type: ClosePath, Relative: rel})
				continue
			}
		case isNumberStart(c):
			if cur == 0 || cur == ClosePath {
				return nil, &Error{Kind: ErrMalformedPath, Input: s.token(start), Offset: start, Err: errNoCommand}
			}
			if cur == MoveTo {
				cur = LineTo
			}
		default:
			r, _ := utf8.DecodeRune(s.buf[start:])
			return nil, pathError(ErrMalformedPath, string(r), start)
		}
		cmd, err := s.group(cur, rel, start)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

// group reads one operand group for t. start is where the group (or its
// command letter) begins.
func (s *scanner) group(t CommandType, rel bool, start int) (Command, error) {
	args := make([]float64, t.Arity())
	for i := range args {
		s.skip()
		if s.pos >= len(s.buf) || isLetter(s.buf[s.pos]) {
			in := strings.TrimSpace(string(s.buf[start:s.pos]))
			return Command{}, pathError(ErrTruncatedCommand, in, start)
		}
		var err error
		if t == ArcTo && (i == 3 || i == 4) {
			args[i], err = s.flag()
		} else {
			args[i], err = s.number()
		}
		if err != nil {
			return Command{}, err
		}
	}
	return Command{Type: t, Relative: rel, Args: args}, nil
}

// number reads one numeric token. Token boundaries follow the path grammar:
// a sign, a second decimal point or a letter ends the number.
func (s *scanner) number() (float64, error) {
	start := s.pos
	_, n := pstrconv.ParseFloat(s.buf[start:])
	if n == 0 {
		tok := s.token(start)
		_, err := strconv.ParseFloat(tok, 64)
		return 0, &Error{Kind: ErrInvalidNumber, Input: tok, Offset: start, Err: err}
	}
	if end := start + n; end < len(s.buf) && (s.buf[end] == 'e' || s.buf[end] == 'E') {
		// an exponent marker without digits
		tok := string(s.buf[start:s.exponentEnd(end)])
		_, err := strconv.ParseFloat(tok, 64)
		return 0, &Error{Kind: ErrInvalidNumber, Input: tok, Offset: start, Err: err}
	}
	tok := string(s.buf[start : start+n])
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &Error{Kind: ErrInvalidNumber, Input: tok, Offset: start, Err: err}
	}
	s.pos += n
	return v, nil
}

// exponentEnd returns the end of an exponent starting at the marker at i.
func (s *scanner) exponentEnd(i int) int {
	i++
	if i < len(s.buf) && (s.buf[i] == '+' || s.buf[i] == '-') {
		i++
	}
	for i < len(s.buf) && '0' <= s.buf[i] && s.buf[i] <= '9' {
		i++
	}
	return i
}

// flag reads a single-character arc flag, which needs no separator.
func (s *scanner) flag() (float64, error) {
	switch s.buf[s.pos] {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	}
	return 0, &Error{Kind: ErrMalformedPath, Input: s.token(s.pos), Offset: s.pos, Err: errArcFlag}
}

// token returns the run of bytes from start up to the next separator or
// letter, for error reporting.
func (s *scanner) token(start int) string {
	end := start + 1
	for end < len(s.buf) && !isSep(s.buf[end]) && !isLetter(s.buf[end]) {
		end++
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return string(s.buf[start:end])
}
