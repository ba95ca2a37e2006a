package storage

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"spesegen/internal/core"
)

var errEmptyStatement = errors.New("empty statement")

// readOnlyKeywords are the leading keywords accepted on the interactive path.
var readOnlyKeywords = map[string]bool{
	"SELECT": true,
	"WITH":   true,
}

// CheckReadOnly accepts a single statement whose first keyword is SELECT or
// WITH. Comments and one trailing semicolon are ignored.
func CheckReadOnly(sqlText string) error {
	stmts := splitStatements(sqlText)
	switch {
	case len(stmts) == 0:
		return errEmptyStatement
	case len(stmts) > 1:
		return fmt.Errorf("%w: multiple statements", core.ErrReadOnly)
	}

	kw := firstKeyword(stmts[0])
	if !readOnlyKeywords[kw] {
		return fmt.Errorf("%w: got %q", core.ErrReadOnly, kw)
	}
	return nil
}

// splitStatements strips comments and splits on semicolons outside string
// literals and quoted identifiers. Blank statements are dropped.
func splitStatements(s string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if stmt := strings.TrimSpace(cur.String()); stmt != "" {
			out = append(out, stmt)
		}
		cur.Reset()
	}

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == '-' && i+1 < len(rs) && rs[i+1] == '-':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
			cur.WriteRune(' ')
		case c == '/' && i+1 < len(rs) && rs[i+1] == '*':
			i += 2
			for i < len(rs) && !(rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '/') {
				i++
			}
			i++
			cur.WriteRune(' ')
		case c == '\'' || c == '"' || c == '`' || c == '[':
			end := c
			if c == '[' {
				end = ']'
			}
			cur.WriteRune(c)
			for i++; i < len(rs); i++ {
				cur.WriteRune(rs[i])
				if rs[i] == end {
					// doubled quote is an escaped quote
					if end != ']' && i+1 < len(rs) && rs[i+1] == end {
						i++
						cur.WriteRune(rs[i])
						continue
					}
					break
				}
			}
		case c == ';':
			flush()
		default:
			cur.WriteRune(c)
		}
	}
	flush()

	return out
}

func firstKeyword(stmt string) string {
	stmt = strings.TrimLeftFunc(stmt, func(r rune) bool {
		return unicode.IsSpace(r) || r == '('
	})
	end := strings.IndexFunc(stmt, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if end < 0 {
		end = len(stmt)
	}
	return strings.ToUpper(stmt[:end])
}
