package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Translation from the reference dialect. Each step is a pure string
// transformer that leaves single-quoted literals alone.

// ErrPlaceholderOrder is returned when ordinal placeholders do not appear as
// $1, $2, ... in text order. SQLite binds "?" positionally, so any other order
// would silently bind arguments to the wrong parameters.
var ErrPlaceholderOrder = errors.New("sqlite: placeholders out of order")

var (
	placeholderRe = regexp.MustCompile(`\$(\d+)`)
	nowRe         = regexp.MustCompile(`(?i)\bNOW\s*\(\s*\)`)
	returningRe   = regexp.MustCompile(`(?i)\bRETURNING\b`)
)

// segment is a run of SQL text that is either inside or outside a
// single-quoted literal.
type segment struct {
	text   string
	start  int
	quoted bool
}

// splitQuoted cuts sql into quoted and unquoted segments. Two consecutive
// quote characters inside a literal close and reopen it, so the text after
// them stays quoted.
func splitQuoted(sql string) []segment {
	var segs []segment
	start := 0
	quoted := false

	for i := 0; i < len(sql); i++ {
		if sql[i] != '\'' {
			continue
		}
		if quoted {
			segs = append(segs, segment{text: sql[start : i+1], start: start, quoted: true})
			start = i + 1
		} else {
			if i > start {
				segs = append(segs, segment{text: sql[start:i], start: start})
			}
			start = i
		}
		quoted = !quoted
	}
	if start < len(sql) {
		segs = append(segs, segment{text: sql[start:], start: start, quoted: quoted})
	}
	return segs
}

// mapUnquoted applies fn to every unquoted segment and reassembles sql.
func mapUnquoted(sql string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(sql))
	for _, s := range splitQuoted(sql) {
		if s.quoted {
			b.WriteString(s.text)
			continue
		}
		b.WriteString(fn(s.text))
	}
	return b.String()
}

// RewritePlaceholders replaces $1, $2, ... with "?". Argument order is kept
// as is, so placeholders must appear in ascending order, each exactly once.
func RewritePlaceholders(sql string) (string, error) {
	next := 1
	var orderErr error

	out := mapUnquoted(sql, func(s string) string {
		return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
			n, _ := strconv.Atoi(m[1:])
			if n != next && orderErr == nil {
				orderErr = fmt.Errorf("%w: found %s, expected $%d", ErrPlaceholderOrder, m, next)
			}
			next++
			return "?"
		})
	})
	if orderErr != nil {
		return "", orderErr
	}
	return out, nil
}

// StripReturning removes a trailing RETURNING clause. SQLite writes on this
// backend never return rows; callers that need the written row issue a
// follow-up read.
func StripReturning(sql string) string {
	cut := -1
	for _, s := range splitQuoted(sql) {
		if s.quoted {
			continue
		}
		locs := returningRe.FindAllStringIndex(s.text, -1)
		if len(locs) > 0 {
			cut = s.start + locs[len(locs)-1][0]
		}
	}
	if cut < 0 {
		return sql
	}
	return strings.TrimRight(sql[:cut], " \t\r\n")
}

// RewriteNow replaces NOW() with CURRENT_TIMESTAMP.
func RewriteNow(sql string) string {
	return mapUnquoted(sql, func(s string) string {
		return nowRe.ReplaceAllString(s, "CURRENT_TIMESTAMP")
	})
}

// Translate converts a reference-dialect statement into SQLite syntax.
func Translate(sql string) (string, error) {
	out, err := RewritePlaceholders(StripReturning(sql))
	if err != nil {
		return "", err
	}
	return RewriteNow(out), nil
}

var readKeywords = map[string]bool{
	"SELECT":  true,
	"WITH":    true,
	"PRAGMA":  true,
	"EXPLAIN": true,
	"VALUES":  true,
}

// IsRead reports whether sql is a row-returning statement, judged by its
// leading keyword.
func IsRead(sql string) bool {
	return readKeywords[leadingKeyword(sql)]
}

func leadingKeyword(sql string) string {
	s := strings.TrimLeft(sql, " \t\r\n(")
	for strings.HasPrefix(s, "--") {
		nl := strings.IndexByte(s, '\n')
		if nl < 0 {
			return ""
		}
		s = strings.TrimLeft(s[nl+1:], " \t\r\n(")
	}
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if end < 0 {
		end = len(s)
	}
	return strings.ToUpper(s[:end])
}
