package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

var (
	tagPattern        = regexp.MustCompile(`^\[\s*([A-Za-z0-9_]+)\s+"((?:[^"\\]|\\.)*)"\s*\]\s*`)
	moveNumberPattern = regexp.MustCompile(`^\d+\.+`)
	nagPattern        = regexp.MustCompile(`^\$\d+$`)
)

// Game result tokens.
var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// isResult returns true if s is a game result token.
func isResult(s string) bool {
	return resultTokens[s]
}

// Option configures Tokenize.
type Option func(*options)

type options struct {
	structured bool
}

// WithJSONAnnotations makes every brace annotation decode as a JSON value.
// Malformed payloads then fail with errors.ErrAnnotationFormat.
func WithJSONAnnotations(enabled bool) Option {
	return func(o *options) {
		o.structured = enabled
	}
}

// Tokenize cleans movetext and splits it into headers, annotations and the
// ordered main-line token stream.
//
// Whitespace is normalized, the leading tag section is read, brace
// annotations are replaced by placeholders and variations are dropped.
// Everything before the first move number, SAN token or result is
// discarded; move numbers, ellipses, results, NAGs and "e.p." marks are
// stripped.
func Tokenize(movetext string, opts ...Option) (*Movetext, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	text := strings.Join(strings.Fields(movetext), " ")

	mt := &Movetext{Headers: chess.NewHeaders()}
	text = mt.extractTags(text)

	text, annotations, err := extractAnnotations(text, o.structured)
	if err != nil {
		return nil, err
	}
	mt.Annotations = annotations

	text, err = stripVariations(text)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(text)
	start := -1
	for i, f := range fields {
		if isMoveStart(f) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, errors.ErrNoMovetext
	}

	for _, f := range fields[start:] {
		if loc := moveNumberPattern.FindStringIndex(f); loc != nil {
			f = f[loc[1]:]
		}
		// "3. ... Nf6" and "3. ...Nf6" carry a detached ellipsis.
		f = strings.TrimLeft(f, ".")
		switch {
		case f == "", isResult(f), nagPattern.MatchString(f), f == "e.p.":
			continue
		}
		if n, ok := placeholderIndex(f, len(mt.Annotations)); ok {
			mt.Tokens = append(mt.Tokens, Token{Type: AnnotationToken, Text: f, Annotation: n})
			continue
		}
		mt.Tokens = append(mt.Tokens, Token{Type: MoveToken, Text: f})
	}
	return mt, nil
}

// extractTags consumes the leading tag pairs, recording roster tags and the
// FEN tag, and returns the text that follows them.
func (m *Movetext) extractTags(text string) string {
	for {
		match := tagPattern.FindStringSubmatch(text)
		if match == nil {
			return text
		}
		key, value := match[1], unescapeTagValue(match[2])
		switch {
		case chess.IsSevenTagRosterTag(key):
			m.Headers[key] = value
		case key == chess.FENTag:
			m.SetupFEN = value
		}
		text = text[len(match[0]):]
	}
}

func unescapeTagValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return strings.NewReplacer(`\"`, `"`, `\\`, `\`).Replace(s)
}

// isMoveStart reports whether a field can open the movetext.
func isMoveStart(f string) bool {
	if moveNumberPattern.MatchString(f) || isResult(f) {
		return true
	}
	_, err := DecodeMove(f)
	return err == nil
}

// placeholderIndex returns the annotation index named by a placeholder.
func placeholderIndex(f string, count int) (int, bool) {
	if !strings.HasPrefix(f, placeholderPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(f[len(placeholderPrefix):])
	if err != nil || n < 0 || n >= count {
		return 0, false
	}
	return n, true
}

// stripVariations removes parenthesized variations, nested ones included.
func stripVariations(text string) (string, error) {
	if !strings.ContainsAny(text, "()") {
		return text, nil
	}
	var out strings.Builder
	depth, opened := 0, 0
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '(':
			if depth == 0 {
				opened = i
			}
			depth++
			out.WriteByte(' ')
		case c == ')' && depth > 0:
			depth--
		case depth == 0:
			out.WriteByte(c)
		}
	}
	if depth > 0 {
		return "", &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Column:   opened + 1,
			Expected: "closing parenthesis",
			Got:      "end of movetext",
		}
	}
	return out.String(), nil
}
