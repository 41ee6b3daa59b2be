package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// AnnotationSeparator joins the text of annotations merged onto one half-move.
const AnnotationSeparator = ", "

// placeholderPrefix names the tokens that stand in for brace annotations.
const placeholderPrefix = "annotation-"

// Annotation is the payload attached to a half-move. Text holds the raw
// comment text; in structured mode Values holds the decoded JSON values.
type Annotation struct {
	Text   string `json:"text,omitempty"`
	Values []any  `json:"values,omitempty"`
}

// IsZero returns true if the annotation carries nothing.
func (a Annotation) IsZero() bool {
	return a.Text == "" && len(a.Values) == 0
}

// Merge returns a combined with b: text joined with AnnotationSeparator,
// values appended.
func (a Annotation) Merge(b Annotation) Annotation {
	out := Annotation{Text: a.Text}
	switch {
	case out.Text == "":
		out.Text = b.Text
	case b.Text != "":
		out.Text += AnnotationSeparator + b.Text
	}
	if len(a.Values)+len(b.Values) > 0 {
		out.Values = make([]any, 0, len(a.Values)+len(b.Values))
		out.Values = append(out.Values, a.Values...)
		out.Values = append(out.Values, b.Values...)
	}
	return out
}

// Clone returns a deep copy of a. Decoded JSON arrays and objects inside
// Values are copied too.
func (a Annotation) Clone() Annotation {
	if a.Values == nil {
		return a
	}
	out := Annotation{Text: a.Text, Values: make([]any, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// String returns the annotation text.
func (a Annotation) String() string {
	return a.Text
}

// placeholder returns the token standing in for the n-th annotation.
func placeholder(n int) string {
	return fmt.Sprintf("%s%d", placeholderPrefix, n)
}

// extractAnnotations replaces every brace-delimited annotation in text with a
// placeholder token and returns the rewritten text with the annotations in
// encounter order. Inside an annotation "\}" and "\{" stand for literal
// braces.
func extractAnnotations(text string, structured bool) (string, []Annotation, error) {
	var out strings.Builder
	var annotations []Annotation

	for pos := 0; pos < len(text); pos++ {
		c := text[pos]
		if c != '{' {
			out.WriteByte(c)
			continue
		}

		start := pos
		var body strings.Builder
		closed := false
		for pos++; pos < len(text); pos++ {
			c = text[pos]
			if c == '\\' && pos+1 < len(text) && (text[pos+1] == '}' || text[pos+1] == '{') {
				pos++
				body.WriteByte(text[pos])
				continue
			}
			if c == '}' {
				closed = true
				break
			}
			body.WriteByte(c)
		}
		if !closed {
			return "", nil, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Column:   start + 1,
				Expected: "closing brace",
				Got:      "end of movetext",
			}
		}

		annotation, err := newAnnotation(strings.TrimSpace(body.String()), structured)
		if err != nil {
			return "", nil, &errors.ParseError{
				Err:      fmt.Errorf("%w: %v", errors.ErrAnnotationFormat, err),
				Column:   start + 1,
				Expected: "JSON value",
				Got:      snippet(body.String()),
			}
		}

		out.WriteByte(' ')
		out.WriteString(placeholder(len(annotations)))
		out.WriteByte(' ')
		annotations = append(annotations, annotation)
	}
	return out.String(), annotations, nil
}

// newAnnotation builds the annotation for one brace payload. In structured
// mode the payload must be a single JSON value; an array contributes its
// elements as separate values. The payload is only ever decoded as data.
func newAnnotation(payload string, structured bool) (Annotation, error) {
	a := Annotation{Text: payload}
	if !structured || payload == "" {
		return a, nil
	}

	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return Annotation{}, err
	}

	if arr, ok := v.([]any); ok {
		a.Values = arr
	} else {
		a.Values = []any{v}
	}
	return a, nil
}

// snippet shortens s for error messages.
func snippet(s string) string {
	const max = 24
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
