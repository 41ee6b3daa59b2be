package parser

import (
	"bufio"
	"io"
	"strings"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1024 * 1024

// GameText is the raw text of one game in a multi-game file.
type GameText struct {
	Number int // 1-based position in the file
	Line   int // line the game starts on
	Text   string
}

// SplitGames splits a PGN stream into games. A game ends where a tag line
// follows movetext. Lines starting with '%' are escape lines and skipped.
// Lines inside an open {...} annotation are never tag or escape lines.
func SplitGames(r io.Reader) ([]GameText, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var games []GameText
	var current strings.Builder
	startLine, lineNum := 0, 0
	seenMoves, inComment := false, false

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			games = append(games, GameText{Number: len(games) + 1, Line: startLine, Text: text})
		}
		current.Reset()
		seenMoves = false
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case inComment:
		case strings.HasPrefix(line, "%"):
			continue
		case strings.HasPrefix(trimmed, "["):
			if seenMoves {
				flush()
			}
		case trimmed != "":
			seenMoves = true
		}

		if current.Len() == 0 {
			if trimmed == "" {
				continue
			}
			startLine = lineNum
		}
		current.WriteString(line)
		current.WriteByte('\n')
		inComment = commentOpenAfter(line, inComment)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return games, nil
}

// commentOpenAfter reports whether a brace annotation is still open at the
// end of line, given whether one was open at its start. Braces inside a
// quoted tag value do not count, and "\}" does not close an annotation.
func commentOpenAfter(line string, open bool) bool {
	quoted := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case open:
			if c == '\\' && i+1 < len(line) && line[i+1] == '}' {
				i++
			} else if c == '}' {
				open = false
			}
		case quoted:
			if c == '\\' {
				i++
			} else if c == '"' {
				quoted = false
			}
		case c == '"':
			quoted = true
		case c == '{':
			open = true
		}
	}
	return open
}
