package syntax

import "strings"

// Classify reports the scope of the byte position col within line, given
// the lexer state prev carried in from the previous line. Positions past
// the end of the line classify as whatever context the line ends in,
// which is what a cursor sitting at end-of-line observes.
func Classify(lang Language, line string, col int, prev LineState) Scope {
	switch prev {
	case StateBlockComment:
		end := blockCommentEnd(lang, line)
		if end < 0 || col < end {
			return Scope{InComment: true}
		}
		scope, _ := scan(lang, line[end:], col-end)
		return scope
	case StateRawString:
		end := strings.IndexByte(line, lang.RawQuote)
		if end < 0 || col <= end {
			return Scope{InString: true}
		}
		scope, _ := scan(lang, line[end+1:], col-end-1)
		return scope
	default:
		scope, _ := scan(lang, line, col)
		return scope
	}
}

// EndState returns the lexer state at the end of line, given the state
// carried in from the previous line.
func EndState(lang Language, line string, prev LineState) LineState {
	switch prev {
	case StateBlockComment:
		end := blockCommentEnd(lang, line)
		if end < 0 {
			return StateBlockComment
		}
		_, state := scan(lang, line[end:], len(line))
		return state
	case StateRawString:
		end := strings.IndexByte(line, lang.RawQuote)
		if end < 0 {
			return StateRawString
		}
		_, state := scan(lang, line[end+1:], len(line))
		return state
	default:
		_, state := scan(lang, line, len(line))
		return state
	}
}

// scan walks line from a normal state and returns the scope at byte
// position col along with the state at end of line.
func scan(lang Language, line string, col int) (Scope, LineState) {
	var (
		inLineComment  bool
		inBlockComment bool
		inRawString    bool
		quote          byte // active quote char, 0 when outside strings
	)

	i := 0
	for i < len(line) {
		if col >= 0 && i >= col {
			break
		}
		c := line[i]

		switch {
		case inLineComment:
			i++

		case inBlockComment:
			if hasAt(line, i, lang.BlockCommentEnd) {
				inBlockComment = false
				i += len(lang.BlockCommentEnd)
			} else {
				i++
			}

		case inRawString:
			if c == lang.RawQuote {
				inRawString = false
			}
			i++

		case quote != 0:
			if c == lang.Escape && i+1 < len(line) {
				i += 2
			} else {
				if c == quote {
					quote = 0
				}
				i++
			}

		default:
			switch {
			case lang.LineComment != "" && hasAt(line, i, lang.LineComment):
				inLineComment = true
				i += len(lang.LineComment)
			case lang.BlockCommentStart != "" && hasAt(line, i, lang.BlockCommentStart):
				inBlockComment = true
				i += len(lang.BlockCommentStart)
			case lang.RawQuote != 0 && c == lang.RawQuote:
				inRawString = true
				i++
			case strings.IndexByte(lang.Quotes, c) >= 0:
				quote = c
				i++
			default:
				i++
			}
		}
	}

	scope := Scope{
		InComment: inLineComment || inBlockComment,
		InString:  inRawString || quote != 0,
	}

	state := StateNormal
	if inBlockComment {
		state = StateBlockComment
	} else if inRawString {
		state = StateRawString
	}
	return scope, state
}

// blockCommentEnd returns the offset just past the block comment
// terminator in line, or -1 if the comment does not close on this line.
func blockCommentEnd(lang Language, line string) int {
	if lang.BlockCommentEnd == "" {
		return -1
	}
	idx := strings.Index(line, lang.BlockCommentEnd)
	if idx < 0 {
		return -1
	}
	return idx + len(lang.BlockCommentEnd)
}

func hasAt(s string, i int, prefix string) bool {
	return prefix != "" && strings.HasPrefix(s[i:], prefix)
}
