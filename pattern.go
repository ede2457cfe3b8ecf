package rtcrelay

import (
	"errors"
	"strings"

	"github.com/grafana/regexp"
)

// Pattern is a compiled event name pattern. Patterns are event names with
// wildcards: '*' matches any run of characters, '?' matches exactly one, and
// '(a|b)' matches one of the listed alternatives. For example 'onRemote*',
// 'on(Local|Remote)VideoStats' and '*'. Use NewPattern to create them.
type Pattern struct {
	str    string
	chunks []chunk
	regExp *regexp.Regexp
}

// NewPattern compiles an event name pattern. Returns an error if the pattern
// is empty, contains characters that cannot appear in an event name, or has
// an unterminated or empty group.
func NewPattern(patternStr string) (*Pattern, error) {
	chunks, err := parsePatternChunks(patternStr)
	if err != nil {
		return nil, err
	}

	patternRegExp, err := regExpFromChunks(chunks)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		str:    patternStr,
		chunks: chunks,
		regExp: patternRegExp,
	}, nil
}

// MustPattern is like NewPattern but panics on an invalid pattern. It is
// intended for patterns written in code.
func MustPattern(patternStr string) *Pattern {
	pattern, err := NewPattern(patternStr)
	if err != nil {
		panic("invalid event pattern \"" + patternStr + "\": " + err.Error())
	}
	return pattern
}

// ParsePatterns compiles a comma separated list of patterns. Blank entries
// are ignored.
func ParsePatterns(list string) ([]*Pattern, error) {
	var patterns []*Pattern
	for _, patternStr := range strings.Split(list, ",") {
		patternStr = strings.TrimSpace(patternStr)
		if patternStr == "" {
			continue
		}
		pattern, err := NewPattern(patternStr)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// Match reports whether the event name matches the pattern.
func (p *Pattern) Match(event string) bool {
	return p.regExp.MatchString(event)
}

// IsLiteral reports whether the pattern has no wildcards or groups, in which
// case it only matches the event named by String.
func (p *Pattern) IsLiteral() bool {
	for _, currentChunk := range p.chunks {
		if currentChunk.kind != static {
			return false
		}
	}
	return true
}

// String returns the pattern as it was written.
func (p *Pattern) String() string {
	return p.str
}

// MatchAny reports whether event matches at least one of patterns. An empty
// pattern list matches every event.
func MatchAny(patterns []*Pattern, event string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if pattern.Match(event) {
			return true
		}
	}
	return false
}

type chunkKind int

const (
	unknown chunkKind = iota
	static
	wildcard
	group
)

type chunkModifier int

const (
	single chunkModifier = iota
	zeroOrMore
)

type chunk = struct {
	kind         chunkKind
	modifier     chunkModifier
	pattern      string
	alternatives []string
}

func parsePatternChunks(patternStr string) ([]chunk, error) {
	if patternStr == "" {
		return nil, errors.New("pattern must not be empty")
	}

	patternRunes := []rune(patternStr)
	patternRunesLen := len(patternRunes)

	chunks := make([]chunk, 0)
	var currentChunk *chunk
	flush := func() {
		if currentChunk != nil {
			chunks = append(chunks, *currentChunk)
			currentChunk = nil
		}
	}

	for i := 0; i < patternRunesLen; i += 1 {
		currentRune := patternRunes[i]

		switch {
		case currentRune == '*':
			flush()
			chunks = append(chunks, chunk{kind: wildcard, modifier: zeroOrMore})

		case currentRune == '?':
			flush()
			chunks = append(chunks, chunk{kind: wildcard, modifier: single})

		case currentRune == '(':
			flush()
			end := -1
			for j := i + 1; j < patternRunesLen; j += 1 {
				if patternRunes[j] == ')' {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, errors.New("unterminated group in pattern")
			}
			alternatives := strings.Split(string(patternRunes[i+1:end]), "|")
			for _, alternative := range alternatives {
				if alternative == "" {
					return nil, errors.New("pattern groups cannot contain empty alternatives")
				}
				for _, r := range alternative {
					if !isNameRune(r) {
						return nil, errors.New("invalid character in pattern group: " + string(r))
					}
				}
			}
			chunks = append(chunks, chunk{kind: group, alternatives: alternatives})
			i = end

		case isNameRune(currentRune):
			if currentChunk == nil {
				currentChunk = &chunk{kind: static}
			}
			currentChunk.pattern += string(currentRune)

		default:
			return nil, errors.New("invalid character in pattern: " + string(currentRune))
		}
	}
	flush()

	return chunks, nil
}

func isNameRune(r rune) bool {
	return r == '_' || r == '.' || r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// regExpFromChunks converts parsed pattern chunks to a regular expression.
func regExpFromChunks(chunks []chunk) (*regexp.Regexp, error) {
	regExpStr := "^"
	for _, currentChunk := range chunks {
		switch currentChunk.kind {
		case static:
			regExpStr += regexp.QuoteMeta(currentChunk.pattern)
		case wildcard:
			switch currentChunk.modifier {
			case single:
				regExpStr += "."
			case zeroOrMore:
				regExpStr += ".*"
			}
		case group:
			quoted := make([]string, len(currentChunk.alternatives))
			for i, alternative := range currentChunk.alternatives {
				quoted[i] = regexp.QuoteMeta(alternative)
			}
			regExpStr += "(?:" + strings.Join(quoted, "|") + ")"
		}
	}
	regExpStr += "$"

	regExp, err := regexp.Compile(regExpStr)
	if err != nil {
		return nil, err
	}

	return regExp, nil
}
