// Package pattern compiles step-definition phrases into full-phrase matchers
// that extract typed parameters.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the type of a placeholder declared in a step phrase.
type Kind int

const (
	// Word matches a run of non-whitespace characters.
	Word Kind = iota
	// Int matches an optionally signed integer.
	Int
	// Float matches a decimal number.
	Float
	// String matches double-quoted text and captures it without the quotes.
	String
	// MoneyInt matches a `$`-prefixed integer amount.
	MoneyInt
	// MoneyFloat matches a `$`-prefixed decimal amount.
	MoneyFloat
)

// String returns the placeholder spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case MoneyInt:
		return "$int"
	case MoneyFloat:
		return "$float"
	default:
		return "unknown"
	}
}

func (k Kind) coerce(raw string) (any, error) {
	switch k {
	case Int, MoneyInt:
		return strconv.Atoi(raw)
	case Float, MoneyFloat:
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}

// ErrUnknownPlaceholder is wrapped by CompileError.
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// CompileError reports a placeholder kind that is not supported.
type CompileError struct {
	Source      string
	Placeholder string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid step pattern %q: unknown placeholder {%s}", e.Source, e.Placeholder)
}

func (e *CompileError) Unwrap() error {
	return ErrUnknownPlaceholder
}

type placeholder struct {
	kind  Kind
	regex string
}

// builtInTypes maps placeholder names to their capture expressions
var builtInTypes = map[string]placeholder{
	"word":   {Word, `(\S+)`},
	"int":    {Int, `([-+]?\d+)`},
	"float":  {Float, `([-+]?\d*\.?\d+)`},
	"string": {String, `"([^"]*)"`},
}

var whitespace = regexp.MustCompile(`\s+`)

// Pattern is a compiled step phrase. It is either a literal phrase with
// typed placeholders or a caller supplied regular expression whose groups
// are passed through as strings.
type Pattern struct {
	source string
	raw    bool
	expr   *regexp.Regexp
	kinds  []Kind
}

// Compile compiles a string phrase or a *regexp.Regexp.
func Compile(source any) (*Pattern, error) {
	switch s := source.(type) {
	case *regexp.Regexp:
		if s == nil {
			return nil, errors.New("nil step pattern")
		}
		return compileRegexp(s)
	case string:
		return compilePhrase(s)
	default:
		return nil, fmt.Errorf("step pattern must be a string or *regexp.Regexp, got %T", source)
	}
}

// MustCompile is like Compile but panics on error.
func MustCompile(source any) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

func compileRegexp(re *regexp.Regexp) (*Pattern, error) {
	anchored, err := regexp.Compile(`^(?:` + re.String() + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid step pattern %q: %w", re.String(), err)
	}
	return &Pattern{
		source: re.String(),
		raw:    true,
		expr:   anchored,
	}, nil
}

func compilePhrase(source string) (*Pattern, error) {
	phrase := strings.TrimSpace(source)

	var (
		out     strings.Builder
		literal strings.Builder
		kinds   []Kind
	)
	flush := func() {
		writeLiteral(&out, literal.String())
		literal.Reset()
	}

	out.WriteString("^")
	for i := 0; i < len(phrase); {
		// $ followed by {int} / {float} (or the escaped $\{int} spelling)
		if phrase[i] == '$' {
			brace := i + 1
			if strings.HasPrefix(phrase[brace:], `\{`) {
				brace++
			}
			if name, end, ok := readPlaceholder(phrase, brace); ok && isAmount(name) {
				flush()
				p := builtInTypes[strings.ToLower(name)]
				kind := MoneyInt
				if p.kind == Float {
					kind = MoneyFloat
				}
				out.WriteString(`\$` + p.regex)
				kinds = append(kinds, kind)
				i = end
				continue
			}
		}

		if name, end, ok := readPlaceholder(phrase, i); ok {
			p, known := builtInTypes[strings.ToLower(name)]
			if !known {
				return nil, &CompileError{Source: source, Placeholder: name}
			}
			flush()
			out.WriteString(p.regex)
			kinds = append(kinds, p.kind)
			i = end
			continue
		}

		literal.WriteByte(phrase[i])
		i++
	}
	flush()
	out.WriteString("$")

	expr, err := regexp.Compile(out.String())
	if err != nil {
		return nil, fmt.Errorf("invalid step pattern %q: %w", source, err)
	}

	return &Pattern{
		source: source,
		expr:   expr,
		kinds:  kinds,
	}, nil
}

// isAmount reports whether a placeholder after `$` is a money amount.
func isAmount(name string) bool {
	name = strings.ToLower(name)
	return name == "int" || name == "float"
}

// readPlaceholder reads `{name}` starting at phrase[at]. Braces that do not
// enclose an identifier are literal text.
func readPlaceholder(phrase string, at int) (string, int, bool) {
	if at >= len(phrase) || phrase[at] != '{' {
		return "", 0, false
	}
	closing := strings.IndexByte(phrase[at:], '}')
	if closing < 0 {
		return "", 0, false
	}
	name := phrase[at+1 : at+closing]
	if !isIdentifier(name) {
		return "", 0, false
	}
	return name, at + closing + 1, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// writeLiteral escapes text; each whitespace run matches any whitespace run.
func writeLiteral(out *strings.Builder, text string) {
	if text == "" {
		return
	}
	parts := whitespace.Split(text, -1)
	for i, part := range parts {
		if i > 0 {
			out.WriteString(`\s+`)
		}
		out.WriteString(regexp.QuoteMeta(part))
	}
}

// Source returns the phrase or expression the pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

func (p *Pattern) String() string {
	if p.raw {
		return "/" + p.source + "/"
	}
	return p.source
}

// IsRegexp reports whether the pattern was supplied as a regular expression.
func (p *Pattern) IsRegexp() bool {
	return p.raw
}

// Kinds returns the placeholder kinds in declaration order. It is empty for
// regular expression patterns.
func (p *Pattern) Kinds() []Kind {
	kinds := make([]Kind, len(p.kinds))
	copy(kinds, p.kinds)
	return kinds
}

// Match matches the whole text and returns the coerced parameters.
func (p *Pattern) Match(text string) ([]any, bool) {
	groups := p.expr.FindStringSubmatch(text)
	if groups == nil {
		return nil, false
	}

	captured := groups[1:]
	params := make([]any, 0, len(captured))
	for i, group := range captured {
		if p.raw || i >= len(p.kinds) {
			params = append(params, group)
			continue
		}
		value, err := p.kinds[i].coerce(group)
		if err != nil {
			// e.g. an {int} that overflows
			return nil, false
		}
		params = append(params, value)
	}
	return params, true
}

// MatchIndex returns [start, end] byte offsets for every capture group in
// text (the format of regexp.FindStringSubmatchIndex without the full-match
// pair), or nil when text does not match.
func (p *Pattern) MatchIndex(text string) []int {
	locs := p.expr.FindStringSubmatchIndex(text)
	if locs == nil {
		return nil
	}
	return locs[2:]
}
