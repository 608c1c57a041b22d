package signature

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode selects how a keyword is rendered into a template.
type Mode int

const (
	// ModeSubstitute replaces every {keyword} marker with the profile value.
	ModeSubstitute Mode = iota

	// ModeConditionalValue keeps the {keyword/}...{/keyword} block and
	// substitutes {keyword} inside it when the value is truthy, otherwise
	// deletes the whole block.
	ModeConditionalValue

	// ModeConditionalFlag keeps the block content unchanged when the value
	// is boolean true, otherwise deletes the whole block. No substitution
	// takes place.
	ModeConditionalFlag
)

func (m Mode) String() string {
	switch m {
	case ModeSubstitute:
		return "substitute"
	case ModeConditionalValue:
		return "conditionalValue"
	case ModeConditionalFlag:
		return "conditionalFlag"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// SyntaxError reports a malformed template: an opening conditional marker
// with no matching closing marker. It indicates a defect in the supplied
// template document, not in profile data.
type SyntaxError struct {
	Keyword string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error: unterminated conditional block for keyword %q", e.Keyword)
}

func variableMarker(keyword string) string { return "{" + keyword + "}" }
func openMarker(keyword string) string     { return "{" + keyword + "/}" }
func closeMarker(keyword string) string    { return "{/" + keyword + "}" }

// blockPattern matches one {keyword/}...{/keyword} region, non-greedy,
// across newlines.
func blockPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile("(?s)" + regexp.QuoteMeta(openMarker(keyword)) + ".*?" + regexp.QuoteMeta(closeMarker(keyword)))
}

// Render applies a single keyword in the given mode to the whole text.
// Keywords outside the profile's shape are a no-op: the text is returned
// untouched, so a reduced profile never consumes markers it does not own.
// The only failure mode is a malformed template (unterminated conditional
// block), surfaced as *SyntaxError.
func Render(text, keyword string, mode Mode, p Profile) (string, error) {
	value, ok := p.lookup(keyword)
	if !ok {
		return text, nil
	}

	switch mode {
	case ModeSubstitute:
		return strings.ReplaceAll(text, variableMarker(keyword), value.String()), nil

	case ModeConditionalValue:
		if err := checkBlocks(text, keyword); err != nil {
			return "", err
		}
		if value.truthy() {
			text = stripMarkers(text, keyword)
			return strings.ReplaceAll(text, variableMarker(keyword), value.String()), nil
		}
		return deleteBlocks(text, keyword), nil

	case ModeConditionalFlag:
		if err := checkBlocks(text, keyword); err != nil {
			return "", err
		}
		if value.isFlag && value.flag {
			return stripMarkers(text, keyword), nil
		}
		return deleteBlocks(text, keyword), nil
	}

	return text, nil
}

// checkBlocks verifies that every opening marker for keyword has a closing
// marker somewhere after it.
func checkBlocks(text, keyword string) error {
	open := openMarker(keyword)
	clos := closeMarker(keyword)

	for rest := text; ; {
		i := strings.Index(rest, open)
		if i < 0 {
			return nil
		}
		after := rest[i+len(open):]
		j := strings.Index(after, clos)
		if j < 0 {
			return &SyntaxError{Keyword: keyword}
		}
		rest = after[j+len(clos):]
	}
}

// stripMarkers removes the block delimiters for keyword, keeping the inner
// content in place.
func stripMarkers(text, keyword string) string {
	text = strings.ReplaceAll(text, openMarker(keyword), "")
	return strings.ReplaceAll(text, closeMarker(keyword), "")
}

// deleteBlocks removes every delimited block for keyword including its
// content. Deletion is atomic: markers for other keywords inside the block
// disappear with it.
func deleteBlocks(text, keyword string) string {
	return blockPattern(keyword).ReplaceAllString(text, "")
}
