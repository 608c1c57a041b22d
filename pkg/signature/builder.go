package signature

import (
	"fmt"
	"strings"
)

// Rule pairs a template keyword with its rendering mode. The assembler is
// driven by ordered rule lists, never by scanning the template.
type Rule struct {
	Keyword string
	Mode    Mode
}

// commonRules apply to both profile shapes, in declared order.
var commonRules = []Rule{
	{KeywordLastName, ModeSubstitute},
	{KeywordAddress, ModeSubstitute},
	{KeywordPhone, ModeConditionalValue},
	{KeywordEmail, ModeSubstitute},
}

// employeeRules extend commonRules for the standard profile shape.
var employeeRules = []Rule{
	{KeywordFirstName, ModeSubstitute},
	{KeywordJobTitle, ModeSubstitute},
	{KeywordManagementRole, ModeConditionalValue},
	{KeywordPronouns, ModeConditionalValue},
	{KeywordGernePerDu, ModeConditionalFlag},
	{KeywordShowPronounLine, ModeConditionalFlag},
	{KeywordMobile, ModeConditionalValue},
}

// RulesFor returns the ordered rule list for a profile's shape: the common
// rules for technical accounts, common plus employee rules otherwise.
func RulesFor(p Profile) []Rule {
	if p.Technical() {
		return commonRules
	}
	rules := make([]Rule, 0, len(commonRules)+len(employeeRules))
	rules = append(rules, commonRules...)
	return append(rules, employeeRules...)
}

// Builder assembles signatures from the two template variants. Both
// templates and the company constants are fixed at construction and the
// Builder is read-only afterwards, so a single Builder serves a whole
// batch run concurrently.
type Builder struct {
	standardTemplate  string
	technicalTemplate string
	companyName       string
	companyWebsite    string
}

func NewBuilder(standardTemplate, technicalTemplate, companyName, companyWebsite string) *Builder {
	return &Builder{
		standardTemplate:  standardTemplate,
		technicalTemplate: technicalTemplate,
		companyName:       companyName,
		companyWebsite:    companyWebsite,
	}
}

// Build renders the signature for one profile: it picks the template
// variant matching the profile shape, applies the rule list in order and
// substitutes the company constants last. Profile values are inserted as
// raw text without HTML escaping.
func (b *Builder) Build(p Profile) (string, error) {
	text := b.standardTemplate
	if p.Technical() {
		text = b.technicalTemplate
	}

	var err error
	for _, rule := range RulesFor(p) {
		text, err = Render(text, rule.Keyword, rule.Mode, p)
		if err != nil {
			return "", fmt.Errorf("rendering %q: %w", rule.Keyword, err)
		}
	}

	text = strings.ReplaceAll(text, variableMarker(KeywordCompany), b.companyName)
	text = strings.ReplaceAll(text, variableMarker(KeywordWeb), b.companyWebsite)
	return text, nil
}
