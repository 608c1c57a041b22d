package signature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitute(t *testing.T) {
	profile := EmployeeProfile{FirstName: "Ana", LastName: "Schmidt"}

	tests := []struct {
		name     string
		text     string
		keyword  string
		expected string
	}{
		{
			name:     "single marker",
			text:     "Hi {firstName}!",
			keyword:  KeywordFirstName,
			expected: "Hi Ana!",
		},
		{
			name:     "every occurrence replaced",
			text:     "{lastName}, {lastName}",
			keyword:  KeywordLastName,
			expected: "Schmidt, Schmidt",
		},
		{
			name:     "no matching marker is a no-op",
			text:     "no markers here",
			keyword:  KeywordFirstName,
			expected: "no markers here",
		},
		{
			name:     "empty value substitutes as empty string",
			text:     "Title: {jobTitle}",
			keyword:  KeywordJobTitle,
			expected: "Title: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.text, tt.keyword, ModeSubstitute, profile)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRenderConditionalValue(t *testing.T) {
	template := "Hi {firstName}, {phone/}Call me: {phone}{/phone}"

	t.Run("falsy value deletes whole block", func(t *testing.T) {
		profile := EmployeeProfile{FirstName: "Ana", Phone: ""}

		result, err := Render(template, KeywordPhone, ModeConditionalValue, profile)
		require.NoError(t, err)
		result, err = Render(result, KeywordFirstName, ModeSubstitute, profile)
		require.NoError(t, err)
		assert.Equal(t, "Hi Ana, ", result)
	})

	t.Run("truthy value strips delimiters and substitutes", func(t *testing.T) {
		profile := EmployeeProfile{FirstName: "Ana", Phone: "123"}

		result, err := Render(template, KeywordPhone, ModeConditionalValue, profile)
		require.NoError(t, err)
		result, err = Render(result, KeywordFirstName, ModeSubstitute, profile)
		require.NoError(t, err)
		assert.Equal(t, "Hi Ana, Call me: 123", result)
	})

	t.Run("deleted block takes other markers with it", func(t *testing.T) {
		text := "{mobile/}<p>Mobile: {mobile} ({department})</p>{/mobile}tail"

		result, err := Render(text, KeywordMobile, ModeConditionalValue, EmployeeProfile{})
		require.NoError(t, err)
		assert.Equal(t, "tail", result)
		assert.NotContains(t, result, "{department}")
	})

	t.Run("block spanning multiple lines", func(t *testing.T) {
		text := "before\n{phone/}<tr>\n<td>{phone}</td>\n</tr>{/phone}\nafter"

		result, err := Render(text, KeywordPhone, ModeConditionalValue, EmployeeProfile{})
		require.NoError(t, err)
		assert.Equal(t, "before\n\nafter", result)
	})

	t.Run("deletion is non-greedy across repeated blocks", func(t *testing.T) {
		text := "{phone/}a{/phone}keep{phone/}b{/phone}"

		result, err := Render(text, KeywordPhone, ModeConditionalValue, EmployeeProfile{})
		require.NoError(t, err)
		assert.Equal(t, "keep", result)
	})
}

func TestRenderConditionalFlag(t *testing.T) {
	template := "{gernePerDu/}Feel free to use first name{/gernePerDu}"

	t.Run("true keeps inner content unchanged", func(t *testing.T) {
		result, err := Render(template, KeywordGernePerDu, ModeConditionalFlag, EmployeeProfile{GernePerDu: true})
		require.NoError(t, err)
		assert.Equal(t, "Feel free to use first name", result)
	})

	t.Run("false deletes the block", func(t *testing.T) {
		result, err := Render(template, KeywordGernePerDu, ModeConditionalFlag, EmployeeProfile{GernePerDu: false})
		require.NoError(t, err)
		assert.Equal(t, "", result)
	})
}

func TestRenderUnterminatedBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode Mode
	}{
		{
			name: "conditional value without closing marker",
			text: "{phone/}Call me: {phone}",
			mode: ModeConditionalValue,
		},
		{
			name: "second block unterminated",
			text: "{phone/}a{/phone} {phone/}b",
			mode: ModeConditionalValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.text, KeywordPhone, tt.mode, EmployeeProfile{Phone: "123"})
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, KeywordPhone, syntaxErr.Keyword)
		})
	}
}

func TestRenderFlagUnterminatedBlock(t *testing.T) {
	_, err := Render("{gernePerDu/}hello", KeywordGernePerDu, ModeConditionalFlag, EmployeeProfile{GernePerDu: true})

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, KeywordGernePerDu, syntaxErr.Keyword)
}

func TestRenderKeywordOutsideProfileShape(t *testing.T) {
	// Technical profiles do not own the standard-only keywords; their
	// markers must be left untouched rather than consumed.
	text := "Hi {firstName}, {mobile/}Mobile: {mobile}{/mobile}"
	profile := TechnicalProfile{PrimaryEmail: "noc@kaiser-x.com"}

	result, err := Render(text, KeywordFirstName, ModeSubstitute, profile)
	require.NoError(t, err)
	assert.Equal(t, text, result)

	result, err = Render(text, KeywordMobile, ModeConditionalValue, profile)
	require.NoError(t, err)
	assert.Equal(t, text, result)
}

func TestRenderIsDeterministic(t *testing.T) {
	text := "{phone/}Phone: {phone}{/phone} {lastName}"
	profile := EmployeeProfile{LastName: "Schmidt", Phone: "+49 89 1234"}

	first, err := Render(text, KeywordPhone, ModeConditionalValue, profile)
	require.NoError(t, err)
	second, err := Render(text, KeywordPhone, ModeConditionalValue, profile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
