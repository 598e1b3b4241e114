package hjson_test

import (
	"strings"
	"testing"

	"pot-portal/core/hjson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
	}{
		{"Empty text", "", "cat"},
		{"Whitespace text", "  ", "cat"},
		{"Newlines only", "\n\n\t\n", "cat"},
		{"Empty category", "text", ""},
		{"Empty category with entries", "Key: value", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hjson.Parse(tt.text, tt.category)
			require.NotNil(t, got)
			assert.Equal(t, 0, got.Len())
		})
	}
}

func TestParse_BlankCategoryIsUsedVerbatim(t *testing.T) {
	got := hjson.Parse("A: x", "  ")

	assert.Equal(t, map[string]string{
		"Mods.PathOfTerraria.  .A": "x",
	}, got.Map())
}

func TestParse_TwoLevel(t *testing.T) {
	text := `IncreasedDamageAffix: {
    Description: "{1}{0}% dmg"
}`
	got := hjson.Parse(text, "Affixes")

	assert.Equal(t, map[string]string{
		"Mods.PathOfTerraria.Affixes.IncreasedDamageAffix.Description": "{1}{0}% dmg",
	}, got.Map())
}

func TestParse_DocumentedSample(t *testing.T) {
	text := `# Each entry comes with a standard, pre-generated line:
# "{1}{0} to stat"
IncreasedDamageAffix: {
    Description: "{1}{0}% урона"
}
DefenseItemAffix: {
    Description: "{1}{0} защиты"
}`
	got := hjson.Parse(text, "Affixes")

	assert.Equal(t, []string{
		"Mods.PathOfTerraria.Affixes.IncreasedDamageAffix.Description",
		"Mods.PathOfTerraria.Affixes.DefenseItemAffix.Description",
	}, got.Keys())

	v, ok := got.Get("Mods.PathOfTerraria.Affixes.DefenseItemAffix.Description")
	assert.True(t, ok)
	assert.Equal(t, "{1}{0} защиты", v)
}

func TestParse_DeepNesting(t *testing.T) {
	text := `BubbleDialogue: {
	Day: {
		Greeting: Hello there,
		"Farewell": 'See you'
	}
	Night: {
		Greeting: "Go to sleep"
	}
}
Top: value`
	got := hjson.Parse(text, "NPCs")

	assert.Equal(t, []string{
		"Mods.PathOfTerraria.NPCs.BubbleDialogue.Day.Greeting",
		"Mods.PathOfTerraria.NPCs.BubbleDialogue.Day.Farewell",
		"Mods.PathOfTerraria.NPCs.BubbleDialogue.Night.Greeting",
		"Mods.PathOfTerraria.NPCs.Top",
	}, got.Keys())

	m := got.Map()
	assert.Equal(t, "Hello there", m["Mods.PathOfTerraria.NPCs.BubbleDialogue.Day.Greeting"])
	assert.Equal(t, "See you", m["Mods.PathOfTerraria.NPCs.BubbleDialogue.Day.Farewell"])
	assert.Equal(t, "Go to sleep", m["Mods.PathOfTerraria.NPCs.BubbleDialogue.Night.Greeting"])
	assert.Equal(t, "value", m["Mods.PathOfTerraria.NPCs.Top"])
}

func TestParse_MultipleClosingBracesOnOneLine(t *testing.T) {
	text := `A: {
	B: {
		C: one
	}, }
D: two`
	got := hjson.Parse(text, "Cat")

	assert.Equal(t, map[string]string{
		"Mods.PathOfTerraria.Cat.A.B.C": "one",
		"Mods.PathOfTerraria.Cat.D":     "two",
	}, got.Map())
}

func TestParse_CompactClosingBraces(t *testing.T) {
	text := `A: {
B: {
C: one
}}
D: two`
	got := hjson.Parse(text, "Cat")

	_, ok := got.Get("Mods.PathOfTerraria.Cat.D")
	assert.True(t, ok)
}

func TestParse_PopNeverUnderflows(t *testing.T) {
	text := `}
}}},
A: {
	B: one
}
}
}
C: two`
	got := hjson.Parse(text, "Cat")

	assert.Equal(t, []string{
		"Mods.PathOfTerraria.Cat.A.B",
		"Mods.PathOfTerraria.Cat.C",
	}, got.Keys())
}

func TestParse_UnbalancedBracesTolerated(t *testing.T) {
	text := `A: {
	B: {
		C: deep`
	got := hjson.Parse(text, "Cat")

	assert.Equal(t, map[string]string{"Mods.PathOfTerraria.Cat.A.B.C": "deep"}, got.Map())
}

func TestParse_PlaceholdersPreserved(t *testing.T) {
	got := hjson.Parse(`Stat: "{1}{0} to stat"`, "Affixes")

	v, ok := got.Get("Mods.PathOfTerraria.Affixes.Stat")
	require.True(t, ok)
	assert.Equal(t, "{1}{0} to stat", v)
}

func TestParse_ValueHandling(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
	}{
		{"Double quoted", `Key: "value"`, "Key", "value"},
		{"Single quoted", `Key: 'value'`, "Key", "value"},
		{"Bare", `Key: value`, "Key", "value"},
		{"Trailing comma", `Key: "value",`, "Key", "value"},
		{"Bare trailing comma", `Key: value,`, "Key", "value"},
		{"Mismatched quotes kept", `Key: "value'`, "Key", `"value'`},
		{"Only leading quote kept", `Key: "value`, "Key", `"value`},
		{"Embedded colon", `Key: "Time: {0}"`, "Key", "Time: {0}"},
		{"Quoted key", `"Quoted Key": x`, "Quoted Key", "x"},
		{"Dotted bare key", `Some.Key-1: x`, "Some.Key-1", "x"},
		{"Numeric key", `0: zero`, "0", "zero"},
		{"Empty value", `Key:`, "Key", ""},
		{"Empty quoted value", `Key: ""`, "Key", ""},
		{"Inner quotes kept", `Key: "say "hi""`, "Key", `say "hi"`},
		{"Only one comma stripped", `Key: value,,`, "Key", "value,"},
		{"Brace with trailing content is a leaf", `Key: { x`, "Key", "{ x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hjson.Parse(tt.line, "Cat")
			v, ok := got.Get("Mods.PathOfTerraria.Cat." + tt.key)
			require.True(t, ok, "keys: %v", got.Keys())
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestParse_OpenBraceWithTrailingComma(t *testing.T) {
	text := `A: {,
	B: one
}`
	got := hjson.Parse(text, "Cat")
	assert.Equal(t, []string{"Mods.PathOfTerraria.Cat.A.B"}, got.Keys())
}

func TestParse_CommentsAndMalformedLinesIgnored(t *testing.T) {
	text := `// comment
# another comment
	# indented comment
this line has no colon
: missing key
A: one
"unterminated: two
`
	got := hjson.Parse(text, "Cat")
	assert.Equal(t, []string{"Mods.PathOfTerraria.Cat.A"}, got.Keys())
}

func TestParse_CommentOnlyInput(t *testing.T) {
	got := hjson.Parse("# one\n// two\n\n", "Cat")
	assert.Equal(t, 0, got.Len())
}

func TestParse_DuplicateKeysLastValueWins(t *testing.T) {
	text := `A: first
B: middle
A: second`
	got := hjson.Parse(text, "Cat")

	assert.Equal(t, []string{"Mods.PathOfTerraria.Cat.A", "Mods.PathOfTerraria.Cat.B"}, got.Keys())
	v, _ := got.Get("Mods.PathOfTerraria.Cat.A")
	assert.Equal(t, "second", v)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	got := hjson.Parse("A: {\r\n\tB: \"one\"\r\n}\r\n", "Cat")
	v, ok := got.Get("Mods.PathOfTerraria.Cat.A.B")
	require.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestParser_CustomRoot(t *testing.T) {
	p := hjson.Parser{Root: []string{"Mods", "Other"}}
	got := p.Parse("A: one", "Cat")
	assert.Equal(t, []string{"Mods.Other.Cat.A"}, got.Keys())
}

func TestParseReader(t *testing.T) {
	got, err := hjson.ParseReader(strings.NewReader("A: {\n B: one\n}"), "Cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mods.PathOfTerraria.Cat.A.B"}, got.Keys())
}
