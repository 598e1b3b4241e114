package translation

import (
	"testing"

	"pot-portal/core/hjson"
	"pot-portal/core/reconcile"
	"pot-portal/feature/translation/models"

	"github.com/stretchr/testify/assert"
)

const affixesText = `
# damage affixes
IncreasedDamageAffix: {
    Description: "{1}{0}% dmg"
}
FlatLifeAffix: {
    Description: '+{0} life',
}
`

func TestBuildEntries(t *testing.T) {
	parsed := hjson.Parse(affixesText, "Affixes")
	existing := reconcile.NewKeySet("Mods.PathOfTerraria.Affixes.FlatLifeAffix.Description")

	entries, stats := BuildEntries(parsed, "ru-RU", "Affixes", existing)

	assert.Equal(t, reconcile.Stats{Total: 2, Added: 1, Skipped: 1}, stats)
	assert.Equal(t, []models.TranslationEntry{{
		Category: "Affixes",
		Key:      "Mods.PathOfTerraria.Affixes.IncreasedDamageAffix.Description",
		Language: "ru-RU",
		Value:    "{1}{0}% dmg",
	}}, entries)
	assert.Equal(t, 1, existing.Len())
}

func TestBuildEntries_PreservesParseOrder(t *testing.T) {
	parsed := hjson.Parse("Zeta: z\nAlpha: a\nMid: m", "Items")

	entries, _ := BuildEntries(parsed, "de-DE", "Items", nil)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		assert.Empty(t, e.ID)
	}
	assert.Equal(t, []string{
		"Mods.PathOfTerraria.Items.Zeta",
		"Mods.PathOfTerraria.Items.Alpha",
		"Mods.PathOfTerraria.Items.Mid",
	}, keys)
}

func TestBuildEntries_Idempotent(t *testing.T) {
	parsed := hjson.Parse(affixesText, "Affixes")
	existing := reconcile.NewKeySet()

	first, stats := BuildEntries(parsed, "fr-FR", "Affixes", existing)
	assert.Equal(t, 2, stats.Added)

	for _, e := range first {
		existing.Add(e.Key)
	}
	second, stats := BuildEntries(parsed, "fr-FR", "Affixes", existing)
	assert.Empty(t, second)
	assert.Equal(t, reconcile.Stats{Total: 2, Added: 0, Skipped: 2}, stats)
}

func TestBuildEntries_CommentOnlyInput(t *testing.T) {
	parsed := hjson.Parse("# nothing\n// here\n\n", "Affixes")

	entries, stats := BuildEntries(parsed, "fr-FR", "Affixes", reconcile.NewKeySet("x"))
	assert.Empty(t, entries)
	assert.Equal(t, reconcile.Stats{}, stats)
	assert.True(t, stats.Consistent())
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"{0}", "{1}"}, placeholders("{1}{0}% dmg and {0}"))
	assert.Empty(t, placeholders("no placeholders {name}"))
}

func TestValidateLanguage(t *testing.T) {
	for _, code := range []string{"ru-RU", "zh-Hans", " de-DE ", "pt-BR", "en"} {
		got, err := ValidateLanguage(code)
		assert.NoError(t, err, code)
		assert.NotEmpty(t, got)
	}
	got, _ := ValidateLanguage(" de-DE ")
	assert.Equal(t, "de-DE", got)

	_, err := ValidateLanguage("")
	assert.ErrorContains(t, err, "language code is required")

	_, err = ValidateLanguage("not a language!")
	assert.ErrorContains(t, err, "invalid language code")
}

func TestBuildCoverage(t *testing.T) {
	english := []models.EnglishTranslation{
		{Key: "A", Value: "Deal {0} damage"},
		{Key: "B", Value: "{0} of {1}"},
		{Key: "C", Value: "Plain"},
	}
	entries := []models.TranslationEntry{
		{Key: "A", Value: "Наносит {0} урона"},
		{Key: "B", Value: "{0} из"},
		{Key: "Old", Value: "stale"},
		{Key: "Legacy", Value: "gone"},
		{Key: "Old", Value: "stale twice"},
	}

	report := buildCoverage("ru-RU", english, entries)

	assert.Equal(t, 3, report.EnglishTotal)
	assert.Equal(t, 2, report.Translated)
	assert.Equal(t, []string{"C"}, report.Missing)
	assert.Equal(t, []string{"Legacy", "Old"}, report.Orphans, "orphans are deduplicated and sorted")
	assert.Equal(t, []models.PlaceholderMismatch{{
		Key:      "B",
		Expected: []string{"{0}", "{1}"},
		Found:    []string{"{0}"},
	}}, report.PlaceholderMismatches)
	assert.InDelta(t, 66.7, report.Coverage(), 0.1)
}

func TestBuildCoverage_Empty(t *testing.T) {
	report := buildCoverage("ru-RU", nil, nil)
	assert.Equal(t, float64(100), report.Coverage())
	assert.NotNil(t, report.Missing)
	assert.NotNil(t, report.Orphans)
}
