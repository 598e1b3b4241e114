package translation

import (
	"pot-portal/core/hjson"
	"pot-portal/core/reconcile"
	"pot-portal/feature/translation/models"
)

// PlanEntries reconciles parsed strings against the keys already stored for a
// language. Keys missing from existing become create actions in source order.
func PlanEntries(parsed *hjson.Translations, language, category string, existing reconcile.KeySet) *reconcile.Plan[models.TranslationEntry] {
	return reconcile.Reconcile(parsed, existing, func(key, value string) models.TranslationEntry {
		return models.TranslationEntry{
			Category: category,
			Key:      key,
			Language: language,
			Value:    value,
		}
	})
}

// BuildEntries returns the entries to create for parsed and the counts of
// new and already present keys. existing is never modified.
func BuildEntries(parsed *hjson.Translations, language, category string, existing reconcile.KeySet) ([]models.TranslationEntry, reconcile.Stats) {
	plan := PlanEntries(parsed, language, category, existing)
	return plan.Items(), plan.Stats
}
