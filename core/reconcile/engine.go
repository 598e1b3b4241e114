package reconcile

// Reconcile diffs src against existing and plans a create action for every key of src
// that existing does not contain. build turns a key/value pair into the planned item.
//
// Actions follow the iteration order of src. existing is only read.
func Reconcile[T any](src Source, existing KeySet, build func(key, value string) T) *Plan[T] {
	plan := &Plan[T]{
		Actions: []Action[T]{},
	}
	if src == nil {
		return plan
	}

	plan.Stats.Total = src.Len()

	for key, value := range src.All() {
		if existing.Has(key) {
			plan.Stats.Skipped++
			continue
		}

		plan.Actions = append(plan.Actions, Action[T]{
			Type:   ActionCreate,
			Key:    key,
			Reason: "key not present in existing set",
			Item:   build(key, value),
		})
		plan.Stats.Added++
	}

	return plan
}
