package usecase

import (
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/reliefops/kestrel/pkg/domain/types"
)

// Stabilize guarantees the selection refers to a member of the filtered
// set. A valid selection passes through untouched; a missing or empty
// one is replaced by the top incident under the priority ranking, or
// empty when the set is empty. Running it on its own output is a no-op,
// so the derivation cannot oscillate.
func Stabilize(filtered []*model.Incident, selected types.IncidentID) types.IncidentID {
	if selected != "" {
		for _, inc := range filtered {
			if inc.ID == selected {
				return selected
			}
		}
	}

	var top *model.Incident
	for _, inc := range filtered {
		if top == nil || rankBefore(inc, top) {
			top = inc
		}
	}
	if top == nil {
		return ""
	}
	return top.ID
}
