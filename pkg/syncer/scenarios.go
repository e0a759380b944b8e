package syncer

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/scriptsync/pkg/domain"
)

const (
	scenariosField = "scenarios"
	scenarioJSON   = "json"
)

// expandScenarios replaces, in every record, each scenario by the value encoded
// in its "json" string field. Scenarios without one are kept as they are.
func expandScenarios(items []any) error {
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		scenarios, ok := record[scenariosField].([]any)
		if !ok {
			continue
		}
		for j, s := range scenarios {
			scenario, ok := s.(map[string]any)
			if !ok {
				continue
			}
			encoded, ok := scenario[scenarioJSON].(string)
			if !ok {
				continue
			}
			var decoded any
			if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
				return fmt.Errorf("%w: record %d scenario %d: %v", domain.ErrInvalidDocument, i, j, err)
			}
			scenarios[j] = decoded
		}
	}
	return nil
}
