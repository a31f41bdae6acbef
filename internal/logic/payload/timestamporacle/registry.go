package timestamporacle

import (
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/payload/common"
)

func RegisterHandlers(m map[string]common.Handler) {
	for _, d := range []Deployment{Stats, LocalTime} {
		m[d.Name] = common.Handler{
			Required: []string{input.FieldPoaName, input.FieldProposalStorageKey},
			Build:    d.Build,
		}
	}
}
