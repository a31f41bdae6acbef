package checkoracle

import (
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/payload/common"
)

func RegisterHandlers(m map[string]common.Handler) {
	m[consts.PayloadCheckOracle] = common.Handler{
		Required: []string{input.FieldPoaName, input.FieldProposalStorageKey},
		Build:    handleCheckOracle,
	}
}
