package demotransfer

import (
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/payload/common"
)

func RegisterHandlers(m map[string]common.Handler) {
	m[consts.PayloadDemoTransfer] = common.Handler{
		Required: []string{input.FieldExecutorPDA},
		Build:    Build,
	}
}
