package timestamporacle

import (
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/logic/payload/checkoracle"
	"oracle-payload-sol/internal/logic/payload/common"
	"oracle-payload-sol/pkg/logger"
	"strconv"
	"time"
)

const storageEncoding = "utf-8"

// Deployment 描述一个带 storage payload 的 oracle 部署：
// 指令布局与 check-oracle 相同，storage space seed 为 8 字节小端 u64
type Deployment struct {
	Name     string
	Programs checkoracle.Programs
	Format   func(now time.Time) string // storage payload 内容
}

var (
	// Stats 为统计版部署，payload 为毫秒时间戳
	Stats = Deployment{
		Name: consts.PayloadTimestampOracle,
		Programs: checkoracle.Programs{
			ThresholdSignature: consts.TimestampThresholdSignatureProgram,
			Oracle:             consts.TimestampOracleProgram,
			StorageSpace:       common.MustEncodeU64Seed(uint64(consts.StorageSpace)),
		},
		Format: unixMillis,
	}

	// LocalTime 为 kit 版 check-oracle 部署，payload 为 "Local time: <毫秒时间戳>"
	LocalTime = Deployment{
		Name: consts.PayloadLocalTimeOracle,
		Programs: checkoracle.Programs{
			ThresholdSignature: consts.LocalTimeThresholdSignatureProgram,
			Oracle:             consts.LocalTimeOracleProgram,
			StorageSpace:       common.MustEncodeU64Seed(uint64(consts.StorageSpace)),
		},
		Format: func(now time.Time) string {
			return "Local time: " + unixMillis(now)
		},
	}
)

func unixMillis(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Build 构造与 check-oracle 相同布局的指令，并附上由当前时间生成的 storage payload
func (d Deployment) Build(ctx *common.Context, in *domain.Input) (*domain.Response, error) {
	ix, err := checkoracle.BuildInstruction(d.Programs, in)
	if err != nil {
		return nil, err
	}

	resp := domain.NewResponse(ix)
	resp.StoragePayload = &domain.StoragePayload{
		Encoding: storageEncoding,
		Data:     d.Format(ctx.Now()),
	}
	logger.Debugf("[%s] poa=%s storage=%q", d.Name, in.PoaName, resp.StoragePayload.Data)
	return resp, nil
}
