package demotransfer

import (
	"github.com/blocto/solana-go-sdk/program/system"
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/input"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/logic/payload/common"
	"oracle-payload-sol/internal/types"
	"oracle-payload-sol/pkg/logger"
)

// Build 构造从执行器 PDA 向示例地址转账 0.005 SOL 的 system 指令
func Build(_ *common.Context, in *domain.Input) (*domain.Response, error) {
	executor, err := types.TryPubkeyFromBase58(in.ExecutorPDA)
	if err != nil {
		return nil, &input.InputError{Field: input.FieldExecutorPDA, Reason: "invalid base58 address", Err: err}
	}

	ix := system.Transfer(system.TransferParam{
		From:   executor.ToSdk(),
		To:     consts.DemoTransferRecipient.ToSdk(),
		Amount: consts.DemoTransferLamports,
	})

	logger.Debugf("[demotransfer] from=%s to=%s lamports=%d",
		executor, consts.DemoTransferRecipient, consts.DemoTransferLamports)
	return domain.NewResponseFromSdk(ix), nil
}
