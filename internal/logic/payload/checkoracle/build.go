package checkoracle

import (
	"github.com/pkg/errors"
	"oracle-payload-sol/internal/consts"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/logic/payload/common"
	"oracle-payload-sol/internal/pda"
	"oracle-payload-sol/internal/types"
	"oracle-payload-sol/pkg/logger"
)

// Programs 描述一组 oracle 部署：PDA owner、目标 oracle 程序，以及已编码的 storage space seed
type Programs struct {
	ThresholdSignature types.Pubkey
	Oracle             types.Pubkey
	StorageSpace       []byte
}

// DefaultPrograms 是 check-oracle 的线上部署，storage space 为 4 字节小端 u32
var DefaultPrograms = Programs{
	ThresholdSignature: consts.ThresholdSignatureProgram,
	Oracle:             consts.OracleProgram,
	StorageSpace:       common.MustEncodeU32Seed(consts.StorageSpace),
}

var findProgramAddress = pda.FindProgramAddress

// StorageSeeds 返回 proposal storage PDA 的 seeds：STORAGE | poaName | proposalStorageKey | storageSpace
func (p Programs) StorageSeeds(in *domain.Input) [][]byte {
	return [][]byte{
		[]byte(consts.StorageSeed),
		[]byte(in.PoaName),
		[]byte(in.ProposalStorageKey),
		p.StorageSpace,
	}
}

// StateSeeds 返回 PoA state PDA 的 seeds：STATE | poaName
func (p Programs) StateSeeds(in *domain.Input) [][]byte {
	return [][]byte{
		[]byte(consts.StateSeed),
		[]byte(in.PoaName),
	}
}

// BuildInstruction 构造 check-oracle 指令。账户顺序固定，下游按位置读取：
//  0. proposal storage PDA  (Writable)
//  1. PoA state PDA         (Readonly)
//  2. sysvar instructions   (Readonly)
//  3. oracle program 自身   (Readonly)
//
// data 为 poaName 的原始字节，不加长度前缀。
func BuildInstruction(p Programs, in *domain.Input) (domain.Instruction, error) {
	storage, err := findProgramAddress(p.ThresholdSignature, p.StorageSeeds(in)...)
	if err != nil {
		return domain.Instruction{}, errors.Wrap(err, "derive proposal storage address")
	}
	state, err := findProgramAddress(p.ThresholdSignature, p.StateSeeds(in)...)
	if err != nil {
		return domain.Instruction{}, errors.Wrap(err, "derive poa state address")
	}

	return domain.NewInstruction(p.Oracle, []byte(in.PoaName),
		domain.NewAccountMeta(storage, domain.Writable),
		domain.NewAccountMeta(state, domain.Readonly),
		domain.NewAccountMeta(consts.SysvarInstructions, domain.Readonly),
		domain.NewAccountMeta(p.Oracle, domain.Readonly),
	), nil
}

// Build 使用默认部署构造 check-oracle 指令列表
func Build(in *domain.Input) ([]domain.Instruction, error) {
	ix, err := BuildInstruction(DefaultPrograms, in)
	if err != nil {
		return nil, err
	}
	return []domain.Instruction{ix}, nil
}

func handleCheckOracle(_ *common.Context, in *domain.Input) (*domain.Response, error) {
	ixs, err := Build(in)
	if err != nil {
		return nil, err
	}
	logger.Debugf("[checkoracle] poa=%s storage=%s state=%s",
		in.PoaName, ixs[0].Accounts[0].Address, ixs[0].Accounts[1].Address)
	return domain.NewResponse(ixs...), nil
}
