package domain

import (
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"oracle-payload-sol/internal/types"
)

// AccountMeta 表示指令引用的一个账户及其权限
type AccountMeta struct {
	Address types.Pubkey
	Role    AccountRole
}

func NewAccountMeta(address types.Pubkey, role AccountRole) AccountMeta {
	return AccountMeta{Address: address, Role: role}
}

// Instruction 表示一条待提交的链上指令描述（proposal instruction）。
type Instruction struct {
	ProgramID types.Pubkey  // 目标程序地址
	Accounts  []AccountMeta // 账户列表，下游按位置索引，顺序必须保持构造时的原样
	Data      []byte        // 指令数据，对本系统不透明
}

// NewInstruction 拷贝 accounts 与 data，构造后的 Instruction 不与调用方共享底层数组
func NewInstruction(programID types.Pubkey, data []byte, accounts ...AccountMeta) Instruction {
	ix := Instruction{
		ProgramID: programID,
		Accounts:  make([]AccountMeta, len(accounts)),
		Data:      make([]byte, len(data)),
	}
	copy(ix.Accounts, accounts)
	copy(ix.Data, data)
	return ix
}

// FromSdkInstruction 将 blocto SDK 构造的指令转换为 proposal instruction，
// (IsWritable, IsSigner) 通过 NewAccountRole 编码为 AccountRole。
func FromSdkInstruction(ix sdktypes.Instruction) Instruction {
	accounts := make([]AccountMeta, 0, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		accounts = append(accounts, AccountMeta{
			Address: types.PubkeyFromSdk(meta.PubKey),
			Role:    NewAccountRole(meta.IsWritable, meta.IsSigner),
		})
	}
	return NewInstruction(types.PubkeyFromSdk(ix.ProgramID), ix.Data, accounts...)
}

// StoragePayload 是随 proposal 一起写入 storage 的附加数据
type StoragePayload struct {
	Encoding string
	Data     string
}

// Response 是一次 payload 执行的完整输出
type Response struct {
	Instructions   []Instruction
	StoragePayload *StoragePayload // 可为空
}

func NewResponse(instructions ...Instruction) *Response {
	return &Response{Instructions: instructions}
}

func NewResponseFromSdk(instructions ...sdktypes.Instruction) *Response {
	ixs := make([]Instruction, 0, len(instructions))
	for _, ix := range instructions {
		ixs = append(ixs, FromSdkInstruction(ix))
	}
	return &Response{Instructions: ixs}
}
