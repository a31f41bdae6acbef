// Package codec 负责 Response 与 Cambrian proposal JSON 之间的转换。
//
// 输出格式：
//
//	{
//	  "proposalInstructions": [
//	    {
//	      "programAddress": "<base58>",
//	      "accounts": [ { "address": "<base58>", "role": 0..3 } ],
//	      "data": [ 0..255, ... ]
//	    }
//	  ],
//	  "storagePayload": { "encoding": "utf-8", "data": "..." }   // 可选
//	}
package codec

import (
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/jsonx"
	"io"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/internal/types"
)

const indent = "  "

type AccountMeta struct {
	Address string `json:"address"`
	Role    uint8  `json:"role"` // AccountRole 原始数值，不输出名称
}

type ProposalInstruction struct {
	ProgramAddress string        `json:"programAddress"`
	Accounts       []AccountMeta `json:"accounts"`
	Data           ByteArray     `json:"data"`
}

type StoragePayload struct {
	Encoding string `json:"encoding"`
	Data     string `json:"data"`
}

// Output 是写到 stdout 的顶层结构
type Output struct {
	ProposalInstructions []ProposalInstruction `json:"proposalInstructions"`
	StoragePayload       *StoragePayload       `json:"storagePayload,omitempty"`
}

// EncodingError 表示 JSON 序列化失败。数据模型是封闭的，正常情况下不会出现。
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "encode response: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// ToOutput 将 domain.Response 转换为 JSON 结构，空列表输出为 [] 而不是 null
func ToOutput(resp *domain.Response) *Output {
	out := &Output{
		ProposalInstructions: make([]ProposalInstruction, 0, len(resp.Instructions)),
	}
	for _, ix := range resp.Instructions {
		accounts := make([]AccountMeta, 0, len(ix.Accounts))
		for _, meta := range ix.Accounts {
			accounts = append(accounts, AccountMeta{
				Address: meta.Address.String(),
				Role:    uint8(meta.Role),
			})
		}
		data := make(ByteArray, len(ix.Data))
		copy(data, ix.Data)

		out.ProposalInstructions = append(out.ProposalInstructions, ProposalInstruction{
			ProgramAddress: ix.ProgramID.String(),
			Accounts:       accounts,
			Data:           data,
		})
	}
	if resp.StoragePayload != nil {
		out.StoragePayload = &StoragePayload{
			Encoding: resp.StoragePayload.Encoding,
			Data:     resp.StoragePayload.Data,
		}
	}
	return out
}

// Encode 输出带缩进的 JSON 文本（不含结尾换行）
func Encode(resp *domain.Response) (string, error) {
	if resp == nil {
		return "", &EncodingError{Err: errors.New("nil response")}
	}
	b, err := json.MarshalIndent(ToOutput(resp), "", indent)
	if err != nil {
		return "", &EncodingError{Err: err}
	}
	return string(b), nil
}

// Write 将 Encode 的结果写入 w，并以换行结尾
func Write(w io.Writer, resp *domain.Response) error {
	text, err := Encode(resp)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return errors.Wrap(err, "write response")
	}
	return nil
}

// Decode 解析 Encode 产生的 JSON，并校验地址与 role 编码
func Decode(text string) (*domain.Response, error) {
	if !json.Valid([]byte(text)) {
		return nil, errors.New("decode response: malformed JSON, want a single object")
	}

	var out Output
	if err := jsonx.UnmarshalFromString(text, &out); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	resp := &domain.Response{
		Instructions: make([]domain.Instruction, 0, len(out.ProposalInstructions)),
	}
	for i, pi := range out.ProposalInstructions {
		program, err := types.TryPubkeyFromBase58(pi.ProgramAddress)
		if err != nil {
			return nil, errors.Wrapf(err, "proposalInstructions[%d].programAddress", i)
		}
		accounts := make([]domain.AccountMeta, 0, len(pi.Accounts))
		for j, meta := range pi.Accounts {
			address, err := types.TryPubkeyFromBase58(meta.Address)
			if err != nil {
				return nil, errors.Wrapf(err, "proposalInstructions[%d].accounts[%d].address", i, j)
			}
			role, err := domain.ParseAccountRole(meta.Role)
			if err != nil {
				return nil, errors.Wrapf(err, "proposalInstructions[%d].accounts[%d].role", i, j)
			}
			accounts = append(accounts, domain.NewAccountMeta(address, role))
		}
		resp.Instructions = append(resp.Instructions, domain.NewInstruction(program, pi.Data, accounts...))
	}
	if out.StoragePayload != nil {
		resp.StoragePayload = &domain.StoragePayload{
			Encoding: out.StoragePayload.Encoding,
			Data:     out.StoragePayload.Data,
		}
	}
	return resp, nil
}
