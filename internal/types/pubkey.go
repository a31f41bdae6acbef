package types

import (
	"fmt"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
)

const PubkeyLength = 32

type Pubkey [PubkeyLength]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

// ToSdk 转换为 blocto SDK 的 PublicKey，用于复用 SDK 的指令构造器
func (p Pubkey) ToSdk() common.PublicKey {
	return common.PublicKey(p)
}

func PubkeyFromSdk(pk common.PublicKey) Pubkey {
	return Pubkey(pk)
}

// PubkeyFromBytes 从原始字节构造 Pubkey，长度必须为 32
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	if len(b) != PubkeyLength {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want %d", len(b), PubkeyLength)
	}
	var p Pubkey
	copy(p[:], b)
	return p, nil
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	if len(data) != PubkeyLength {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want %d, input=%q", len(data), PubkeyLength, s)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}

// PubkeyFromBase58 用于常量地址，解析失败直接 panic
func PubkeyFromBase58(s string) Pubkey {
	p, err := TryPubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}
