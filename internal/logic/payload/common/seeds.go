package common

import (
	"fmt"
	"github.com/near/borsh-go"
)

// EncodeU32Seed 将整数编码为 4 字节小端 seed（borsh 中 u32 的布局）
func EncodeU32Seed(v uint32) ([]byte, error) {
	b, err := borsh.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("encode u32 seed %d: %w", v, err)
	}
	return b, nil
}

// EncodeU64Seed 将整数编码为 8 字节小端 seed
func EncodeU64Seed(v uint64) ([]byte, error) {
	b, err := borsh.Serialize(v)
	if err != nil {
		return nil, fmt.Errorf("encode u64 seed %d: %w", v, err)
	}
	return b, nil
}

func MustEncodeU32Seed(v uint32) []byte {
	b, err := EncodeU32Seed(v)
	if err != nil {
		panic(err)
	}
	return b
}

func MustEncodeU64Seed(v uint64) []byte {
	b, err := EncodeU64Seed(v)
	if err != nil {
		panic(err)
	}
	return b
}
