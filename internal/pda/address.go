// Package pda 实现 Solana program derived address（PDA）的确定性推导。
//
// PDA 是 _不在_ ed25519 曲线上的公钥，因此不存在对应私钥，只能由 owner program 签名。
// 推导规则与 Solana SDK 保持一致：
//
//	sha256(seed_0 || ... || seed_n || program || "ProgramDerivedAddress")
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L158
package pda

import (
	"crypto/sha256"
	"filippo.io/edwards25519"
	"github.com/pkg/errors"
	"math"
	"oracle-payload-sol/internal/types"
)

const (
	MaxSeeds      = 16 // 含 bump seed
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")
	ErrInvalidPublicKey      = errors.New("invalid seeds, address must fall off the curve")

	// ErrDerivationExhausted 表示 255 个 bump seed 全部落在曲线上，没有可用地址
	ErrDerivationExhausted = errors.New("unable to find a viable program address bump seed")
)

var (
	programHashCtor = sha256.New
)

// CreateProgramAddress 对给定 seeds 做一次推导，不搜索 bump。
// 结果落在 ed25519 曲线上时返回 ErrInvalidPublicKey。
func CreateProgramAddress(program types.Pubkey, seeds ...[]byte) (types.Pubkey, error) {
	if len(seeds) > MaxSeeds {
		return types.Pubkey{}, ErrTooManySeeds
	}

	h := programHashCtor()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return types.Pubkey{}, errors.Wrapf(ErrMaxSeedLengthExceeded, "seed length %d", len(s))
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write([]byte(pdaMarker))

	pub, err := types.PubkeyFromBytes(h.Sum(nil))
	if err != nil {
		return types.Pubkey{}, errors.Wrap(err, "program address digest")
	}

	if IsOnCurve(pub) {
		return types.Pubkey{}, ErrInvalidPublicKey
	}
	return pub, nil
}

// IsOnCurve 判断 32 字节是否为合法的 compressed Edwards point。
// filippo.io/edwards25519 与 curve25519-dalek 一样接受非规范编码，行为和链上一致。
func IsOnCurve(p types.Pubkey) bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}

// FindProgramAddressAndBump 从 bump=255 开始向下搜索第一个不在曲线上的地址，返回地址与 bump。
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/pubkey.rs#L234
func FindProgramAddressAndBump(program types.Pubkey, seeds ...[]byte) (types.Pubkey, uint8, error) {
	// 需要给 bump seed 预留一个位置
	if len(seeds) >= MaxSeeds {
		return types.Pubkey{}, 0, ErrTooManySeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return types.Pubkey{}, 0, errors.Wrapf(ErrMaxSeedLengthExceeded, "seed length %d", len(s))
		}
	}

	bumpSeed := []byte{math.MaxUint8}
	withBump := make([][]byte, len(seeds), len(seeds)+1)
	copy(withBump, seeds)
	withBump = append(withBump, bumpSeed)

	for i := 0; i < math.MaxUint8; i++ {
		pub, err := CreateProgramAddress(program, withBump...)
		if err == nil {
			return pub, bumpSeed[0], nil
		}
		if !errors.Is(err, ErrInvalidPublicKey) {
			return types.Pubkey{}, 0, err
		}
		bumpSeed[0]--
	}

	return types.Pubkey{}, 0, errors.Wrapf(ErrDerivationExhausted, "program=%s", program)
}

// FindProgramAddress 与 FindProgramAddressAndBump 相同，只返回地址
func FindProgramAddress(program types.Pubkey, seeds ...[]byte) (types.Pubkey, error) {
	pub, _, err := FindProgramAddressAndBump(program, seeds...)
	return pub, err
}
