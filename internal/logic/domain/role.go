package domain

import (
	"fmt"
	"strconv"
)

// AccountRole 表示指令中账户的权限，2 bit 编码：
//
//	bit 1: is signer
//	bit 0: is writable
type AccountRole uint8

const (
	Readonly       AccountRole = 0b00
	Writable       AccountRole = 0b01
	ReadonlySigner AccountRole = 0b10
	WritableSigner AccountRole = 0b11
)

const (
	roleWritableBit AccountRole = 1 << 0
	roleSignerBit   AccountRole = 1 << 1
)

var roleNames = [...]string{
	Readonly:       "Readonly",
	Writable:       "Writable",
	ReadonlySigner: "ReadonlySigner",
	WritableSigner: "WritableSigner",
}

// NewAccountRole 将 (isWritable, isSigner) 映射为唯一的 AccountRole，四种组合一一对应
func NewAccountRole(isWritable, isSigner bool) AccountRole {
	var r AccountRole
	if isWritable {
		r |= roleWritableBit
	}
	if isSigner {
		r |= roleSignerBit
	}
	return r
}

func (r AccountRole) IsWritable() bool {
	return r&roleWritableBit != 0
}

func (r AccountRole) IsSigner() bool {
	return r&roleSignerBit != 0
}

func (r AccountRole) Valid() bool {
	return r <= WritableSigner
}

func (r AccountRole) String() string {
	if r.Valid() {
		return roleNames[r]
	}
	return "AccountRole(" + strconv.Itoa(int(r)) + ")"
}

// ParseAccountRole 校验外部传入的数值编码
func ParseAccountRole(code uint8) (AccountRole, error) {
	r := AccountRole(code)
	if !r.Valid() {
		return 0, fmt.Errorf("invalid account role code %d, want 0..3", code)
	}
	return r, nil
}
