package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountRole(t *testing.T) {
	cases := []struct {
		isWritable bool
		isSigner   bool
		expected   AccountRole
		code       uint8
	}{
		{isWritable: false, isSigner: false, expected: Readonly, code: 0b00},
		{isWritable: true, isSigner: false, expected: Writable, code: 0b01},
		{isWritable: false, isSigner: true, expected: ReadonlySigner, code: 0b10},
		{isWritable: true, isSigner: true, expected: WritableSigner, code: 0b11},
	}

	seen := make(map[AccountRole]bool)
	for _, tc := range cases {
		role := NewAccountRole(tc.isWritable, tc.isSigner)
		assert.Equal(t, tc.expected, role)
		assert.Equal(t, tc.code, uint8(role))
		assert.Equal(t, tc.isWritable, role.IsWritable())
		assert.Equal(t, tc.isSigner, role.IsSigner())
		assert.True(t, role.Valid())
		seen[role] = true
	}
	assert.Len(t, seen, 4)
}

func TestAccountRole_String(t *testing.T) {
	assert.Equal(t, "Readonly", Readonly.String())
	assert.Equal(t, "Writable", Writable.String())
	assert.Equal(t, "ReadonlySigner", ReadonlySigner.String())
	assert.Equal(t, "WritableSigner", WritableSigner.String())
	assert.Equal(t, "AccountRole(4)", AccountRole(4).String())
}

func TestParseAccountRole(t *testing.T) {
	for code := uint8(0); code <= 3; code++ {
		role, err := ParseAccountRole(code)
		require.NoError(t, err)
		assert.Equal(t, AccountRole(code), role)
	}

	_, err := ParseAccountRole(4)
	assert.Error(t, err)
	_, err = ParseAccountRole(255)
	assert.Error(t, err)
}
