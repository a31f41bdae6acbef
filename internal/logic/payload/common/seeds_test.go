package common

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSeeds(t *testing.T) {
	b, err := EncodeU32Seed(75)
	require.NoError(t, err)
	assert.Equal(t, []byte{75, 0, 0, 0}, b)

	b, err = EncodeU64Seed(75)
	require.NoError(t, err)
	assert.Equal(t, []byte{75, 0, 0, 0, 0, 0, 0, 0}, b)

	expected := make([]byte, 4)
	binary.LittleEndian.PutUint32(expected, 0x01020304)
	assert.Equal(t, expected, MustEncodeU32Seed(0x01020304))
	assert.Len(t, MustEncodeU64Seed(1<<40), 8)
}

func TestNewContext(t *testing.T) {
	assert.NotNil(t, NewContext(nil).Now)

	fixed := time.UnixMilli(1700000000000)
	ctx := NewContext(func() time.Time { return fixed })
	assert.Equal(t, fixed, ctx.Now())
}
