package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ByteArray 序列化为 JSON 整数数组（0~255），而不是 encoding/json 默认的 base64 字符串，
// 下游按字节数组解析 data 字段。
type ByteArray []byte

func (b ByteArray) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(b)*4)
	buf = append(buf, '[')
	for i, v := range b {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	buf = append(buf, ']')
	return buf, nil
}

func (b *ByteArray) UnmarshalJSON(data []byte) error {
	// 不能直接解到 []byte，否则会按 base64 处理
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("data must be an array of byte values: %w", err)
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("data[%d]=%d out of byte range", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
