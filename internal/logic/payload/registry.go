package payload

import (
	"fmt"
	"oracle-payload-sol/internal/logic/payload/checkoracle"
	"oracle-payload-sol/internal/logic/payload/common"
	"oracle-payload-sol/internal/logic/payload/demotransfer"
	"oracle-payload-sol/internal/logic/payload/timestamporacle"
	"sort"
	"strings"
	"sync"
)

// handlers 是 payload 名称 → 构造器的路由表，各 payload 模块通过 RegisterHandlers 注册
var (
	handlers = map[string]common.Handler{}
	initOnce sync.Once
)

// Init 注册所有内置 payload，可重复调用
func Init() {
	initOnce.Do(func() {
		checkoracle.RegisterHandlers(handlers)
		timestamporacle.RegisterHandlers(handlers)
		demotransfer.RegisterHandlers(handlers)
	})
}

type UnknownPayloadError struct {
	Name string
}

func (e *UnknownPayloadError) Error() string {
	return fmt.Sprintf("unknown payload %q, available: %s", e.Name, strings.Join(Names(), ", "))
}

// Lookup 根据名称查找 payload
func Lookup(name string) (common.Handler, error) {
	Init()
	h, ok := handlers[name]
	if !ok {
		return common.Handler{}, &UnknownPayloadError{Name: name}
	}
	return h, nil
}

// Names 返回已注册的 payload 名称（字典序）
func Names() []string {
	Init()
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
