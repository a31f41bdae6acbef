package input

import (
	"encoding/json"
	"fmt"
	"github.com/zeromicro/go-zero/core/jsonx"
	"oracle-payload-sol/internal/logic/domain"
	"oracle-payload-sol/pkg/logger"
	"os"
	"sort"
	"strings"
)

// 输入 JSON 字段名（camelCase，与 Cambrian 执行器保持一致）
const (
	FieldPoaName            = "poaName"
	FieldProposalStorageKey = "proposalStorageKey"
	FieldExecutorPDA        = "executorPDA"
)

// InputError 表示输入缺失、无法解析或缺少必填字段，属于致命错误
type InputError struct {
	Field  string // 出错的字段；整体输入有问题时为环境变量名或 "input"
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("invalid input field %q: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// knownFields 为可识别的输入字段，按固定顺序校验
var knownFields = []string{
	FieldPoaName,
	FieldProposalStorageKey,
	FieldExecutorPDA,
}

func isKnownField(field string) bool {
	for _, f := range knownFields {
		if f == field {
			return true
		}
	}
	return false
}

// unknownFields 返回未识别的字段名（字典序）
func unknownFields(fields map[string]any) []string {
	var unknown []string
	for field := range fields {
		if !isKnownField(field) {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// FromEnv 读取环境变量 env 并解析，未设置与空值同样视为缺失
func FromEnv(env string, required ...string) (*domain.Input, error) {
	return parse(env, os.Getenv(env), required)
}

// Parse 解析输入 JSON，required 中的字段必须存在且为字符串
func Parse(raw string, required ...string) (*domain.Input, error) {
	return parse("input", raw, required)
}

func parse(source, raw string, required []string) (*domain.Input, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &InputError{Field: source, Reason: "empty input"}
	}

	// 整个输入必须恰好是一个 JSON 值，尾随内容或多个对象都视为格式错误
	if !json.Valid([]byte(raw)) {
		return nil, &InputError{Field: source, Reason: "malformed JSON, want an object"}
	}

	var fields map[string]any
	if err := jsonx.UnmarshalFromString(raw, &fields); err != nil {
		return nil, &InputError{Field: source, Reason: "malformed JSON, want an object", Err: err}
	}

	if unknown := unknownFields(fields); len(unknown) > 0 {
		logger.Warnf("[input] ignoring unknown fields in %s: %s", source, strings.Join(unknown, ", "))
	}

	values := make(map[string]string, len(knownFields))
	for _, field := range knownFields {
		v, ok := fields[field]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, &InputError{Field: field, Reason: fmt.Sprintf("must be a string, got %T", v)}
		}
		values[field] = s
	}

	for _, field := range required {
		if !isKnownField(field) {
			return nil, &InputError{Field: field, Reason: "unknown field"}
		}
		if _, ok := values[field]; !ok {
			return nil, &InputError{Field: field, Reason: "missing required field"}
		}
	}

	return &domain.Input{
		PoaName:            values[FieldPoaName],
		ProposalStorageKey: values[FieldProposalStorageKey],
		ExecutorPDA:        values[FieldExecutorPDA],
	}, nil
}
