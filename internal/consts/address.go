package consts

import "oracle-payload-sol/internal/types"

// Base58 地址常量（与链上部署版本绑定，修改即视为协议升级）
const (
	// System
	SystemProgramStr      = "11111111111111111111111111111111"
	SysvarInstructionsStr = "Sysvar1nstructions1111111111111111111111111"

	// Cambrian: check-oracle
	ThresholdSignatureProgramStr = "FGgNUqGxdEYM1gVtQT5QcTbzNv4y1UPoVvXPRnooBdxo"
	OracleProgramStr             = "ECb6jyKXDTE8NjVjsKgNpjSjcv4h2E7JQ42yKqWihBQE"

	// Cambrian: timestamp-oracle（统计版本，独立部署）
	TimestampThresholdSignatureProgramStr = "CsHC9SCyZWVg2aBNCe8iZTcxdBHZYEE68uMueTxLkniy"
	TimestampOracleProgramStr             = "8MrJKa7VYuJSdkMgV4GkJA6e4UnsoGWoYrWsikt5mhNg"

	// Cambrian: local-time-oracle（kit 版 check-oracle 部署）
	LocalTimeThresholdSignatureProgramStr = "HPGYYhSMhNWcqG4zUeM7T5jRrcZmJjdkADQL5eo3Q8Go"
	LocalTimeOracleProgramStr             = "6c9oWqHxydVHBKVd3D4BEw2FKvWh14zFetT4zbkXSwzb"

	// Cambrian: demo-transfer 示例收款地址
	DemoTransferRecipientStr = "DnXet6kPAWkk2bjC55wvqKkRKkLcMAvdGxeAniNyM2GY"
)

var (
	SystemProgram      = types.PubkeyFromBase58(SystemProgramStr)
	SysvarInstructions = types.PubkeyFromBase58(SysvarInstructionsStr)

	ThresholdSignatureProgram = types.PubkeyFromBase58(ThresholdSignatureProgramStr)
	OracleProgram             = types.PubkeyFromBase58(OracleProgramStr)

	TimestampThresholdSignatureProgram = types.PubkeyFromBase58(TimestampThresholdSignatureProgramStr)
	TimestampOracleProgram             = types.PubkeyFromBase58(TimestampOracleProgramStr)

	LocalTimeThresholdSignatureProgram = types.PubkeyFromBase58(LocalTimeThresholdSignatureProgramStr)
	LocalTimeOracleProgram             = types.PubkeyFromBase58(LocalTimeOracleProgramStr)

	DemoTransferRecipient = types.PubkeyFromBase58(DemoTransferRecipientStr)
)
