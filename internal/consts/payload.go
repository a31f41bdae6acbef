package consts

const (
	PayloadCheckOracle     = "check-oracle"
	PayloadTimestampOracle = "timestamp-oracle"
	PayloadLocalTimeOracle = "local-time-oracle"
	PayloadDemoTransfer    = "demo-transfer"
)

// PDA seed 前缀
const (
	StorageSeed = "STORAGE"
	StateSeed   = "STATE"
)

// StorageSpace 为 proposal storage 预留的字节数（3 条指令 × 25 字节）。
// 该值参与 storage PDA 推导，必须与链上已有状态保持一致，不能按指令数重新计算。
const StorageSpace uint32 = 75

// DemoTransferLamports 为 demo-transfer 的转账金额（0.005 SOL）
const DemoTransferLamports uint64 = 5_000_000

// DefaultInputEnv 是 Cambrian 执行器传入 payload 输入的环境变量
const DefaultInputEnv = "CAMB_INPUT"
