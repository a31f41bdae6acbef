package domain

// Input 是 Cambrian 执行器传入的 payload 参数
type Input struct {
	PoaName            string // Proof of Authority 名称
	ProposalStorageKey string // proposal storage 槽位 key
	ExecutorPDA        string // 执行器 PDA（base58），仅 demo-transfer 使用
}
