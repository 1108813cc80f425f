package dto

// SyncPricesResp 调价任务结果
type SyncPricesResp struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Updated int      `json:"updated"`
	Checked int      `json:"checked"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
