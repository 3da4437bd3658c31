package dto

// ErrorDTO 错误返回体
type ErrorDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthDTO 健康检查返回体
type HealthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DeleteResultDTO 删除操作返回体
type DeleteResultDTO struct {
	Status  string `json:"status"`
	Deleted bool   `json:"deleted"`
}
