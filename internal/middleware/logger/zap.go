package logger

import (
	"go.uber.org/zap"
)

// NewLogger 创建一个新的 zap.Logger 实例
func NewLogger() (*zap.Logger, error) {
	// 开发环境用 zap.NewDevelopment()；上线切 zap.NewProduction() 输出 JSON
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return logger, nil
}
