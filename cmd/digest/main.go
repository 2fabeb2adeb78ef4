package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stock-digest/internal/digest/api"
	"stock-digest/internal/digest/helper"
	"stock-digest/internal/digest/scheduler"
	"stock-digest/internal/digest/source"
	"stock-digest/internal/middleware/logger"
	"stock-digest/pkg/config"
)

func main() {

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {

		}
	}(log)

	// 本地开发把桥接 token 放 .env，没有这个文件也不算错
	_ = godotenv.Load()

	ctx := context.Background()

	log.Info("Starting Stock Digest Service...")

	// 配置缺失直接 panic：宁可整轮不跑，也不拉一半消息
	cfg, err := config.LoadConfig("config/1-config.yaml")
	if err != nil {
		panic(err)
	}

	if err := helper.ConfigureTimeLocation(cfg.Pipeline.Timezone); err != nil {
		panic(err)
	}

	stores := helper.MustMongo(
		ctx,
		cfg.Mongo.Host,
		cfg.Mongo.DBName,
		cfg.Mongo.Username,
		cfg.Mongo.Password,
		cfg.Mongo.AuthSource,
	)

	src := &source.Client{
		Log:        log,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    cfg.Source.BaseURL,
		Token:      cfg.Source.Token,
		Channel:    cfg.Source.Channel,
	}

	// 2) 启动定时管道 worker
	worker := &scheduler.Worker{
		Log:    log,
		Stores: stores,
		Source: src,
		Cfg:    cfg,
	}
	go worker.Run(context.Background())

	// 3) 起 HTTP API
	srv := &api.Server{Stores: stores}
	r := srv.Router()
	_ = r.SetTrustedProxies(nil)
	log.Info("Stock Digest Service is running", zap.String("address", cfg.Server.Addr))
	_ = r.Run(cfg.Server.Addr)
}
