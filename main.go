// @title Daylog Relay API
// @version 1.0
// @description 问答与每日活动达成率评分的上游模型转发服务。

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"

	"daylog_relay/internal/app"
	"daylog_relay/internal/config"
	"daylog_relay/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	application.Run()
}
