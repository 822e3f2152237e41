// 手动向上游模型发送一次请求，用于部署后检查密钥和模型配置
//
// 用法:
//
//	go run scripts/ask_once.go "오늘 날씨 어때?"
//	go run scripts/ask_once.go -log day.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"daylog_relay/internal/config"
	"daylog_relay/internal/model"
	"daylog_relay/internal/service"
	"daylog_relay/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	logFile := flag.String("log", "", "活动记录 JSON 文件，指定后进行评分")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	provider, err := service.NewProvider(cfg.AI)
	if err != nil {
		log.Fatalf("初始化模型失败: %v", err)
	}
	relay := service.NewRelayService(provider)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AI.Timeout()+5*time.Second)
	defer cancel()

	var out interface{}
	if *logFile != "" {
		data, err := os.ReadFile(*logFile)
		if err != nil {
			log.Fatalf("无法读取活动记录: %v", err)
		}
		var day model.ActivityLog
		if err := json.Unmarshal(data, &day); err != nil {
			log.Fatalf("解析活动记录失败: %v", err)
		}
		out, err = relay.ScoreLog(ctx, day)
		if err != nil {
			log.Fatalf("评分失败: %v", err)
		}
	} else {
		question := strings.TrimSpace(strings.Join(flag.Args(), " "))
		if question == "" {
			log.Fatal("请提供问题或 -log 参数")
		}
		out, err = relay.AskQuestion(ctx, question)
		if err != nil {
			log.Fatalf("请求失败: %v", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
