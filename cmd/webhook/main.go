// Package main 提供支付回调服务
//
// 收到 Razorpay 的 payment.captured 回调后校验 HMAC-SHA256 签名，
// 并向付款邮箱发送资源交付邮件。
//
// 用法:
//
//	WEBHOOK_SECRET=... SMTP_PASSWORD=... go run ./cmd/webhook --config data/webhook.yaml
//
// 密钥只从环境变量读取，见 config.EnvWebhookSecret 和 config.EnvSMTPPassword。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gonewx/webaddicted/pkg/config"
	"github.com/gonewx/webaddicted/pkg/mailer"
	"github.com/gonewx/webaddicted/pkg/webhook"
)

// shutdownTimeout 收到退出信号后等待进行中请求的时间
const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "回调服务配置文件路径（为空时使用默认值）")
	addr := flag.String("addr", "", "监听地址，覆盖配置中的 listen_addr")
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := run(*configPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "webhook: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr string) error {
	cfg, err := config.LoadWebhookConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	m, err := mailer.New(cfg.SMTP, cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, webhook.NewHandler(cfg.Secret, m,
		webhook.WithSignatureHeader(cfg.SignatureHeader),
		webhook.WithMaxBodyBytes(cfg.MaxBodyBytes),
	))

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Webhook] Listening on %s%s", cfg.ListenAddr, cfg.Path)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[Webhook] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
