package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"breakfast-shop/internal/common/config"
	"breakfast-shop/internal/common/db"
	"breakfast-shop/internal/common/httpx"
	"breakfast-shop/internal/common/logger"
	"breakfast-shop/internal/common/mq"
	"breakfast-shop/internal/hub"
	"breakfast-shop/internal/orders"
	"breakfast-shop/internal/ws"
)

func main() {
	port := flag.Int("port", 0, "override HTTP_PORT")
	flag.Parse()

	lg, err := logger.New("order-events")
	if err != nil {
		os.Exit(1)
	}
	defer lg.Sync()

	cfg, err := config.Load()
	if err != nil {
		lg.Error("config_load_failed", zap.Error(err))
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	if err != nil {
		lg.Error("db_connect_failed", zap.Error(err))
		os.Exit(1)
	}
	defer pool.Close()
	lg.Info("db_connected", zap.String("host", cfg.DB.Host), zap.String("database", cfg.DB.Name))

	var bridge orders.Bridge
	if cfg.MQ.Enabled() {
		client, err := mq.Dial(cfg.MQ.Host, cfg.MQ.Port, cfg.MQ.User, cfg.MQ.Password)
		if err != nil {
			lg.Error("mq_connect_failed", zap.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		bridge = client
		lg.Info("mq_connected", zap.String("host", cfg.MQ.Host), zap.String("exchange", mq.OrdersExchange))
	}

	registry := hub.NewRegistry()
	dispatcher := hub.NewDispatcher(registry)
	svc := orders.NewService(orders.NewPG(pool), dispatcher, bridge, lg)

	mux := http.NewServeMux()
	mux.Handle("/ws/orders", ws.NewHandler(registry, svc, lg))

	srv := httpx.New(":"+strconv.Itoa(cfg.HTTPPort), mux)
	lg.Info("service_started", zap.Int("port", cfg.HTTPPort))
	if err := srv.Run(ctx); err != nil {
		lg.Error("server_failed", zap.Error(err))
		os.Exit(1)
	}
	lg.Info("service_stopped")
}
