package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/suryatech/solarportal/config"
	"github.com/suryatech/solarportal/internal/adminapi"
	"github.com/suryatech/solarportal/internal/app"
	"github.com/suryatech/solarportal/internal/portalapi"
	"github.com/suryatech/solarportal/internal/webserver"
)

var (
	h        bool
	initdb   bool
	conffile string
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&initdb, "initdb", false, "drop and recreate all tables")
	flag.StringVar(&conffile, "c", "solarportal.yml", "config file")
}

func main() {
	flag.Parse()
	if h {
		flag.Usage()
		os.Exit(0)
	}

	cfg := config.LoadConfig(conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if initdb {
		application.InitDb()
		fmt.Println("database initialized")
		os.Exit(0)
	}

	webserver.Init(application)
	portalapi.InitRouter()
	adminapi.InitRouter()

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.L().Fatal("web server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
}
