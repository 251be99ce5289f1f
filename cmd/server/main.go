package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rule-mcp/internal/api"
	"github.com/vfg2006/rule-mcp/internal/config"
	"github.com/vfg2006/rule-mcp/internal/mcp"
	"github.com/vfg2006/rule-mcp/internal/version"
	"github.com/vfg2006/rule-mcp/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())
	logrus.Infof("rule-mcp versão %s", version.Get())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Um cliente novo por despacho, com a chave vinda de cada envelope
	dispatcher := mcp.New(
		mcp.WithRoutes(mcp.DefaultRoutes()...),
		mcp.WithClientFactory(mcp.DefaultClientFactory(cfg.Rule.ClientOptions()...)),
	)

	server, err := api.New(cfg, dispatcher)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
