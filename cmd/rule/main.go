package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rule-mcp/internal/cli"
	"github.com/vfg2006/rule-mcp/internal/config"
	"github.com/vfg2006/rule-mcp/pkg/log"
)

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar a configuração")
		os.Exit(1)
	}

	// Logs vão para stderr; stdout fica reservado para a saída dos comandos
	log.Configure(cfg.App.LogLevel, os.Stderr)

	os.Exit(cli.Run(context.Background(), os.Args[1:], cli.Options{
		APIKey:        cfg.Rule.APIKey,
		ClientOptions: cfg.Rule.ClientOptions(),
		Stdout:        os.Stdout,
	}))
}
