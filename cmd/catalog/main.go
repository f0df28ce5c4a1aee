// Package main library catalog API.
//
// @title       Library catalog API
// @version     1.0
// @description Books, patrons, loans and returns of a single branch catalog.
// @BasePath    /
package main

import (
	"io/fs"
	stdLog "log"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/app"
	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

//go:generate swag init -g cmd/catalog/main.go -d ../.. -o ../../swagger --parseInternal

func main() {
	// .env is optional, the environment alone is enough
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
