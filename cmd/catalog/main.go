package main

import (
	"github.com/smallbiznis/catalog/internal/catalog"
	"github.com/smallbiznis/catalog/internal/clock"
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/internal/server"
	"github.com/smallbiznis/catalog/internal/store"
	"github.com/smallbiznis/catalog/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		clock.Module,
		store.Module,
		catalog.Module,
		server.Module,
	)

	app.Run()
}
