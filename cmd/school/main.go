package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"SchoolServer/internal/bootstrap"
	"SchoolServer/pkg/routes"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		routes.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
	app.Run()
}
