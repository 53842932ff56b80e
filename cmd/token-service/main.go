package main

import (
	"context"

	"github.com/klwxsrx/go-token-service/internal/pkg/cmd"
	"github.com/klwxsrx/go-token-service/internal/token"
	pkgcmd "github.com/klwxsrx/go-token-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := token.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Properties,
		infra.Metrics,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
