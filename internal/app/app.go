package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"github.com/patriotcart/savings-api/internal/affiliate"
	"github.com/patriotcart/savings-api/internal/config"
	"github.com/patriotcart/savings-api/internal/repo/mongodb"
	"github.com/patriotcart/savings-api/internal/server"
	"github.com/patriotcart/savings-api/internal/usecase"
	"github.com/patriotcart/savings-api/pkg/util"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newCache,
			newPublisher,
			util.NewRestyClient,

			affiliate.NewAmazon,
			affiliate.NewWalmart,
			newAggregator,

			mongodb.NewProductRepository,
			mongodb.NewSavingsRepository,
			mongodb.NewAnalyticsRepository,

			usecase.NewProductUsecase,
			usecase.NewAnalyticsUsecase,
			usecase.NewSavingsUsecase,

			server.NewController,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}

// newAggregator fixes the provider iteration order: Amazon first, then
// Walmart, matching the merge order callers observe.
func newAggregator(amazon *affiliate.Amazon, walmart *affiliate.Walmart) affiliate.Searcher {
	return affiliate.NewAggregator(amazon, walmart)
}
