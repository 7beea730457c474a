package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/recs-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/recs-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/recs-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/recs-backend/internal/infrastructure/minio"
	"github.com/DRSN-tech/recs-backend/internal/infrastructure/shopify"
	s3Repo "github.com/DRSN-tech/recs-backend/internal/repository/minio"
	"github.com/DRSN-tech/recs-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/recs-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/recs-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/clients"
	"github.com/DRSN-tech/recs-backend/pkg/closer"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	"github.com/DRSN-tech/recs-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает все слои сервиса рекомендаций и управляет их жизненным циклом.
type App struct {
	cfg          *config.Config
	logger       logger.Logger
	closer       *closer.Closer
	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	shutdownCtx  context.Context
	shutdownFn   context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "app.NewApp"

	c := closer.NewCloser(2 * time.Second)
	shutdownCtx, shutdownFn := context.WithCancel(context.Background())

	app := &App{
		cfg:         cfg,
		logger:      log,
		closer:      c,
		shutdownCtx: shutdownCtx,
		shutdownFn:  shutdownFn,
	}

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	productConv := pgdbConv.NewProductConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	relConv := pgdbConv.NewRelationshipConverterImpl()
	keyConv := pgdbConv.NewAPIKeyConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	cacheConv := redisConv.NewProductConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	relRepo := pgdb.NewRelationshipRepo(db.Pool, relConv)
	keyRepo := pgdb.NewAPIKeyRepo(db.Pool, keyConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, log)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(op, err)
	}
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)
	c.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForMirror(ctx)
	})

	catalogClient := shopify.NewClient(cfg.Shopify, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(op, err)
	}
	c.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	app.outboxWorker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	recUC := usecase.NewRecommendationUC(productRepo, userRepo, cacheRepo, catalogClient, cfg.Shopify.ShopName, log)
	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, outboxRepo, db.Pool, catalogClient, imagesInfra, cfg.Shopify.ShopName, log)
	keyUC := usecase.NewAPIKeyUC(keyRepo, log)
	relUC := usecase.NewRelationshipUC(productRepo, relRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(recUC, catalogUC, keyUC, relUC)

	app.httpSrv = v1Http.NewServer(r, cfg.Http)

	return app, nil
}

// Run запускает HTTP-сервер и outbox-воркер и блокируется до сигнала завершения.
func (a *App) Run() error {
	a.outboxWorker.Start(a.shutdownCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	a.shutdownFn()
	a.outboxWorker.Stop()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
