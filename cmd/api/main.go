package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/odremano/OBProyect/internal/cache"
	"github.com/odremano/OBProyect/internal/config"
	dbpkg "github.com/odremano/OBProyect/internal/db"
	"github.com/odremano/OBProyect/internal/logger"
	"github.com/odremano/OBProyect/internal/media"
	"github.com/odremano/OBProyect/internal/metrics"
	"github.com/odremano/OBProyect/internal/middleware"
	"github.com/odremano/OBProyect/internal/payments"
	"github.com/odremano/OBProyect/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.New(cfg.GinMode)

	db := dbpkg.NewDB(cfg)

	// ------------------------------
	// Infra opcional
	// ------------------------------
	var availCache *cache.AvailabilityCache
	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		availCache = cache.NewAvailabilityCache(rdb)
		zlog.Info().Str("addr", cfg.RedisAddr).Msg("cache de disponibilidad habilitado")
	}

	var storage *media.Storage
	if cfg.MediaEnabled() {
		storage, err = media.NewStorage(media.StorageConfig{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
			PublicURL:       cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatalf("failed to init storage: %v", err)
		}
	}

	var provider *payments.Provider
	if cfg.PaymentsEnabled() {
		provider, err = payments.NewProvider(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatalf("failed to init payments: %v", err)
		}
	}

	m := metrics.New("obproyect")

	// ------------------------------
	// HTTP
	// ------------------------------
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Log:      zlog,
		Cache:    availCache,
		Storage:  storage,
		Payments: provider,
		Metrics:  m,
	})

	zlog.Info().Str("addr", cfg.Addr()).Msg("servidor iniciado")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
