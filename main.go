package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/boundary-api/api"
	"github.com/bitmark-inc/boundary-api/consts"
	"github.com/bitmark-inc/boundary-api/metrics"
	"github.com/bitmark-inc/boundary-api/store"
)

var (
	server        *api.Server
	boundaryStore store.BoundaryStore
	metricsCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", consts.DefaultServerPort)
	viper.SetDefault("server.debug", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("store.driver", consts.DefaultStoreDriver)
	viper.SetDefault("boundary.states", consts.DefaultStatesBoundaryFile)
	viper.SetDefault("boundary.districts", consts.DefaultDistrictBoundaryFiles())
	viper.SetDefault("mongo.pool", 10)
	viper.SetDefault("metrics.prefix", "boundary")
	viper.SetDefault("metrics.interval", time.Minute)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("boundary")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func newBoundaryStore(registry store.Registry) (store.BoundaryStore, error) {
	switch driver := viper.GetString("store.driver"); driver {
	case "file":
		return store.NewFileStore(registry), nil
	case "mongo":
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := mongoClient.Connect(context.Background()); nil != err {
			return nil, fmt.Errorf("connect mongo database with error: %s", err)
		}

		return store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), registry), nil
	default:
		return nil, fmt.Errorf("%w: %s", store.ErrUnknownDriver, driver)
	}
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown boundary api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if boundaryStore != nil {
			log.Info("Shutting down boundary store")
			boundaryStore.Close()
		}

		if metricsCloser != nil {
			if err := metricsCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if viper.GetBool("server.debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	registry := store.NewRegistry(
		viper.GetString("boundary.states"),
		viper.GetStringMapString("boundary.districts"),
	)

	var err error
	boundaryStore, err = newBoundaryStore(registry)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Initialized %s boundary store", viper.GetString("store.driver"))

	scope, closer := metrics.NewRootScope(
		viper.GetString("metrics.prefix"),
		viper.GetDuration("metrics.interval"),
		metrics.NewLogReporter(log.StandardLogger()),
	)
	metricsCloser = closer

	// Init http server
	server = api.NewServer(boundaryStore, scope)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
