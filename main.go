package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/KdbAzizul/rescuemesh-sos-service/api"
	"github.com/KdbAzizul/rescuemesh-sos-service/cache"
	"github.com/KdbAzizul/rescuemesh-sos-service/external/disaster"
	"github.com/KdbAzizul/rescuemesh-sos-service/external/matching"
	"github.com/KdbAzizul/rescuemesh-sos-service/messaging"
	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
	"github.com/KdbAzizul/rescuemesh-sos-service/store"
)

var (
	server     *api.Server
	sosStore   store.SOSStore
	matchCache *cache.Cache
	publisher  *messaging.AMQPPublisher
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
	viper.SetEnvPrefix("sos")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown sos api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if publisher != nil {
			publisher.Close()
		}

		if matchCache != nil {
			matchCache.Close()
		}

		if sosStore != nil {
			sosStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
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

	// Init machinery over redis for background job enqueueing
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "sos_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.Connect(context.Background(), opts)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
	log.WithField("prefix", "init").Info("Initialized mongodb indexes")

	sosStore = store.NewSOSStore(mongoClient, viper.GetString("mongo.database"))

	// initialise the matching trigger channel
	publisher, err = messaging.NewAMQPPublisher(
		viper.GetString("amqp.conn"),
		viper.GetString("amqp.queue.matching"),
	)
	if nil != err {
		log.Panicf("connect message broker with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized message queue")

	matchCache = cache.New(viper.GetString("redis.cache"))

	// Init http server
	server = api.NewServer(
		sosStore,
		matchCache,
		publisher,
		disaster.New(viper.GetString("disaster.endpoint"), httpClient),
		matching.New(viper.GetString("matching.endpoint"), httpClient),
		machineryServer)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
