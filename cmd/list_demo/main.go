package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"github.com/lueurxax/singlell/internal/log"
	"github.com/lueurxax/singlell/internal/singlell"
)

var version = "dev"

const pkgKey = "pkg"

type config struct {
	LoggerLevel logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs    bool         `envconfig:"LOG_TO_ECS" default:"false"`
	Count       int          `envconfig:"COUNT" default:"10"`
	Format      string       `envconfig:"FORMAT" default:"text"`   // text, json or yaml
	MetricsAddr string       `envconfig:"METRICS_ADDR" default:""` // empty disables the metrics endpoint
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	list, err := singlell.NewMetricsMiddleware(singlell.New[int](), prometheus.DefaultRegisterer, "demo")
	if err != nil {
		panic(err)
	}

	list = singlell.NewTraceMiddleware(list, logger.WithField(pkgKey, "singlell"))

	for i := 0; i < cfg.Count; i++ {
		list.PushBack(i)
	}

	if front, ok := list.Front(); ok {
		back, _ := list.Back()
		logger.WithField("len", list.Len()).Infof("front %d, back %d", front, back)
	} else {
		logger.Warn("list is empty")
	}

	data, err := render(list, cfg.Format)
	if err != nil {
		logger.WithError(err).Error("render list")
		return
	}

	fmt.Println(data)

	if cfg.MetricsAddr == "" {
		return
	}

	srv := newMetricsServer(cfg.MetricsAddr, logger.WithField(pkgKey, "metrics"))
	if err = srv.Serve(ctx); err != nil {
		logger.WithError(err).Error("metrics server")
	}
}
