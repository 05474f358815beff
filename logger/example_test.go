package logger_test

import (
	"github.com/sirupsen/logrus"

	"github.com/mordilloSan/srflog/logger"
)

// This example connects under local0 with everything enabled.
func ExampleInit() {
	if err := logger.Init(logger.Config{Level: logger.InternalLevel, Facility: "local0"}); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Debug("debug is on")
	logger.Infof("hello %s", "world")
	logger.Warn("be careful")
	logger.Error("oops")
}

// This example reads the threshold and facility from OSRF_LOG_* variables.
func ExampleConfigFromEnv() {
	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg); err != nil {
		panic(err)
	}
	logger.Info("configured from the environment")
}

// This example routes an existing logrus logger through syslog.
func ExampleNewHook() {
	l, err := logger.New(logger.Config{Level: logger.InfoLevel, Facility: "local1"})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	log := logrus.New()
	log.AddHook(logger.NewHook(l))
	log.WithField("port", 8080).Info("listening")
}
