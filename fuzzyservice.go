// Fuzzy inference service

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmcloughlin/profile"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/fuzzy-infer/benchmark"

	"example.com/fuzzy-infer/core/server"

	"example.com/fuzzy-infer/net/fisapi"
)

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(log *zap.Logger, metricsAddr string) {
	if metricsAddr == "" {
		metricsAddr = "127.0.0.1:8080"
	}
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(metricsAddr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func localAddress(cfg svcConfig) string {
	if cfg.LocalAddr == "" {
		log.Fatal("local_address not specified in config")
	}
	return cfg.LocalAddr
}

func parseInputs(declared []string, args []string) []float64 {
	req := make(map[string]float64, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			log.Fatal("failed to parse input", zap.String("input", a))
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatal("failed to parse input value",
				zap.String("input", a), zap.Error(err))
		}
		req[k] = x
	}
	inputs, err := fisapi.OrderInputs(declared, req)
	if err != nil {
		log.Fatal("failed to assemble inputs", zap.Error(err))
	}
	return inputs
}

func selectModel(models map[string]server.ServedModel, name string) server.ServedModel {
	if name == "" && len(models) == 1 {
		for _, sm := range models {
			return sm
		}
	}
	sm, ok := models[name]
	if !ok {
		log.Fatal("model not found in config", zap.String("name", name))
	}
	return sm
}

func runServer(configFile string) {
	ctx := context.Background()

	cfg := loadConfig(configFile)
	localAddr := localAddress(cfg)
	models := buildModels(cfg)
	if len(models) == 0 {
		log.Fatal("no models specified in config")
	}

	go server.StartServer(ctx, log, localAddr, models)

	runMonitor(log, cfg.MetricsAddr)
}

func runEval(configFile, modelName string, inputArgs []string) {
	cfg := loadConfig(configFile)
	models := buildModels(cfg)
	sm := selectModel(models, modelName)
	inputs := parseInputs(sm.Model.Inputs, inputArgs)

	crisp := sm.Model.EvaluateCrisp(sm.Domain.Min, sm.Domain.Max, sm.Domain.Steps, inputs)
	fmt.Printf("%v\n", crisp)
}

func runBenchmark(configFile, modelName string, inputArgs []string, profileCPU bool) {
	cfg := loadConfig(configFile)
	models := buildModels(cfg)
	sm := selectModel(models, modelName)
	inputs := parseInputs(sm.Model.Inputs, inputArgs)

	if profileCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	benchmark.RunCrispBenchmark(sm.Model, sm.Domain, inputs)
}

func exitWithUsage() {
	fmt.Println("<usage>")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
		modelName  string
		profileCPU bool
	)

	serverFlags := flag.NewFlagSet("server", flag.ExitOnError)
	evalFlags := flag.NewFlagSet("eval", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	serverFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	serverFlags.StringVar(&configFile, "config", "", "Config file")

	evalFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	evalFlags.StringVar(&configFile, "config", "", "Config file")
	evalFlags.StringVar(&modelName, "model", "", "Model name")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.StringVar(&configFile, "config", "", "Config file")
	benchmarkFlags.StringVar(&modelName, "model", "", "Model name")
	benchmarkFlags.BoolVar(&profileCPU, "profile", false, "Write CPU profile")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case serverFlags.Name():
		err := serverFlags.Parse(os.Args[2:])
		if err != nil || serverFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runServer(configFile)
	case evalFlags.Name():
		err := evalFlags.Parse(os.Args[2:])
		if err != nil {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runEval(configFile, modelName, evalFlags.Args())
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(configFile, modelName, benchmarkFlags.Args(), profileCPU)
	case "x":
		runX()
	default:
		exitWithUsage()
	}
}
