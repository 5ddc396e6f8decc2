package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"synthetics_deployer/internal/app/port"
	"synthetics_deployer/internal/app/service"
	"synthetics_deployer/internal/config"
	"synthetics_deployer/internal/deploy"
	clientprovider "synthetics_deployer/internal/infrastructure/network/client"
	networkdefinition "synthetics_deployer/internal/infrastructure/network/definition"
	"synthetics_deployer/internal/infrastructure/restapi"
	"synthetics_deployer/internal/pkg/logger"
	"synthetics_deployer/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const usage = `usage: deployer <command> [flags]

commands:
  plan   evaluate deployment steps for one network and print them as JSON
  serve  run the HTTP API`

// app bundles the wired services shared by every command.
type app struct {
	cfg          *config.Config
	log          port.Logger
	netDefs      *networkdefinition.NetworkDefinitionProvider
	environments *service.EnvironmentService
	planner      *service.PlanService
	registry     *prometheus.Registry
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		err = fmt.Errorf("unknown command %q\n%s", os.Args[1], usage)
	}
	if err != nil {
		logger.Fatal("deployer failed", "error", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func newApp(cfg *config.Config) (*app, error) {
	zapLogger, err := logger.NewZap(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}
	logger.Init(zapLogger)
	appLogger := logger.NewSlogAdapter()

	netDefs := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Networks)

	var clients port.ChainClientProvider
	if cfg.Runtime.VerifyChainID {
		clients = clientprovider.NewEVMClientProvider(cfg, appLogger)
	}
	environments := service.NewEnvironmentService(netDefs, clients, appLogger, cfg.Runtime.VerifyChainID)

	registry := prometheus.NewRegistry()
	planner, err := service.NewPlanService(deploy.DefaultRegistry, appLogger, cfg.Runtime.MaxConcurrent, registry)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		log:          appLogger,
		netDefs:      netDefs,
		environments: environments,
		planner:      planner,
		registry:     registry,
	}, nil
}

func runPlan(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("DEPLOYER_CONFIG"), "path to the YAML config file")
	network := fs.String("network", os.Getenv("DEPLOYER_NETWORK"), "network to evaluate, e.g. mantleSepolia")
	tags := fs.String("tags", "", "comma-separated tags to select steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *network == "" {
		return errors.New("plan: -network is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env, err := a.environments.Environment(ctx, *network)
	if err != nil {
		return err
	}
	selected := utils.SplitTags(*tags)
	steps, err := a.planner.Plan(ctx, env, selected)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(restapi.PlanResponse{Network: env.NetworkName(), Tags: selected, Steps: steps})
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("DEPLOYER_CONFIG"), "path to the YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := restapi.NewDeploymentHandler(a.netDefs, a.environments, a.planner, a.log)
	router := restapi.SetupRouter(handler, cfg.Server, a.registry)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-signalChan:
	}

	a.log.Info("Shutdown signal received, stopping HTTP server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	a.log.Info("HTTP server stopped")
	return nil
}
