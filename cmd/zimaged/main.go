package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"zimaged/internal/common/fsutil"
	"zimaged/internal/config"
	"zimaged/internal/httpapi"
	"zimaged/internal/manager"
	"zimaged/internal/pipeline"
	"zimaged/internal/registry"
)

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Flags with environment variable defaults
	host := flag.String("host", envStr("ZIMAGED_HOST", "0.0.0.0"), "HTTP listen host")
	port := flag.Int("port", envInt("ZIMAGED_PORT", 8090), "HTTP listen port")
	model := flag.String("model", envStr("ZIMAGED_MODEL", ""), "Model directory or remote identifier (default: models/z-image if it exists)")
	mock := flag.Bool("mock", false, "Mock mode: return test images without loading a model")
	mockDelay := flag.Float64("mock-delay", 0.5, "Simulated generation delay in seconds (mock mode only)")
	selfTest := flag.Bool("self-test", false, "Load model, generate one test image, verify, and exit")
	outputDir := flag.String("output-dir", envStr("ZIMAGED_OUTPUT_DIR", "output/zimage"), "Directory to save generated images (empty disables saving)")
	configPath := flag.String("config", envStr("ZIMAGED_CONFIG", ""), "Optional config file (yaml/json/toml)")
	logLevel := flag.String("log-level", envStr("ZIMAGED_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	runtime := flag.String("runtime", envStr("ZIMAGED_RUNTIME", "native"), "Pipeline runtime: native|subprocess")
	sdBin := flag.String("sd-bin", envStr("ZIMAGED_SD_BIN", "sd"), "stable-diffusion.cpp binary for the subprocess runtime")
	threads := flag.Int("threads", envInt("ZIMAGED_THREADS", 0), "CPU threads for the runtime (0=auto)")
	corsOrigins := flag.String("cors-origins", envStr("ZIMAGED_CORS_ORIGINS", ""), "Comma-separated CORS origins (empty disables CORS)")
	flag.Parse()

	// Config file fills in anything the flags left at defaults.
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		applyFileConfig(cfg, host, port, model, mock, mockDelay, outputDir, runtime, sdBin, threads, logLevel)
	}

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("component", "zimaged").Logger()
	httpapi.SetLogger(log)

	if *outputDir != "" {
		if err := fsutil.EnsureDir(*outputDir); err != nil {
			log.Fatal().Err(err).Str("dir", *outputDir).Msg("create output directory")
		}
		log.Info().Str("dir", *outputDir).Msg("output directory")
	}

	mdl, err := registry.Resolve(*model)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve model")
	}

	mgr := manager.New(manager.ManagerConfig{
		ModelPath: mdl.Path,
		OutputDir: *outputDir,
		Runtime:   pipeline.Runtime(*runtime),
		SDBin:     *sdBin,
		Threads:   *threads,
		MockDelay: time.Duration(*mockDelay * float64(time.Second)),
		Logger:    &log,
	})

	switch {
	case *selfTest:
		if err := mgr.SelfTest(context.Background()); err != nil {
			log.Error().Err(err).Msg("self-test FAILED")
			os.Exit(1)
		}
		os.Exit(0)
	case *mock:
		if err := mgr.InitMock(); err != nil {
			log.Fatal().Err(err).Msg("init mock")
		}
	default:
		if err := mgr.LoadPipeline(); err != nil {
			log.Fatal().Err(err).Msg("failed to load model")
		}
	}

	if origins := splitCSV(*corsOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins,
			[]string{http.MethodGet, http.MethodPost},
			[]string{"Content-Type", "X-Log-Level"})
	}

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	addr := fmt.Sprintf("%s:%d", *host, *port)
	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(mgr)}

	go func() {
		log.Info().Str("addr", addr).Str("model", mdl.Path).Bool("mock", *mock).Msg("zimaged listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	if err := mgr.Close(); err != nil {
		log.Error().Err(err).Msg("close pipeline")
	}
}

// applyFileConfig overlays file values onto flags still at their defaults.
func applyFileConfig(cfg config.Config, host *string, port *int, model *string, mock *bool, mockDelay *float64, outputDir *string, runtime, sdBin *string, threads *int, logLevel *string) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if cfg.Host != "" && !set["host"] {
		*host = cfg.Host
	}
	if cfg.Port != 0 && !set["port"] {
		*port = cfg.Port
	}
	if cfg.Model != "" && !set["model"] {
		*model = cfg.Model
	}
	if cfg.Mock && !set["mock"] {
		*mock = true
	}
	if cfg.MockDelay != 0 && !set["mock-delay"] {
		*mockDelay = cfg.MockDelay
	}
	if cfg.OutputDir != "" && !set["output-dir"] {
		*outputDir = cfg.OutputDir
	}
	if cfg.Runtime != "" && !set["runtime"] {
		*runtime = cfg.Runtime
	}
	if cfg.SDBin != "" && !set["sd-bin"] {
		*sdBin = cfg.SDBin
	}
	if cfg.Threads != 0 && !set["threads"] {
		*threads = cfg.Threads
	}
	if cfg.LogLevel != "" && !set["log-level"] {
		*logLevel = cfg.LogLevel
	}
}
