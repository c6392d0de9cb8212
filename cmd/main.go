package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/motiv8-batch/internal/database"
	"github.com/sbilibin2017/motiv8-batch/internal/facades"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/prompts"
	"github.com/sbilibin2017/motiv8-batch/internal/repositories"
	"github.com/sbilibin2017/motiv8-batch/internal/services"
	"github.com/sbilibin2017/motiv8-batch/internal/storage"

	"github.com/joho/godotenv"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the batch
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	compositeTwoStage    = "two_stage"
	compositeSingleStage = "single_stage"
)

// config holds every setting read from the environment.
type config struct {
	logLevel string
	logFile  string

	timezone      string
	overrideEmail string
	compositeMode string
	workDir       string

	pgHost         string
	pgPort         string
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	sqlitePath     string
	autoMigrate    bool

	gcsBucket       string
	gcsEmulatorHost string
	localRoot       string

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	runLockTTL    int

	kafkaBrokers string
	kafkaTopic   string

	inferenceURL      string
	inferenceGRPCAddr string
	inferenceStub     bool
	inferenceTimeout  int
	synthSteps        int
	synthGuidance     float64
	synthWidth        int
	synthHeight       int
	faceIDScale       float64

	smtpHost     string
	smtpPort     int
	smtpUser     string
	smtpPassword string
	fromEmail    string
}

func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	err = run(ctx, cfg)
	stop()

	if errors.Is(err, services.ErrRunLocked) {
		log.Printf("batch skipped: %v", err)
		return
	}
	if err != nil {
		log.Fatalf("batch run failed: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the batch configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getFloat := func(key, defaultValue string) (float64, error) {
		v, err := strconv.ParseFloat(getEnv(key, defaultValue), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logFile = getEnv("APP_LOG_FILE", "")

	// Batch config
	cfg.timezone = getEnv("BATCH_TIMEZONE", "UTC")
	cfg.overrideEmail = strings.TrimSpace(getEnv("BATCH_OVERRIDE_EMAIL", ""))
	cfg.compositeMode = getEnv("BATCH_COMPOSITE_MODE", compositeTwoStage)
	if cfg.compositeMode != compositeTwoStage && cfg.compositeMode != compositeSingleStage {
		err = fmt.Errorf("BATCH_COMPOSITE_MODE: unknown mode %q", cfg.compositeMode)
		return
	}
	cfg.workDir = getEnv("BATCH_WORK_DIR", "")

	// Database config
	cfg.pgHost = getEnv("POSTGRES_HOST", "")
	cfg.pgPort = getEnv("POSTGRES_PORT", "5432")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	cfg.sqlitePath = getEnv("SQLITE_PATH", "./motiv8.db")
	if cfg.autoMigrate, err = getBool("DB_AUTO_MIGRATE", "false"); err != nil {
		return
	}

	// Storage config
	cfg.gcsBucket = getEnv("GCS_BUCKET", "")
	cfg.gcsEmulatorHost = getEnv("GCS_EMULATOR_HOST", "")
	cfg.localRoot = getEnv("LOCAL_STORAGE_ROOT", ".")

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.runLockTTL, err = getInt("RUN_LOCK_TTL_SECOND", "3600"); err != nil {
		return
	}

	// Kafka config
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "image.generated")

	// Inference config
	cfg.inferenceURL = getEnv("INFERENCE_URL", "http://localhost:8000")
	cfg.inferenceGRPCAddr = getEnv("INFERENCE_GRPC_ADDR", "")
	if cfg.inferenceStub, err = getBool("INFERENCE_STUB", "false"); err != nil {
		return
	}
	if cfg.inferenceTimeout, err = getInt("INFERENCE_TIMEOUT_SECOND", "600"); err != nil {
		return
	}
	if cfg.synthSteps, err = getInt("SYNTH_STEPS", "30"); err != nil {
		return
	}
	if cfg.synthGuidance, err = getFloat("SYNTH_GUIDANCE_SCALE", "7.5"); err != nil {
		return
	}
	if cfg.synthWidth, err = getInt("SYNTH_WIDTH", "512"); err != nil {
		return
	}
	if cfg.synthHeight, err = getInt("SYNTH_HEIGHT", "768"); err != nil {
		return
	}
	if cfg.faceIDScale, err = getFloat("FACEID_SCALE", "0.8"); err != nil {
		return
	}

	// SMTP config
	cfg.smtpHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	if cfg.smtpPort, err = getInt("SMTP_PORT", "587"); err != nil {
		return
	}
	cfg.smtpUser = getEnv("SMTP_USER", "")
	cfg.smtpPassword = getEnv("SMTP_PASSWORD", "")
	cfg.fromEmail = getEnv("FROM_EMAIL", cfg.smtpUser)

	return
}

// inference is the capability surface the batch needs from the sidecar.
type inference interface {
	services.EmbeddingExtractor
	services.ImageSynthesizer
	services.BackgroundRemover
	services.CapabilityProbe
	Start(ctx context.Context) error
}

// run initializes the logger, database, storage, Redis, Kafka and the inference
// capability, then executes one batch run for the current day.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.InitializeWithFile(cfg.logLevel, cfg.logFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	loc, err := time.LoadLocation(cfg.timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.timezone, err)
	}

	// Connect to the database
	db, err := database.Open(ctx, database.Config{
		PostgresHost:     cfg.pgHost,
		PostgresPort:     cfg.pgPort,
		PostgresUser:     cfg.pgUser,
		PostgresPassword: cfg.pgPassword,
		PostgresDB:       cfg.pgDB,
		MaxOpenConns:     cfg.pgMaxOpenConns,
		MaxIdleConns:     cfg.pgMaxIdleConns,
		SQLitePath:       cfg.sqlitePath,
		BusyTimeout:      5 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()

	if cfg.autoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("database migration error: %w", err)
		}
	}

	// Open artifact storage
	tiers, err := storage.Open(ctx, storage.Config{
		Bucket:       cfg.gcsBucket,
		EmulatorHost: cfg.gcsEmulatorHost,
		LocalRoot:    cfg.localRoot,
	})
	if err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	defer tiers.Close()

	workRoot := filepath.Join(cfg.localRoot, storage.DirGenerated)
	if tiers.Ephemeral {
		workRoot = cfg.workDir
		if workRoot == "" {
			workRoot = filepath.Join(os.TempDir(), "motiv8-batch")
		}
	}

	// Connect to Redis for the cross-run lock
	var lock services.RunLocker
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unreachable, relying on unique index", "error", err)
		}
		lock = repositories.NewRunLockRepository(rdb, time.Duration(cfg.runLockTTL)*time.Second)
	}

	// Kafka writer for generation events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Inference capability
	var infer inference
	if cfg.inferenceStub {
		infer = facades.NewStubInference()
	} else {
		var health grpc_health_v1.HealthClient
		if cfg.inferenceGRPCAddr != "" {
			conn, err := grpc.NewClient(cfg.inferenceGRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("failed to connect to inference health service at %s: %w", cfg.inferenceGRPCAddr, err)
			}
			defer conn.Close()
			health = grpc_health_v1.NewHealthClient(conn)
		}
		infer = facades.NewInferenceFacade(cfg.inferenceURL, time.Duration(cfg.inferenceTimeout)*time.Second, health)
	}
	if err := infer.Start(ctx); err != nil {
		logger.Log.Warnw("inference capability unavailable", "error", err)
	}

	// Mailer
	var mailer services.Mailer
	smtpMailer := facades.NewSMTPMailer(facades.SMTPConfig{
		Host:     cfg.smtpHost,
		Port:     cfg.smtpPort,
		User:     cfg.smtpUser,
		Password: cfg.smtpPassword,
		From:     cfg.fromEmail,
	})
	if smtpMailer.Configured() {
		mailer = smtpMailer
	}

	engine, err := prompts.NewEngine(nil)
	if err != nil {
		return fmt.Errorf("load prompt catalog: %w", err)
	}

	params := services.SynthesisParams{
		Steps:         cfg.synthSteps,
		GuidanceScale: cfg.synthGuidance,
		Width:         cfg.synthWidth,
		Height:        cfg.synthHeight,
		FaceIDScale:   cfg.faceIDScale,
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	imageReadRepo := repositories.NewGeneratedImageReadRepository(db)
	imageWriteRepo := repositories.NewGeneratedImageWriteRepository(db)

	// Initialize services
	eligibility := services.NewEligibilityService(userReadRepo, imageReadRepo)
	embeddings := services.NewEmbeddingService(userWriteRepo, infer, tiers.Uploads, tiers.Embeddings)
	background := services.NewBackgroundService(infer, engine, params)
	compositor := services.NewCompositorService(infer, infer, engine, params)
	delivery := services.NewDeliveryService(mailer, kafkaWriter)

	runService := services.NewRunService(
		eligibility, embeddings, background, compositor, delivery,
		imageWriteRepo,
		services.ArtifactStores{Uploads: tiers.Uploads, Embeddings: tiers.Embeddings, Generated: tiers.Generated},
		services.NewWorkspace(workRoot, tiers.Ephemeral),
		lock,
		infer,
		services.RunConfig{Location: loc, SingleStage: cfg.compositeMode == compositeSingleStage},
	)

	_, err = runService.Run(ctx, time.Now(), cfg.overrideEmail)
	return err
}
