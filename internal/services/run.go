package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
	"github.com/sbilibin2017/motiv8-batch/internal/models"
	"github.com/sbilibin2017/motiv8-batch/internal/npy"
	"github.com/sbilibin2017/motiv8-batch/internal/raster"
)

//go:generate mockgen -source=run.go -destination=run_mock_test.go -package=services

// GeneratedImageWriter persists generation records.
type GeneratedImageWriter interface {
	Save(ctx context.Context, img models.GeneratedImageDB) error // Inserts one generation record
}

// RunLocker provides cross-run exclusivity for a calendar day.
type RunLocker interface {
	Acquire(ctx context.Context, generationDate string) (bool, error) // Takes the day's lock, false if held elsewhere
	Extend(ctx context.Context, generationDate string) (bool, error)  // Resets the TTL, false if the lock was lost
	Release(ctx context.Context, generationDate string) error         // Drops the day's lock
}

// CapabilityProbe reports whether the inference capability can take calls.
type CapabilityProbe interface {
	Ready() bool
}

// ArtifactStores are the three storage tiers the run reads and writes.
type ArtifactStores struct {
	Uploads    FileStorage
	Embeddings FileStorage
	Generated  FileStorage
}

// RunConfig controls a run.
type RunConfig struct {
	Location    *time.Location // calendar day and weekday are computed here
	SingleStage bool           // skip the shared background and generate each image in one call
}

// RunService executes one batch run over the day's cohort, one user at a time.
type RunService struct {
	eligibility *EligibilityService
	embeddings  *EmbeddingService
	background  *BackgroundService
	compositor  *CompositorService
	delivery    *DeliveryService
	images      GeneratedImageWriter
	stores      ArtifactStores
	workspace   *Workspace
	lock        RunLocker
	probe       CapabilityProbe
	cfg         RunConfig
	clock       func() time.Time
}

// NewRunService creates a new RunService. lock may be nil to disable the cross-run lock.
func NewRunService(
	eligibility *EligibilityService,
	embeddings *EmbeddingService,
	background *BackgroundService,
	compositor *CompositorService,
	delivery *DeliveryService,
	images GeneratedImageWriter,
	stores ArtifactStores,
	workspace *Workspace,
	lock RunLocker,
	probe CapabilityProbe,
	cfg RunConfig,
) *RunService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &RunService{
		eligibility: eligibility,
		embeddings:  embeddings,
		background:  background,
		compositor:  compositor,
		delivery:    delivery,
		images:      images,
		stores:      stores,
		workspace:   workspace,
		lock:        lock,
		probe:       probe,
		cfg:         cfg,
		clock:       time.Now,
	}
}

// Run processes the cohort for the calendar day containing now. Per-user failures
// are counted in the summary; only run-fatal conditions return an error.
func (s *RunService) Run(ctx context.Context, now time.Time, override string) (models.RunSummary, error) {
	day := models.NewDayContext(now, s.cfg.Location)
	date := day.ISODate()
	isOverride := override != ""

	logger.Log.Infow("batch run started",
		"date", date,
		"weekday", day.WeekdayName(),
		"override", override,
		"single_stage", s.cfg.SingleStage,
	)

	var locked bool
	if !isOverride && s.lock != nil {
		ok, err := s.lock.Acquire(ctx, date)
		switch {
		case err != nil:
			logger.Log.Warnw("run lock unavailable, relying on unique index", "date", date, "error", err)
		case !ok:
			logger.Log.Warnw("another run holds the lock for this day", "date", date)
			return models.RunSummary{}, ErrRunLocked
		default:
			locked = true
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), date); err != nil {
					logger.Log.Warnw("failed to release run lock", "date", date, "error", err)
				}
			}()
		}
	}

	cohort, err := s.eligibility.Select(ctx, day, override)
	if err != nil {
		return models.RunSummary{}, fmt.Errorf("select cohort: %w", err)
	}

	summary := models.RunSummary{Total: cohort.ToProcess()}
	if summary.Total == 0 {
		logSummary(date, cohort.Override, summary)
		return summary, nil
	}

	if !s.probe.Ready() {
		return models.RunSummary{}, ErrCapabilityNotReady
	}

	var bg image.Image
	if !s.cfg.SingleStage {
		bg, err = s.background.Generate(ctx, day)
		if err != nil {
			return models.RunSummary{}, err
		}
	}

	for i := range cohort.Users {
		out := s.processUser(ctx, day, &cohort.Users[i], bg, cohort.Override)
		summary.Add(out)

		if locked {
			s.extendLock(ctx, date)
		}
	}

	logSummary(date, cohort.Override, summary)
	return summary, nil
}

// extendLock keeps the day's lock alive while users are still being processed.
func (s *RunService) extendLock(ctx context.Context, date string) {
	ok, err := s.lock.Extend(ctx, date)
	switch {
	case err != nil:
		logger.Log.Warnw("failed to extend run lock", "date", date, "error", err)
	case !ok:
		logger.Log.Warnw("run lock lost, relying on unique index", "date", date)
	}
}

func logSummary(date string, override bool, s models.RunSummary) {
	logger.Log.Infow("batch run completed",
		"date", date,
		"override", override,
		"total", s.Total,
		"extracted", s.Extracted,
		"succeeded", s.Succeeded,
		"failed", s.Failed,
		"notify_failed", s.NotifyFailed,
	)
}

// processUser drives one user to a terminal state. Nothing escapes it: errors
// and panics end in StateFailed.
func (s *RunService) processUser(ctx context.Context, day models.DayContext, user *models.UserDB, bg image.Image, override bool) (out models.UserOutcome) {
	out = models.UserOutcome{UserID: user.UserID, State: models.StateSelected}

	fail := func(err error) models.UserOutcome {
		out.State = models.StateFailed
		out.Err = err
		logger.Log.Errorw("user processing failed", "user_id", user.UserID, "email", user.Email, "error", err)
		return out
	}

	defer func() {
		if r := recover(); r != nil {
			out = fail(fmt.Errorf("panic: %v", r))
		}
		if !out.State.Terminal() {
			out = fail(fmt.Errorf("stopped in state %s", out.State))
		}
		logger.Log.Infow("user processed", "user_id", user.UserID, "state", out.State)
	}()

	if !user.HasSourcePhoto() {
		return fail(ErrMissingSourcePhoto)
	}

	status, err := s.embeddings.Ensure(ctx, user)
	out.Extracted = status == models.EmbeddingExtracted
	if status == models.EmbeddingFailed {
		if err == nil {
			err = errors.New("embedding failed")
		}
		return fail(err)
	}
	out.State = models.StateEmbeddingReady

	scratch, err := s.workspace.Acquire()
	if err != nil {
		return fail(err)
	}
	defer scratch.Release()

	embedding, err := s.loadEmbedding(ctx, user, scratch)
	if err != nil {
		return fail(err)
	}

	mode := user.EffectiveMode()
	img, err := s.compositor.Compose(ctx, models.ComposeInput{
		User:        *user,
		Day:         day,
		Embedding:   embedding,
		SourcePhoto: s.loadSourcePhoto(ctx, user, scratch),
		Background:  bg,
	})
	if err != nil {
		return fail(err)
	}
	out.State = models.StateComposited

	generatedAt := s.clock()
	key := fmt.Sprintf("%s_%s_generated.png", generatedAt.Format(artifactTimeLayout), user.UserID)

	data, err := raster.EncodePNG(img)
	if err != nil {
		return fail(err)
	}
	localPath := scratch.Path(key)
	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		return fail(err)
	}

	stored, err := s.stores.Generated.SaveFromLocal(ctx, key, localPath)
	if err != nil {
		return fail(fmt.Errorf("upload generated image: %w", err))
	}

	row := models.GeneratedImageDB{
		ImageID:        uuid.New(),
		UserID:         user.UserID,
		ImageKey:       key,
		GenerationDate: day.ISODate(),
		GeneratedAtMs:  generatedAt.UnixMilli(),
		Mode:           string(mode),
		IsOverride:     override,
	}
	if err := s.images.Save(ctx, row); err != nil {
		logger.Log.Errorw("generated image uploaded but not recorded",
			"user_id", user.UserID,
			"orphaned_key", stored,
			"error", err,
		)
		return fail(fmt.Errorf("record generated image: %w", err))
	}
	out.State = models.StatePersisted
	out.ImageKey = key

	s.delivery.PublishGenerated(ctx, models.GenerationEvent{
		EventID:        uuid.NewString(),
		UserID:         user.UserID.String(),
		ImageKey:       key,
		GenerationDate: row.GenerationDate,
		Mode:           row.Mode,
		GeneratedAtMs:  row.GeneratedAtMs,
		Override:       override,
	})

	if s.delivery.Deliver(ctx, *user, localPath, mode) {
		out.State = models.StateNotified
	} else {
		out.State = models.StateNotifyFailed
	}

	return out
}

func (s *RunService) loadEmbedding(ctx context.Context, user *models.UserDB, scratch *Scratch) ([]float32, error) {
	if !user.HasEmbedding() {
		return nil, ErrMissingEmbedding
	}
	key := *user.EmbeddingKey

	path, err := s.stores.Embeddings.DownloadToLocal(ctx, key, scratch.Path(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingEmbedding, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingEmbedding, err)
	}

	vec, err := npy.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingEmbedding, err)
	}
	return vec, nil
}

// loadSourcePhoto returns the selfie used as a reference image, or nil when it is unavailable.
func (s *RunService) loadSourcePhoto(ctx context.Context, user *models.UserDB, scratch *Scratch) []byte {
	key := *user.SourcePhotoKey

	ok, err := s.stores.Uploads.Exists(ctx, key)
	if err != nil || !ok {
		logger.Log.Warnw("source photo unavailable, generating without reference", "user_id", user.UserID, "key", key, "error", err)
		return nil
	}

	path, err := s.stores.Uploads.DownloadToLocal(ctx, key, scratch.Path(key))
	if err != nil {
		logger.Log.Warnw("failed to download source photo", "user_id", user.UserID, "key", key, "error", err)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warnw("failed to read source photo", "user_id", user.UserID, "path", path, "error", err)
		return nil
	}
	return data
}
