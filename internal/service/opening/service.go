// Package opening runs the stall check-in state machine: it gathers vision
// evidence, extracts and reconciles the declared inventory, and moves the
// stall between closed and open.
package opening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
	"github.com/heartmarshall/encuentrame-backend/internal/inventory"
	"github.com/heartmarshall/encuentrame-backend/internal/vision"
	"github.com/heartmarshall/encuentrame-backend/pkg/ctxutil"
)

type stallRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Stall, error)
	Owns(ctx context.Context, userID string, stallID uuid.UUID) (bool, error)
	FirstByOwner(ctx context.Context, userID string) (*domain.Stall, error)
	SetOpen(ctx context.Context, id uuid.UUID, expectedVersion int64, openingKey string, lat, lng float64, name *string, now time.Time) (*domain.Stall, error)
	ClearOpen(ctx context.Context, id uuid.UUID, expectedVersion int64, now time.Time) (*domain.Stall, error)
	ClearOpenIfCurrent(ctx context.Context, id uuid.UUID, openingKey string, now time.Time) (bool, error)
}

type openingRepo interface {
	Insert(ctx context.Context, o domain.Opening) error
	Get(ctx context.Context, stallID uuid.UUID, key string) (*domain.Opening, error)
	Latest(ctx context.Context, stallID uuid.UUID) (*domain.Opening, error)
	List(ctx context.Context, stallID uuid.UUID, limit int) ([]domain.Opening, error)
	Close(ctx context.Context, stallID uuid.UUID, key string, now time.Time) (*domain.Opening, error)
	ListActiveOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]domain.Opening, error)
}

type visionCollector interface {
	Configured() bool
	DetectLabels(ctx context.Context, key string) (vision.Result, error)
	DetectModeration(ctx context.Context, key string) (vision.Result, error)
}

type inventoryExtractor interface {
	Extract(ctx context.Context, text string, labels []domain.Label) (inventory.Extraction, error)
}

type inventoryReconciler interface {
	Reconcile(items []inventory.ExtractedItem, labels []domain.Label) domain.Inventory
}

type catalogUpserter interface {
	UpsertFromInventory(ctx context.Context, stallID uuid.UUID, items []domain.InventoryItem, seenAt time.Time) error
}

type stallLocker interface {
	Lock(ctx context.Context, stallID uuid.UUID) (func(), error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReopenPolicy decides what open does when the stall is already open.
type ReopenPolicy string

const (
	// ReopenReject fails with domain.ErrAlreadyOpen.
	ReopenReject ReopenPolicy = "reject"
	// ReopenSupersede closes the previous opening in the same transaction.
	ReopenSupersede ReopenPolicy = "supersede"
)

// Config holds orchestrator settings.
type Config struct {
	ReopenPolicy   ReopenPolicy
	HistoryDefault int
	HistoryMax     int
	SweepBatch     int
}

const (
	defaultHistory    = 20
	defaultHistoryMax = 50
	defaultSweepBatch = 500
)

// Deps groups the collaborators of the orchestrator.
type Deps struct {
	Stalls     stallRepo
	Openings   openingRepo
	Vision     visionCollector
	Extractor  inventoryExtractor
	Reconciler inventoryReconciler
	Catalog    catalogUpserter
	Locker     stallLocker // optional
	Tx         txManager
}

// Service is the opening orchestrator.
type Service struct {
	stalls     stallRepo
	openings   openingRepo
	vision     visionCollector
	extractor  inventoryExtractor
	reconciler inventoryReconciler
	catalog    catalogUpserter
	locker     stallLocker
	tx         txManager
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Opening service. Zero config values fall back to defaults.
func NewService(log *slog.Logger, deps Deps, cfg Config) *Service {
	if cfg.ReopenPolicy == "" {
		cfg.ReopenPolicy = ReopenReject
	}
	if cfg.HistoryDefault <= 0 {
		cfg.HistoryDefault = defaultHistory
	}
	if cfg.HistoryMax <= 0 {
		cfg.HistoryMax = defaultHistoryMax
	}
	if cfg.SweepBatch <= 0 {
		cfg.SweepBatch = defaultSweepBatch
	}

	locker := deps.Locker
	if locker == nil {
		locker = noopLocker{}
	}

	return &Service{
		stalls:     deps.Stalls,
		openings:   deps.Openings,
		vision:     deps.Vision,
		extractor:  deps.Extractor,
		reconciler: deps.Reconciler,
		catalog:    deps.Catalog,
		locker:     locker,
		tx:         deps.Tx,
		cfg:        cfg,
		log:        log.With("service", "opening"),
		now:        time.Now,
	}
}

// authorize resolves the caller and checks that they own stallID.
func (s *Service) authorize(ctx context.Context, stallID uuid.UUID) (string, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if stallID == uuid.Nil {
		return "", domain.NewValidationError("stall_id", "required")
	}

	owns, err := s.stalls.Owns(ctx, callerID, stallID)
	if err != nil {
		return "", fmt.Errorf("check owner: %w", err)
	}
	if !owns {
		return "", domain.ErrForbidden
	}
	return callerID, nil
}

// lock serializes transitions of one stall. Contention fails the call;
// an unavailable lock backend degrades to the version check alone.
func (s *Service) lock(ctx context.Context, stallID uuid.UUID) (func(), error) {
	unlock, err := s.locker.Lock(ctx, stallID)
	if err == nil {
		return unlock, nil
	}
	if errors.Is(err, domain.ErrConcurrentUpdate) {
		return nil, err
	}

	s.log.WarnContext(ctx, "stall lock unavailable",
		slog.String("stall_id", stallID.String()),
		slog.String("error", err.Error()),
	)
	return func() {}, nil
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, uuid.UUID) (func(), error) { return func() {}, nil }
