package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"presale/adminhub/internal/analytics"
	"presale/adminhub/internal/config"
	"presale/adminhub/internal/repository"
	"presale/adminhub/pkg/crypto"
)

const snapshotCacheKey = "reward:snapshot"

const rewardCodeLength = 10

// LeaderboardSet bundles the two claimant leaderboards.
type LeaderboardSet struct {
	TopClaimers     []analytics.TopClaimer     `json:"top_claimers"`
	FastestClaimers []analytics.FastestClaimer `json:"fastest_claimers"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

type RewardService interface {
	CodeTable(ctx context.Context, filter analytics.Filter, sort analytics.SortKey, page int) (*analytics.CodeTable, error)
	Leaderboards(ctx context.Context) (*LeaderboardSet, error)
	CreateCode(ctx context.Context, pool float64, expiresAt *time.Time) (string, error)
	DisableCode(ctx context.Context, code string) error
	Refresh(ctx context.Context) error
	StartRefreshing(ctx context.Context)
}

type rewardService struct {
	source repository.RewardDocumentSource
	cache  repository.CacheStore
	logger *zap.Logger

	pageSize        int
	businessTZ      *time.Location
	refreshInterval time.Duration
	cacheTTL        time.Duration

	now func() time.Time
}

func NewRewardService(
	source repository.RewardDocumentSource,
	cache repository.CacheStore,
	logger *zap.Logger,
	cfg config.AnalyticsConfig,
) RewardService {
	return &rewardService{
		source:          source,
		cache:           cache,
		logger:          logger,
		pageSize:        cfg.PageSize,
		businessTZ:      businessZone(cfg.BusinessTZOffsetHours),
		refreshInterval: cfg.RefreshInterval,
		cacheTTL:        cfg.CacheTTL,
		now:             time.Now,
	}
}

// businessZone builds the fixed offset used for date-range day boundaries.
// The platform operates on one business timezone; the console must not
// substitute the runtime's local zone.
func businessZone(offsetHours int) *time.Location {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return time.FixedZone(name, offsetHours*3600)
}

// CodeTable answers a table query from the current snapshot.
func (s *rewardService) CodeTable(ctx context.Context, filter analytics.Filter, sort analytics.SortKey, page int) (*analytics.CodeTable, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	table := analytics.BuildCodeTable(snap.Rows, filter, sort, page, s.pageSize, s.businessTZ)
	return &table, nil
}

func (s *rewardService) Leaderboards(ctx context.Context) (*LeaderboardSet, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &LeaderboardSet{
		TopClaimers:     snap.TopClaimers,
		FastestClaimers: snap.FastestClaimers,
		GeneratedAt:     snap.GeneratedAt,
	}, nil
}

// CreateCode issues a fresh reward code into the document store.
func (s *rewardService) CreateCode(ctx context.Context, pool float64, expiresAt *time.Time) (string, error) {
	code, err := crypto.GenerateRewardCode(rewardCodeLength)
	if err != nil {
		return "", fmt.Errorf("generate reward code: %w", err)
	}

	fields := map[string]any{
		"secretCode": code,
		"pool":       pool,
		"status":     string(analytics.StatusActive),
		"createdAt":  s.now().UTC(),
	}
	if expiresAt != nil {
		fields["expiresAt"] = expiresAt.UTC()
	}

	if err := s.source.InsertCode(ctx, fields); err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return code, nil
}

// DisableCode writes an expired stored status onto the code's records. The
// status deriver treats the stored value as authoritative only when the code
// is structurally alive, which is exactly the case being disabled.
func (s *rewardService) DisableCode(ctx context.Context, code string) error {
	if err := s.source.SetCodeStatus(ctx, analytics.NormalizeCode(code), string(analytics.StatusExpired)); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Refresh re-runs the full aggregation pipeline over a fresh pair of
// collection snapshots and caches the result. There is no incremental path:
// every run is independent.
func (s *rewardService) Refresh(ctx context.Context) error {
	snap, err := s.rebuild(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, snap)
	return nil
}

// StartRefreshing re-runs the pipeline on an interval until ctx is cancelled.
// It stands in for the upstream store's real-time subscription: each tick is
// treated as a new snapshot delivery.
func (s *rewardService) StartRefreshing(ctx context.Context) {
	if s.refreshInterval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.Warn("reward snapshot refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// snapshot returns the cached aggregation, rebuilding on a miss. A document
// store outage degrades to an empty, well-formed snapshot rather than an
// error: the console renders empty tables, not failures.
func (s *rewardService) snapshot(ctx context.Context) (*analytics.Snapshot, error) {
	if raw, err := s.cache.Get(ctx, snapshotCacheKey); err == nil && len(raw) > 0 {
		var snap analytics.Snapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return &snap, nil
		}
		s.logger.Warn("discarding undecodable cached snapshot")
	}

	snap, err := s.rebuild(ctx)
	if err != nil {
		s.logger.Warn("reward snapshot rebuild failed, serving empty", zap.Error(err))
		return analytics.BuildSnapshot(nil, nil, s.now().UTC()), nil
	}
	s.store(ctx, snap)
	return snap, nil
}

func (s *rewardService) rebuild(ctx context.Context) (*analytics.Snapshot, error) {
	codes, err := s.source.FetchCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch codes: %w", err)
	}
	claims, err := s.source.FetchClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch claims: %w", err)
	}
	return analytics.BuildSnapshot(codes, claims, s.now().UTC()), nil
}

func (s *rewardService) store(ctx context.Context, snap *analytics.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("marshal reward snapshot", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, snapshotCacheKey, raw, s.cacheTTL); err != nil {
		s.logger.Warn("cache reward snapshot", zap.Error(err))
	}
}

func (s *rewardService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil {
		s.logger.Warn("invalidate reward snapshot", zap.Error(err))
	}
}
