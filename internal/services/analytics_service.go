package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	analyticsCacheKey      = "analytics:rollup"
	analyticsGenerationKey = "analytics:generation"
)

// storeRollupScript caches the rollup only while the generation it was
// computed under is still current.
const storeRollupScript = `
if (redis.call('GET', KEYS[2]) or '0') ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1`

const (
	queryPayeeRollup = `
		SELECT kind, COUNT(*) AS payees, COALESCE(SUM(total_paid), 0) AS total_paid
		FROM payees
		GROUP BY kind`

	queryPaymentRollup = `
		SELECT p.kind AS kind, COUNT(pm.id) AS payments
		FROM payments pm
		JOIN payees p ON p.id = pm.payee_id
		GROUP BY p.kind`
)

type payeeRollupRow struct {
	Kind      string          `db:"kind"`
	Payees    int64           `db:"payees"`
	TotalPaid decimal.Decimal `db:"total_paid"`
}

type paymentRollupRow struct {
	Kind     string `db:"kind"`
	Payments int64  `db:"payments"`
}

// AnalyticsService computes the read-only rollup. Results are cached in
// Redis when a client is configured; every committed write calls Invalidate.
type AnalyticsService struct {
	db    *sqlx.DB
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewAnalyticsService(db *sqlx.DB, redisClient *redis.Client, ttl time.Duration, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:    db,
		redis: redisClient,
		ttl:   ttl,
		log:   log,
	}
}

func (s *AnalyticsService) Rollup(ctx context.Context) (*models.Analytics, error) {
	if cached := s.cached(ctx); cached != nil {
		return cached, nil
	}

	generation, cacheable := s.generation(ctx)

	analytics, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.store(ctx, generation, analytics)
	}
	return analytics, nil
}

// Invalidate bumps the cache generation and drops the cached rollup. A rollup
// computed before the bump is never written back. A failure only leaves a
// stale entry until the TTL expires, so it is logged rather than returned.
func (s *AnalyticsService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Incr(ctx, analyticsGenerationKey).Err(); err != nil {
		s.log.Warn("Failed to advance analytics cache generation", zap.Error(err))
	}
	if err := s.redis.Del(ctx, analyticsCacheKey).Err(); err != nil {
		s.log.Warn("Failed to invalidate analytics cache", zap.Error(err))
	}
}

func (s *AnalyticsService) generation(ctx context.Context) (string, bool) {
	if s.redis == nil {
		return "", false
	}

	generation, err := s.redis.Get(ctx, analyticsGenerationKey).Result()
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	if err != nil {
		s.log.Warn("Failed to read analytics cache generation", zap.Error(err))
		return "", false
	}
	return generation, true
}

func (s *AnalyticsService) cached(ctx context.Context) *models.Analytics {
	if s.redis == nil {
		return nil
	}

	data, err := s.redis.Get(ctx, analyticsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		s.log.Warn("Failed to read analytics cache", zap.Error(err))
		return nil
	}

	var analytics models.Analytics
	if err := json.Unmarshal(data, &analytics); err != nil {
		s.log.Warn("Discarding malformed analytics cache entry", zap.Error(err))
		return nil
	}
	return &analytics
}

func (s *AnalyticsService) store(ctx context.Context, generation string, analytics *models.Analytics) {
	data, err := json.Marshal(analytics)
	if err != nil {
		s.log.Warn("Failed to encode analytics", zap.Error(err))
		return
	}
	keys := []string{analyticsCacheKey, analyticsGenerationKey}
	stored, err := s.redis.Eval(ctx, storeRollupScript, keys, data, generation, s.ttl.Milliseconds()).Int64()
	if err != nil {
		s.log.Warn("Failed to cache analytics", zap.Error(err))
		return
	}
	if stored == 0 {
		s.log.Debug("Analytics changed while computing, rollup not cached")
	}
}

func (s *AnalyticsService) compute(ctx context.Context) (*models.Analytics, error) {
	var (
		payeeRows   []payeeRollupRow
		paymentRows []paymentRollupRow
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &payeeRows, queryPayeeRollup)
	})
	p.Go(func(ctx context.Context) error {
		return s.db.SelectContext(ctx, &paymentRows, queryPaymentRollup)
	})
	if err := p.Wait(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("computing analytics").
			Mark(ierr.ErrStorageFault)
	}

	analytics := &models.Analytics{
		Workers:   models.KindRollup{TotalPaid: decimal.Zero},
		Vendors:   models.KindRollup{TotalPaid: decimal.Zero},
		TotalPaid: decimal.Zero,
	}
	for _, row := range payeeRows {
		if rollup := analytics.Rollup(models.PayeeKind(row.Kind)); rollup != nil {
			rollup.Payees = row.Payees
			rollup.TotalPaid = row.TotalPaid
		}
	}
	for _, row := range paymentRows {
		if rollup := analytics.Rollup(models.PayeeKind(row.Kind)); rollup != nil {
			rollup.Payments = row.Payments
		}
	}
	for _, kind := range []models.PayeeKind{models.PayeeKindWorker, models.PayeeKindVendor} {
		rollup := analytics.Rollup(kind)
		analytics.Payments += rollup.Payments
		analytics.TotalPaid = analytics.TotalPaid.Add(rollup.TotalPaid)
	}
	return analytics, nil
}
