package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/pkg/store"
)

const (
	LookupRollen            = "rollen"
	LookupDagen             = "dagen"
	LookupDagdelen          = "dagdelen"
	LookupWeekRegelingen    = "week-regelingen"
	LookupZorgCategorieen   = "zorg-categorieen"
	LookupZorgSituaties     = "zorg-situaties"
	LookupSchoolvakanties   = "schoolvakanties"
	LookupRegelingTemplates = "regeling-templates"
	LookupRelatieTypes      = "relatie-types"

	rollenTTL  = 30 * time.Minute
	defaultTTL = 5 * time.Minute
)

type ILookupService interface {
	// Get returns the JSON encoded rows of one lookup kind.
	Get(ctx context.Context, kind string, query dto.LookupQuery) (json.RawMessage, error)
	ClearCache(ctx context.Context)
}

type lookupFetcher func(ctx context.Context, src LookupSource, query dto.LookupQuery) (interface{}, error)

var lookupFetchers = map[string]lookupFetcher{
	LookupRollen: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.Rollen(ctx)
	},
	LookupDagen: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.Dagen(ctx)
	},
	LookupDagdelen: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.Dagdelen(ctx)
	},
	LookupWeekRegelingen: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.WeekRegelingen(ctx)
	},
	LookupZorgCategorieen: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.ZorgCategorieen(ctx)
	},
	LookupZorgSituaties: func(ctx context.Context, src LookupSource, q dto.LookupQuery) (interface{}, error) {
		return src.ZorgSituaties(ctx, q.ZorgCategorieId)
	},
	LookupSchoolvakanties: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.Schoolvakanties(ctx)
	},
	LookupRegelingTemplates: func(ctx context.Context, src LookupSource, q dto.LookupQuery) (interface{}, error) {
		return src.RegelingTemplates(ctx, templateFilter(q))
	},
	LookupRelatieTypes: func(ctx context.Context, src LookupSource, _ dto.LookupQuery) (interface{}, error) {
		return src.RelatieTypes(ctx)
	},
}

func templateFilter(q dto.LookupQuery) contract.RegelingTemplateFilter {
	return contract.RegelingTemplateFilter{Type: q.Type, Meervoud: q.Meervoud}
}

type lookupService struct {
	source LookupSource
	cache  store.Cache
	logger logger.ILogger
	now    func() time.Time
}

func NewLookupService(source LookupSource, cache store.Cache, log logger.ILogger) ILookupService {
	return &lookupService{
		source: source,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

func lookupTTL(kind string) time.Duration {
	if kind == LookupRollen {
		return rollenTTL
	}
	return defaultTTL
}

// cacheKey adds the serialized filter for parameterized lookups so different
// filters get their own entry.
func cacheKey(kind string, query dto.LookupQuery) string {
	var filter interface{}
	switch kind {
	case LookupZorgSituaties:
		filter = struct {
			ZorgCategorieId *uint `json:"zorgCategorieId,omitempty"`
		}{query.ZorgCategorieId}
	case LookupRegelingTemplates:
		filter = templateFilter(query)
	default:
		return kind
	}
	raw, _ := json.Marshal(filter)
	return kind + ":" + string(raw)
}

func (s *lookupService) Get(ctx context.Context, kind string, query dto.LookupQuery) (json.RawMessage, error) {
	fetch, ok := lookupFetchers[kind]
	if !ok {
		return nil, apperror.NotFound("Unknown lookup")
	}

	key := cacheKey(kind, query)
	now := s.now()
	if entry, found := s.cache.Get(ctx, key); found && now.Sub(entry.FetchedAt) < lookupTTL(kind) {
		return entry.Value, nil
	}

	rows, err := fetch(ctx, s.source, query)
	if err != nil {
		if errors.Is(err, ErrLookupNotSupported) {
			return nil, apperror.NotImplemented("This lookup is not available with the legacy data source")
		}
		return nil, err
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, store.Entry{Value: raw, FetchedAt: now})
	s.logger.Debug("LOOKUP", "Lookup refreshed", map[string]interface{}{"key": key})
	return raw, nil
}

func (s *lookupService) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
}
