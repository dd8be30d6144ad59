package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	cacheDashboard = "report:dashboard"
	cacheRevenue   = "report:revenue"
)

type Report interface {
	DashboardSummary(ctx context.Context) (dto.DashboardSummaryResponse, error)
	Revenue(ctx context.Context, from, to string) (dto.RevenueReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) DashboardSummary(ctx context.Context) (res dto.DashboardSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Now()
	cacheKey := shared.BuildCacheKey(cacheDashboard, timezone.Format(today, constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	summary, err := s.repo.DashboardSummary(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to build dashboard summary")

		return res, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	res.FromModel(summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, from, to string) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	fromDate, err := timezone.Parse(constant.DateOnlyFormat, from)
	if err != nil {
		return res, failure.BadRequestFromString("Invalid report start date") // nolint:wrapcheck
	}

	toDate, err := timezone.Parse(constant.DateOnlyFormat, to)
	if err != nil {
		return res, failure.BadRequestFromString("Invalid report end date") // nolint:wrapcheck
	}

	if toDate.Before(fromDate) {
		return res, failure.BadRequestFromString("Report end date must not precede start date") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheRevenue, from+":"+to)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rows, err := s.repo.Revenue(ctx, fromDate, toDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to build revenue report")

		return res, fmt.Errorf("failed to build revenue report: %w", err)
	}

	res.FromModels(from, to, rows)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue report to cache")
		}
	}()

	return res, nil
}
