package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
)

type Report interface {
	DashboardSummary(ctx context.Context, day time.Time) (model.DashboardSummary, error)
	Revenue(ctx context.Context, from, to time.Time) ([]model.RevenueRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

const dashboardSummaryQuery = `
SELECT
	(SELECT COUNT(*) FROM rooms WHERE active = true)                                  AS total_rooms,
	(SELECT COUNT(*) FROM rooms WHERE active = true AND status = 'Available')         AS available_rooms,
	(SELECT COUNT(*) FROM rooms WHERE active = true AND status = 'Occupied')          AS occupied_rooms,
	(SELECT COUNT(*) FROM rooms WHERE active = true AND status = 'Maintenance')       AS maintenance_rooms,
	(SELECT COUNT(*) FROM bookings
		WHERE check_in_date::date = $1
		AND status IN ('Confirmed', 'Checked In'))                                    AS arrivals_today,
	(SELECT COUNT(*) FROM bookings
		WHERE check_out_date::date = $1
		AND status IN ('Checked In', 'Checked Out'))                                  AS departures_today,
	(SELECT COUNT(*) FROM bookings WHERE status = 'Checked In')                       AS in_house_guests,
	(SELECT COALESCE(SUM(paid_amount), 0) FROM bookings
		WHERE created_at::date = $1
		AND status NOT IN ('Cancelled'))                                              AS revenue_today
`

func (repo *repositoryImpl) DashboardSummary(ctx context.Context, day time.Time) (res model.DashboardSummary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.DashboardSummary")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, dashboardSummaryQuery)

	err = repo.db.Read.GetContext(ctx, &res, dashboardSummaryQuery, day.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	return res, nil
}

const revenueQuery = `
SELECT
	created_at::date                 AS day,
	COUNT(*)                         AS bookings,
	COALESCE(SUM(paid_amount), 0)    AS revenue
FROM bookings
WHERE created_at::date BETWEEN $1 AND $2
AND status NOT IN ('Cancelled')
GROUP BY created_at::date
ORDER BY created_at::date
`

func (repo *repositoryImpl) Revenue(ctx context.Context, from, to time.Time) (res []model.RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Revenue")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueQuery)

	err = repo.db.Read.SelectContext(ctx, &res, revenueQuery, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build revenue report: %w", err)
	}

	return res, nil
}
