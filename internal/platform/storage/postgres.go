package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/catalog-feed-importer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// DefaultRunStaleAfter is default age after which started report no longer blocks new run.
const DefaultRunStaleAfter = 2 * time.Hour

const abandonedRunMessage = "run abandoned: no progress within stale period"

// Option is custom configuration of Postgres.
type Option func(p *Postgres)

// WithRunStaleAfter sets age after which started report is considered abandoned.
func WithRunStaleAfter(staleAfter time.Duration) Option {
	return func(p *Postgres) {
		p.runStaleAfter = staleAfter
	}
}

// Postgres is storage for feed sources, reports, catalog products and their vocabulary.
type Postgres struct {
	db            *sql.DB
	runStaleAfter time.Duration
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB, ops ...Option) Postgres {
	p := Postgres{
		db:            db,
		runStaleAfter: DefaultRunStaleAfter,
	}

	for _, op := range ops {
		op(&p)
	}

	return p
}

// AddFeedSource inserts new feed source and returns it with assigned id.
func (p Postgres) AddFeedSource(ctx context.Context, source *models.FeedSource) (*models.FeedSource, error) {
	dbSource := ToDBFeedSource(source)
	err := table.FeedSource.INSERT(table.FeedSource.MutableColumns.Except(table.FeedSource.CreatedAt)).
		MODEL(dbSource).
		RETURNING(table.FeedSource.AllColumns).
		QueryContext(ctx, p.db, dbSource)
	if err != nil {
		return nil, fmt.Errorf("can't insert feed source into database: %w", err)
	}

	return toAppFeedSource(dbSource), nil
}

// GetFeedSource returns feed source by id or ErrFeedSourceNotFound.
func (p Postgres) GetFeedSource(ctx context.Context, id int64) (*models.FeedSource, error) {
	source, err := getFeedSource(ctx, p.db, id, false)
	if err != nil {
		return nil, err
	}

	return toAppFeedSource(source), nil
}

// UpdateFeedSchedule sets last and next update times of feed source.
func (p Postgres) UpdateFeedSchedule(ctx context.Context, id int64, lastUpdate, nextUpdate time.Time) error {
	result, err := table.FeedSource.UPDATE().
		SET(
			table.FeedSource.LastUpdate.SET(pg.TimestampzT(lastUpdate)),
			table.FeedSource.NextUpdate.SET(pg.TimestampzT(nextUpdate)),
		).
		WHERE(table.FeedSource.ID.EQ(pg.Int64(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update feed source schedule: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
		return fmt.Errorf("can't update feed source schedule: %w", lo.Ternary(err != nil, err, platform.ErrFeedSourceNotFound))
	}

	return nil
}

// ClaimDueFeedSources returns active feed sources due for update and moves their next update
// by lease in the same statement, so claimed sources are not returned again until lease expires.
func (p Postgres) ClaimDueFeedSources(ctx context.Context, now time.Time, lease time.Duration) ([]models.FeedSource, error) {
	var claimed []pgmodels.FeedSource
	err := table.FeedSource.UPDATE().
		SET(table.FeedSource.NextUpdate.SET(pg.TimestampzT(now.Add(lease)))).
		WHERE(pg.AND(
			table.FeedSource.IsActive.IS_TRUE(),
			table.FeedSource.NextUpdate.IS_NULL().OR(
				table.FeedSource.NextUpdate.LT_EQ(pg.TimestampzT(now)),
			),
		)).
		RETURNING(table.FeedSource.AllColumns).
		QueryContext(ctx, p.db, &claimed)
	if err != nil {
		return nil, fmt.Errorf("can't claim due feed sources: %w", err)
	}

	return lo.Map(claimed, func(_ pgmodels.FeedSource, ix int) models.FeedSource {
		return *toAppFeedSource(&claimed[ix])
	}), nil
}

// StartReport creates new started report for feed source and returns it.
// It returns ErrAlreadyRunning if previous report is still started and not stale,
// stale started report is finished with error first.
func (p Postgres) StartReport(ctx context.Context, feedSourceID int64, startedAt time.Time) (*models.Report, error) {
	var report *models.Report

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if _, err := getFeedSource(ctx, tx, feedSourceID, true); err != nil {
			return err
		}

		lastReport, err := getLastReport(ctx, tx, feedSourceID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last report from database: %w", err)
		}

		if lastReport != nil && models.ReportStatus(lastReport.Status) == models.ReportStatusStarted {
			if startedAt.Sub(lastReport.StartedAt) < p.runStaleAfter {
				return platform.ErrAlreadyRunning
			}

			if err = abandonReport(ctx, tx, lastReport.ID, startedAt); err != nil {
				return fmt.Errorf("can't abandon stale report: %w", err)
			}
		}

		newReport := pgmodels.FeedParsingReport{
			FeedSourceID: feedSourceID,
			Status:       string(models.ReportStatusStarted),
			StartedAt:    startedAt,
		}
		err = table.FeedParsingReport.INSERT(
			table.FeedParsingReport.FeedSourceID,
			table.FeedParsingReport.Status,
			table.FeedParsingReport.StartedAt,
		).
			MODEL(newReport).
			RETURNING(table.FeedParsingReport.AllColumns).
			QueryContext(ctx, tx, &newReport)
		if err != nil {
			return fmt.Errorf("can't insert report into database: %w", err)
		}

		report = toAppReport(&newReport)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't start report: %w", err)
	}

	return report, nil
}

// FinishReport stores report's terminal status, finish time, counters and errors.
// Reports which are not started anymore are never changed.
func (p Postgres) FinishReport(ctx context.Context, report *models.Report) error {
	columnList := table.FeedParsingReport.MutableColumns.Except(
		table.FeedParsingReport.FeedSourceID,
		table.FeedParsingReport.StartedAt,
	)

	result, err := table.FeedParsingReport.UPDATE(columnList).
		MODEL(toDBReport(report)).
		WHERE(pg.AND(
			table.FeedParsingReport.ID.EQ(pg.Int64(report.ID)),
			table.FeedParsingReport.Status.EQ(pg.String(string(models.ReportStatusStarted))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update report: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
		return fmt.Errorf("can't update report: %w", lo.Ternary(err != nil, err, platform.ErrReportNotStarted))
	}

	return nil
}

// AddReportItem appends item to report.
func (p Postgres) AddReportItem(ctx context.Context, item *models.ReportItem) error {
	_, err := table.FeedParsingReportItem.INSERT(
		table.FeedParsingReportItem.ReportID,
		table.FeedParsingReportItem.ProductExternalID,
		table.FeedParsingReportItem.Success,
		table.FeedParsingReportItem.ErrorMessage,
	).
		MODEL(toDBReportItem(item)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert report item into database: %w", err)
	}

	return nil
}

// ReportItems returns items of report in insertion order.
func (p Postgres) ReportItems(ctx context.Context, reportID int64) ([]models.ReportItem, error) {
	var items []pgmodels.FeedParsingReportItem
	err := table.FeedParsingReportItem.SELECT(table.FeedParsingReportItem.AllColumns).
		WHERE(table.FeedParsingReportItem.ReportID.EQ(pg.Int64(reportID))).
		ORDER_BY(table.FeedParsingReportItem.ID.ASC()).
		QueryContext(ctx, p.db, &items)
	if err != nil {
		return nil, fmt.Errorf("can't get report items: %w", err)
	}

	return lo.Map(items, func(_ pgmodels.FeedParsingReportItem, ix int) models.ReportItem {
		return *toAppReportItem(&items[ix])
	}), nil
}

func getFeedSource(ctx context.Context, db qrm.Queryable, id int64, forUpdate bool) (*pgmodels.FeedSource, error) {
	stmt := table.FeedSource.SELECT(table.FeedSource.AllColumns).
		WHERE(table.FeedSource.ID.EQ(pg.Int64(id)))
	if forUpdate {
		stmt = stmt.FOR(pg.UPDATE())
	}

	var source pgmodels.FeedSource
	err := stmt.QueryContext(ctx, db, &source)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrFeedSourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get feed source from database: %w", err)
	}

	return &source, nil
}

func getLastReport(ctx context.Context, db qrm.Queryable, feedSourceID int64) (*pgmodels.FeedParsingReport, error) {
	var report pgmodels.FeedParsingReport
	err := table.FeedParsingReport.SELECT(table.FeedParsingReport.AllColumns).
		WHERE(table.FeedParsingReport.FeedSourceID.EQ(pg.Int64(feedSourceID))).
		ORDER_BY(table.FeedParsingReport.StartedAt.DESC(), table.FeedParsingReport.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &report)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func abandonReport(ctx context.Context, db qrm.Executable, reportID int64, finishedAt time.Time) error {
	_, err := table.FeedParsingReport.UPDATE().
		SET(
			table.FeedParsingReport.Status.SET(pg.String(string(models.ReportStatusError))),
			table.FeedParsingReport.FinishedAt.SET(pg.TimestampzT(finishedAt)),
			table.FeedParsingReport.ParsingError.SET(pg.String(abandonedRunMessage)),
		).
		WHERE(table.FeedParsingReport.ID.EQ(pg.Int64(reportID))).
		ExecContext(ctx, db)

	return err
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
