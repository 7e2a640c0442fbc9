package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cdfmis/analytics-service/internal/domain/port"
	"github.com/cdfmis/analytics-service/internal/domain/service"
)

// SnapshotRepository implements port.SnapshotProvider against the platform
// database. It only reads; the platform's workflow services own the writes.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new PostgreSQL-backed snapshot provider.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// PaymentSnapshot fetches a payment with its project budget and sibling payments.
func (r *SnapshotRepository) PaymentSnapshot(ctx context.Context, paymentID uuid.UUID) (*port.PaymentSnapshot, error) {
	query := `
		SELECT p.id, p.amount, p.project_id, p.recipient_name,
			COALESCE(pr.approved_amount, 0)
		FROM payments p
		LEFT JOIN projects pr ON pr.id = p.project_id
		WHERE p.id = $1
	`

	var snap port.PaymentSnapshot
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&snap.PaymentID, &snap.Amount, &snap.ProjectID, &snap.RecipientName, &snap.ProjectBudget,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", port.ErrPaymentNotFound, paymentID)
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}

	siblings, err := r.queryPayments(ctx,
		`SELECT id, amount, status, recipient_name, created_at
		 FROM payments WHERE project_id = $1`,
		snap.ProjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project payments: %w", err)
	}
	snap.ProjectPayments = siblings

	return &snap, nil
}

// PaymentsByRecipient fetches every payment made to the named recipient.
func (r *SnapshotRepository) PaymentsByRecipient(ctx context.Context, recipientName string) ([]service.PaymentRecord, error) {
	return r.queryPayments(ctx,
		`SELECT id, amount, status, recipient_name, created_at
		 FROM payments WHERE recipient_name = $1`,
		recipientName,
	)
}

// CurrentBudget fetches the constituency budget for the fiscal year, or nil.
func (r *SnapshotRepository) CurrentBudget(ctx context.Context, constituencyID uuid.UUID, fiscalYear int) (*service.BudgetSnapshot, error) {
	query := `
		SELECT constituency_id, fiscal_year, total_allocation, COALESCE(amount_disbursed, 0)
		FROM budgets
		WHERE constituency_id = $1 AND fiscal_year = $2
	`

	var b service.BudgetSnapshot
	err := r.pool.QueryRow(ctx, query, constituencyID, fiscalYear).Scan(
		&b.ConstituencyID, &b.FiscalYear, &b.TotalAllocation, &b.AmountDisbursed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	return &b, nil
}

// ActiveProjects fetches the constituency's projects in active statuses.
func (r *SnapshotRepository) ActiveProjects(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectRecord, error) {
	query := `
		SELECT id, name, status, created_at, expected_end_date, COALESCE(progress_percentage, 0)
		FROM projects
		WHERE constituency_id = $1 AND status = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, constituencyID, service.ActiveProjectStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]service.ProjectRecord, 0)
	for rows.Next() {
		var p service.ProjectRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.CreatedAt, &p.ExpectedEndDate, &p.ProgressPercent); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// OpenPayments fetches the constituency's payments awaiting panel approval.
func (r *SnapshotRepository) OpenPayments(ctx context.Context, constituencyID uuid.UUID) ([]service.PaymentRecord, error) {
	return r.queryPayments(ctx,
		`SELECT id, amount, status, recipient_name, created_at
		 FROM payments WHERE constituency_id = $1 AND status = ANY($2)`,
		constituencyID, service.OpenPaymentStatuses,
	)
}

// ImplementationCompliance fetches implementation-stage projects with their
// document types.
func (r *SnapshotRepository) ImplementationCompliance(ctx context.Context, constituencyID uuid.UUID) ([]service.ProjectComplianceRecord, error) {
	query := `
		SELECT p.id, p.name,
			COALESCE(array_agg(d.document_type) FILTER (WHERE d.document_type IS NOT NULL), '{}')
		FROM projects p
		LEFT JOIN documents d ON d.project_id = p.id
		WHERE p.constituency_id = $1 AND p.status = $2
		GROUP BY p.id, p.name
	`

	rows, err := r.pool.Query(ctx, query, constituencyID, service.ProjectStatusImplementation)
	if err != nil {
		return nil, fmt.Errorf("failed to query compliance records: %w", err)
	}
	defer rows.Close()

	records := make([]service.ProjectComplianceRecord, 0)
	for rows.Next() {
		var rec service.ProjectComplianceRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.DocumentTypes); err != nil {
			return nil, fmt.Errorf("failed to scan compliance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// LatestMeeting fetches the most recent committee meeting, or nil.
func (r *SnapshotRepository) LatestMeeting(ctx context.Context, constituencyID uuid.UUID) (*service.MeetingRecord, error) {
	query := `
		SELECT id, meeting_date
		FROM meetings
		WHERE constituency_id = $1
		ORDER BY meeting_date DESC
		LIMIT 1
	`

	var m service.MeetingRecord
	err := r.pool.QueryRow(ctx, query, constituencyID).Scan(&m.ID, &m.MeetingDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest meeting: %w", err)
	}

	return &m, nil
}

// CompletedProjects fetches projects completed in the given calendar year.
func (r *SnapshotRepository) CompletedProjects(ctx context.Context, constituencyID uuid.UUID, year int) ([]service.CompletedProjectRecord, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	query := `
		SELECT id, name, COALESCE(estimated_cost, 0), COALESCE(approved_amount, 0), actual_end_date
		FROM projects
		WHERE constituency_id = $1 AND status = $2 AND actual_end_date >= $3
	`

	rows, err := r.pool.Query(ctx, query, constituencyID, service.ProjectStatusCompleted, yearStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed projects: %w", err)
	}
	defer rows.Close()

	projects := make([]service.CompletedProjectRecord, 0)
	for rows.Next() {
		var p service.CompletedProjectRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.EstimatedCost, &p.ApprovedAmount, &p.ActualEndDate); err != nil {
			return nil, fmt.Errorf("failed to scan completed project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *SnapshotRepository) queryPayments(ctx context.Context, query string, args ...any) ([]service.PaymentRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]service.PaymentRecord, 0)
	for rows.Next() {
		var p service.PaymentRecord
		if err := rows.Scan(&p.ID, &p.Amount, &p.Status, &p.RecipientName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}
