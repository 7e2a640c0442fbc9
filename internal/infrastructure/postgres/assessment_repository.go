package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cdfmis/analytics-service/internal/domain/model"
	"github.com/cdfmis/analytics-service/internal/domain/valueobject"
	pgxutil "github.com/cdfmis/analytics-service/pkg/postgres"
)

// AssessmentRepository implements port.AssessmentRepository using PostgreSQL.
// Factors and recommendations live in child tables keyed by position so
// evaluation order survives the round trip.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new PostgreSQL-backed assessment repository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

// Save persists a risk assessment with its factors and recommendations.
func (r *AssessmentRepository) Save(ctx context.Context, assessment *model.RiskAssessment) error {
	return pgxutil.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return r.saveInTx(ctx, tx, assessment)
	})
}

func (r *AssessmentRepository) saveInTx(ctx context.Context, tx pgxutil.Querier, assessment *model.RiskAssessment) error {
	query := `
		INSERT INTO risk_assessments (
			id, subject_type, subject_id,
			risk_score, risk_level,
			assessed_at, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			risk_score = EXCLUDED.risk_score,
			risk_level = EXCLUDED.risk_level,
			assessed_at = EXCLUDED.assessed_at,
			version = EXCLUDED.version,
			updated_at = EXCLUDED.updated_at
	`

	_, err := tx.Exec(ctx, query,
		assessment.ID(),
		string(assessment.SubjectType()),
		assessment.SubjectID(),
		assessment.RiskScore(),
		assessment.RiskLevel().String(),
		assessment.AssessedAt(),
		assessment.Version(),
		assessment.CreatedAt(),
		assessment.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	// Replace child rows wholesale; an assessment is rescored as a unit.
	_, err = tx.Exec(ctx, `DELETE FROM risk_factors WHERE assessment_id = $1`, assessment.ID())
	if err != nil {
		return fmt.Errorf("failed to delete old risk factors: %w", err)
	}
	for i, f := range assessment.Factors() {
		_, err = tx.Exec(ctx,
			`INSERT INTO risk_factors (assessment_id, position, kind, weight, score, description)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			assessment.ID(), i, f.Kind.String(), f.Weight, f.Score, f.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to save risk factor: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM risk_recommendations WHERE assessment_id = $1`, assessment.ID())
	if err != nil {
		return fmt.Errorf("failed to delete old recommendations: %w", err)
	}
	for i, rec := range assessment.Recommendations() {
		_, err = tx.Exec(ctx,
			`INSERT INTO risk_recommendations (assessment_id, position, recommendation)
			 VALUES ($1, $2, $3)`,
			assessment.ID(), i, rec,
		)
		if err != nil {
			return fmt.Errorf("failed to save recommendation: %w", err)
		}
	}

	return nil
}

// FindByID retrieves an assessment by its unique identifier, or nil when absent.
func (r *AssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.RiskAssessment, error) {
	query := `
		SELECT id, subject_type, subject_id,
			risk_score, risk_level,
			assessed_at, version, created_at, updated_at
		FROM risk_assessments
		WHERE id = $1
	`

	return r.scanAssessment(ctx, r.pool.QueryRow(ctx, query, id))
}

// FindBySubject retrieves assessments for a subject, newest first.
func (r *AssessmentRepository) FindBySubject(ctx context.Context, subjectType model.SubjectType, subjectID uuid.UUID, limit, offset int) ([]*model.RiskAssessment, error) {
	query := `
		SELECT id, subject_type, subject_id,
			risk_score, risk_level,
			assessed_at, version, created_at, updated_at
		FROM risk_assessments
		WHERE subject_type = $1 AND subject_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, string(subjectType), subjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*model.RiskAssessment
	for rows.Next() {
		assessment, err := r.scanRow(ctx, rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, nil
}

func (r *AssessmentRepository) scanAssessment(ctx context.Context, row pgx.Row) (*model.RiskAssessment, error) {
	assessment, err := r.scanRow(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return assessment, nil
}

func (r *AssessmentRepository) scanRow(ctx context.Context, row pgx.Row) (*model.RiskAssessment, error) {
	var (
		id           uuid.UUID
		subjectType  string
		subjectID    uuid.UUID
		riskScore    int
		riskLevelStr string
		assessedAt   *time.Time
		version      int
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := row.Scan(
		&id, &subjectType, &subjectID,
		&riskScore, &riskLevelStr,
		&assessedAt, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	riskLevel, err := valueobject.RiskLevelFromString(riskLevelStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse risk level: %w", err)
	}

	factors, err := r.loadFactors(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}

	recommendations, err := r.loadRecommendations(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}

	var assessedAtVal time.Time
	if assessedAt != nil {
		assessedAtVal = *assessedAt
	}

	return model.Reconstruct(
		id, model.SubjectType(subjectType), subjectID,
		riskScore, riskLevel, factors, recommendations,
		assessedAtVal, version, createdAt, updatedAt,
	), nil
}

func (r *AssessmentRepository) loadFactors(ctx context.Context, q pgxutil.Querier, assessmentID uuid.UUID) ([]valueobject.RiskFactor, error) {
	rows, err := q.Query(ctx,
		`SELECT kind, weight, score, description
		 FROM risk_factors WHERE assessment_id = $1 ORDER BY position`,
		assessmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk factors: %w", err)
	}
	defer rows.Close()

	factors := make([]valueobject.RiskFactor, 0)
	for rows.Next() {
		var (
			kindStr     string
			weight      int
			score       int
			description string
		)
		if err := rows.Scan(&kindStr, &weight, &score, &description); err != nil {
			return nil, fmt.Errorf("failed to scan risk factor: %w", err)
		}
		kind, err := valueobject.FactorKindFromString(kindStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse factor kind: %w", err)
		}
		factors = append(factors, valueobject.RiskFactor{
			Kind:        kind,
			Weight:      weight,
			Score:       score,
			Description: description,
		})
	}

	return factors, nil
}

func (r *AssessmentRepository) loadRecommendations(ctx context.Context, q pgxutil.Querier, assessmentID uuid.UUID) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT recommendation
		 FROM risk_recommendations WHERE assessment_id = $1 ORDER BY position`,
		assessmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	recommendations := make([]string, 0)
	for rows.Next() {
		var rec string
		if err := rows.Scan(&rec); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, nil
}
