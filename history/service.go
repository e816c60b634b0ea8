package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/croptrack-go/apperror"
)

// Service defines the operations of the prediction ledger. Handlers depend
// on this interface rather than the concrete implementation, which keeps
// them testable without a database.
type Service interface {
	// AddRecord appends a prediction record owned by userID. The record is
	// stamped by the store and returned with its assigned id and timestamp.
	AddRecord(ctx context.Context, userID int, req NewRecordRequest) (*Record, error)
	// ListByUser returns all records owned by userID, newest first. An
	// empty slice, not an error, when the user has no records.
	ListByUser(ctx context.Context, userID int) ([]Record, error)
}

type serviceImpl struct {
	db *pgxpool.Pool
}

// NewService creates a Service backed by the given connection pool.
func NewService(db *pgxpool.Pool) Service {
	return &serviceImpl{db: db}
}

func (s *serviceImpl) AddRecord(ctx context.Context, userID int, req NewRecordRequest) (*Record, error) {
	if req.PredictedCrop == nil || *req.PredictedCrop == "" {
		return nil, apperror.NewValidationError("predicted crop is required", nil)
	}

	record := &Record{
		UserID:        userID,
		Nitrogen:      req.Nitrogen,
		Phosphorus:    req.Phosphorus,
		Potassium:     req.Potassium,
		Ph:            req.Ph,
		Rainfall:      req.Rainfall,
		Temperature:   req.Temperature,
		PredictedCrop: *req.PredictedCrop,
	}

	query := `INSERT INTO predictions (user_id, nitrogen, phosphorus, potassium, ph, rainfall, temperature, predicted_crop)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING id, created_at`
	err := s.db.QueryRow(ctx, query,
		record.UserID,
		record.Nitrogen,
		record.Phosphorus,
		record.Potassium,
		record.Ph,
		record.Rainfall,
		record.Temperature,
		record.PredictedCrop,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to save prediction", err)
	}

	return record, nil
}

func (s *serviceImpl) ListByUser(ctx context.Context, userID int) ([]Record, error) {
	// Ownership is an explicit predicate here: records of other users are
	// unreachable regardless of what the caller sends.
	query := `SELECT id, user_id, nitrogen, phosphorus, potassium, ph, rainfall, temperature, predicted_crop, created_at
              FROM predictions
              WHERE user_id = $1
              ORDER BY created_at DESC, id DESC`
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to retrieve history", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Nitrogen,
			&rec.Phosphorus,
			&rec.Potassium,
			&rec.Ph,
			&rec.Rainfall,
			&rec.Temperature,
			&rec.PredictedCrop,
			&rec.CreatedAt,
		); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan history record", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read history rows", err)
	}

	return records, nil
}
