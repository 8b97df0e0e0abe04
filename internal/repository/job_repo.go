package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"braseria/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// ExpiredHoldIDs busca reservas en HOLD_BLOCKED cuyo plazo de pago ya venció.
func (r *JobRepository) ExpiredHoldIDs(now time.Time) ([]int, error) {
	query := `
		SELECT id FROM reservations
		WHERE status = $1 AND payment_deadline IS NOT NULL AND payment_deadline < $2`
	return r.queryIDs(query, db.StatusHoldBlocked, now)
}

// FinishedReservationIDs returns confirmed reservations whose window
// already ended.
func (r *JobRepository) FinishedReservationIDs(now time.Time) ([]int, error) {
	query := `
		SELECT id FROM reservations
		WHERE status = $1 AND (date + end_min * interval '1 minute') < $2`
	return r.queryIDs(query, db.StatusConfirmed, now)
}

func (r *JobRepository) queryIDs(query string, args ...interface{}) ([]int, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservation ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateReservationStatuses actualiza el estado de una lista de reservas.
// También actualiza el campo updated_at.
func (r *JobRepository) UpdateReservationStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil // No hay nada que actualizar
	}
	query := `UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating reservation statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d reservations to '%s'", rowsAffected, newStatus)
	}
	return nil
}
