package repository

import (
	"database/sql"
	"strconv"

	"braseria/internal/db"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(database *sql.DB) *AdminRepository {
	return &AdminRepository{DB: database}
}

func (r *AdminRepository) ListReservations(date, eventType, status string) ([]db.Reservation, error) {
	query := `SELECT` + reservationColumns + `
	FROM reservations
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if eventType != "" {
		query += " AND event_type = $" + strconv.Itoa(idx)
		args = append(args, eventType)
		idx++
	}
	if status != "" {
		query += " AND status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY date DESC, start_min DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err == nil {
			reservations = append(reservations, *res)
		}
	}
	return reservations, nil
}

func (r *AdminRepository) DeleteReservation(id int) error {
	_, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	return err
}
