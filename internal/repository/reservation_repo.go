package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"braseria/internal/db"
	errsx "braseria/internal/errors"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

const reservationColumns = `
	id, code, date, start_min, end_min, party_size, event_type, status,
	is_exclusive, table_ids, customer_name, phone, email, menu_code,
	drink_tickets, extras_code, total, deposit, payment_deadline,
	stripe_session_id, payment_status, created_at, updated_at`

// LoadActiveForDate returns the snapshot of conflict-relevant
// reservations for one day: HOLD_BLOCKED and CONFIRMED only.
func (r *ReservationRepository) LoadActiveForDate(date time.Time) ([]db.Reservation, error) {
	query := `SELECT` + reservationColumns + `
		FROM reservations
		WHERE date = $1 AND status IN ($2, $3)
		ORDER BY start_min, id`

	rows, err := r.DB.Query(query, date.Format("2006-01-02"), db.StatusHoldBlocked, db.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("error querying active reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

// Create inserts a reservation. The reservations table carries an
// exclusion constraint over (table id, date, time range) for active
// rows, so a lost race surfaces here as a ConflictError.
func (r *ReservationRepository) Create(res *db.Reservation) error {
	query := `
		INSERT INTO reservations
		(code, date, start_min, end_min, party_size, event_type, status,
		 is_exclusive, table_ids, customer_name, phone, email, menu_code,
		 drink_tickets, extras_code, total, deposit, payment_deadline,
		 stripe_session_id, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRow(query,
		res.Code,
		res.Date.Format("2006-01-02"),
		res.StartMin,
		res.EndMinutes(),
		res.PartySize,
		res.EventType,
		res.Status,
		res.IsExclusive,
		res.TableIDs,
		res.CustomerName,
		res.Phone,
		res.Email,
		res.MenuCode,
		res.DrinkTickets,
		res.ExtrasCode,
		res.Total,
		res.Deposit,
		res.PaymentDeadline,
		res.StripeSessionID,
		res.PaymentStatus,
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == "23505" || pqErr.Code == "23P01") {
			return errsx.NewConflict("la franja se ha ocupado mientras se confirmaba la reserva")
		}
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByCodeAndPhone(code, phone string) (*db.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations WHERE code = $1 AND phone = $2`
	res, err := scanReservation(r.DB.QueryRow(query, code, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation with code '%s' not found for that phone: %w", code, err)
		}
		return nil, fmt.Errorf("error querying reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) GetByStripeSessionID(sessionID string) (*db.Reservation, error) {
	query := `SELECT` + reservationColumns + ` FROM reservations WHERE stripe_session_id = $1`
	res, err := scanReservation(r.DB.QueryRow(query, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation for session '%s' not found: %w", sessionID, err)
		}
		return nil, fmt.Errorf("error querying reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating reservation %d status: %w", id, err)
	}
	return nil
}

// UpdateStripeSession attaches the checkout session opened for a hold
// after the row already exists.
func (r *ReservationRepository) UpdateStripeSession(id int, sessionID string) error {
	_, err := r.DB.Exec(
		`UPDATE reservations SET stripe_session_id = $1, updated_at = NOW() WHERE id = $2`,
		sessionID, id,
	)
	if err != nil {
		return fmt.Errorf("error attaching session to reservation %d: %w", id, err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatusAndPayment(id int, status, paymentStatus string) error {
	_, err := r.DB.Exec(
		`UPDATE reservations SET status = $1, payment_status = $2, updated_at = NOW() WHERE id = $3`,
		status, paymentStatus, id,
	)
	if err != nil {
		return fmt.Errorf("error updating reservation %d status/payment: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*db.Reservation, error) {
	var res db.Reservation
	var deadline sql.NullTime
	err := row.Scan(
		&res.ID, &res.Code, &res.Date, &res.StartMin, &res.EndMin, &res.PartySize,
		&res.EventType, &res.Status, &res.IsExclusive, &res.TableIDs,
		&res.CustomerName, &res.Phone, &res.Email, &res.MenuCode,
		&res.DrinkTickets, &res.ExtrasCode, &res.Total, &res.Deposit,
		&deadline, &res.StripeSessionID, &res.PaymentStatus,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadline.Valid {
		t := deadline.Time
		res.PaymentDeadline = &t
	}
	return &res, nil
}
