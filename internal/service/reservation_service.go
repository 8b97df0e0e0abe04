package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"braseria/internal/db"
	"braseria/internal/entities"
	errsx "braseria/internal/errors"
)

const (
	paymentPending   = "pending"
	paymentSucceeded = "succeeded"
	paymentRefunded  = "refunded"
)

// ReservationStore is the persistence boundary for bookings.
type ReservationStore interface {
	LoadActiveForDate(date time.Time) ([]db.Reservation, error)
	Create(res *db.Reservation) error
	GetByCodeAndPhone(code, phone string) (*db.Reservation, error)
	GetByStripeSessionID(sessionID string) (*db.Reservation, error)
	UpdateStatus(id int, status string) error
	UpdateStatusAndPayment(id int, status, paymentStatus string) error
	UpdateStripeSession(id int, sessionID string) error
}

// PaymentProvider opens deposit checkouts and refunds them.
type PaymentProvider interface {
	CreateCheckoutSession(amount int64, currency, description, reservationCode string) (string, string, error)
	RefundPaymentBySessionID(sessionID string) error
}

type ReservationService struct {
	repo         ReservationStore
	payments     PaymentProvider
	availability *AvailabilityService
	quotes       *QuoteService
	sender       *SenderService
	loc          *time.Location
	now          func() time.Time
}

func NewReservationService(repo ReservationStore, payments PaymentProvider, availability *AvailabilityService, quotes *QuoteService, sender *SenderService) *ReservationService {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		loc = time.FixedZone("CET", 1*60*60) // fallback CET
	}
	return &ReservationService{
		repo:         repo,
		payments:     payments,
		availability: availability,
		quotes:       quotes,
		sender:       sender,
		loc:          loc,
		now:          time.Now,
	}
}

// CheckSlot answers "is this slot bookable?" against the current
// snapshot of the requested day.
func (s *ReservationService) CheckSlot(req entities.SlotRequest) (entities.SlotDecision, error) {
	active, err := s.repo.LoadActiveForDate(req.Date)
	if err != nil {
		log.Printf("Error loading reservations for %s: %v", req.Date.Format("2006-01-02"), err)
		return entities.SlotDecision{}, fmt.Errorf("internal error checking availability: %w", err)
	}
	return s.availability.CheckSlot(req, active), nil
}

// FindAlternatives proposes up to 3 bookable start times near a
// rejected slot.
func (s *ReservationService) FindAlternatives(req entities.SlotRequest) ([]string, error) {
	active, err := s.repo.LoadActiveForDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("internal error searching alternatives: %w", err)
	}
	return s.availability.FindAlternatives(req, active), nil
}

func (s *ReservationService) Quote(menuCode string, partySize, drinkTickets int, extras []string) (*entities.Quote, error) {
	return s.quotes.Calculate(menuCode, partySize, drinkTickets, extras)
}

func (s *ReservationService) Menus() []entities.MenuOption {
	return s.quotes.Menus()
}

// Create validates a booking request, re-checks the slot against a
// fresh snapshot and writes the reservation. A persistence conflict
// (the slot was taken between check and write) is retried once with a
// new snapshot before giving up.
func (s *ReservationService) Create(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	resp, err := s.createOnce(req)
	if errsx.IsConflict(err) {
		log.Printf("Conflict creating reservation for %s, retrying with fresh snapshot", req.Phone)
		resp, err = s.createOnce(req)
	}
	return resp, err
}

func (s *ReservationService) createOnce(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	active, err := s.repo.LoadActiveForDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("internal error loading reservations: %w", err)
	}

	decision := s.availability.CheckSlot(entities.SlotRequest{
		Date:          req.Date,
		StartMin:      req.StartMin,
		EndMin:        req.EndMin,
		EventType:     req.EventType,
		PartySize:     req.PartySize,
		PreferredZone: req.PreferredZone,
	}, active)
	if !decision.Available {
		return nil, errsx.NewRuleViolation(decision.Reason)
	}

	now := s.now().UTC()
	code, err := newReservationCode()
	if err != nil {
		return nil, err
	}

	reservation := &db.Reservation{
		Code:         code,
		Date:         req.Date,
		StartMin:     req.StartMin,
		EndMin:       req.EndMin,
		PartySize:    req.PartySize,
		EventType:    req.EventType,
		Status:       db.StatusConfirmed,
		IsExclusive:  req.EventType == db.EventExclusiveNight,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		ExtrasCode:   strings.Join(req.Extras, ","),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := &entities.BookingResponse{Code: code}

	if req.EventType == db.EventNormal {
		var ids []string
		for _, t := range decision.Tables {
			ids = append(ids, t.ID)
		}
		reservation.TableIDs = strings.Join(ids, ",")
		resp.Tables = ids
	} else {
		// Event bookings hold the slot until the deposit is paid.
		quote, err := s.quotes.Calculate(req.MenuCode, req.PartySize, req.DrinkTickets, req.Extras)
		if err != nil {
			return nil, err
		}
		deadline := now.Add(PaymentDeadline)
		reservation.Status = db.StatusHoldBlocked
		reservation.MenuCode = req.MenuCode
		reservation.DrinkTickets = req.DrinkTickets
		reservation.Total = quote.Total
		reservation.Deposit = quote.Deposit
		reservation.PaymentDeadline = &deadline
		reservation.PaymentStatus = paymentPending

		resp.Total = quote.Total
		resp.Deposit = quote.Deposit
		resp.PaymentDeadline = &deadline
	}

	if err := s.repo.Create(reservation); err != nil {
		return nil, err
	}
	resp.Status = reservation.Status

	if reservation.Status == db.StatusHoldBlocked {
		// The checkout opens only once the row exists: a conflict (or
		// retry) must never leave a payable session with no reservation
		// behind it.
		description := fmt.Sprintf("Depósito reserva %s (%d personas)", code, req.PartySize)
		amountCents := int64(math.Round(reservation.Deposit * 100))
		sessionURL, sessionID, err := s.payments.CreateCheckoutSession(amountCents, "eur", description, code)
		if err != nil {
			log.Printf("Error creating checkout session for %s: %v", code, err)
			if cancelErr := s.repo.UpdateStatus(reservation.ID, db.StatusCanceled); cancelErr != nil {
				log.Printf("Error releasing hold %s after checkout failure: %v", code, cancelErr)
			}
			return nil, fmt.Errorf("error creating checkout session: %w", err)
		}
		if err := s.repo.UpdateStripeSession(reservation.ID, sessionID); err != nil {
			return nil, err
		}
		reservation.StripeSessionID = sessionID
		resp.PaymentURL = sessionURL
	}

	if s.sender != nil {
		s.sender.SendBookingEmail(reservation, "registrada")
	}
	return resp, nil
}

// Cancel cancels a reservation looked up by code and phone.
// Cancellation needs at least 72 hours of notice; paid deposits are
// refunded.
func (s *ReservationService) Cancel(code, phone string) error {
	reservation, err := s.repo.GetByCodeAndPhone(code, phone)
	if err != nil {
		return err
	}
	if !reservation.Active() {
		return errsx.NewRuleViolation(fmt.Sprintf("La reserva %s ya no está activa", code))
	}

	start := s.startInstant(reservation.Date, reservation.StartMin)
	if start.Sub(s.now()) < CancelNotice {
		return errsx.NewRuleViolation("Las reservas solo pueden anularse con al menos 72 horas de antelación")
	}

	if reservation.PaymentStatus == paymentSucceeded && reservation.StripeSessionID != "" {
		if err := s.payments.RefundPaymentBySessionID(reservation.StripeSessionID); err != nil {
			return fmt.Errorf("error refunding deposit for %s: %w", code, err)
		}
	}
	if err := s.repo.UpdateStatus(reservation.ID, db.StatusCanceled); err != nil {
		return err
	}

	if s.sender != nil {
		reservation.Status = db.StatusCanceled
		s.sender.SendBookingEmail(reservation, "anulada")
	}
	return nil
}

func (s *ReservationService) GetByCode(code, phone string) (*entities.ReservationResponse, error) {
	reservation, err := s.repo.GetByCodeAndPhone(code, phone)
	if err != nil {
		return nil, err
	}
	resp := toResponse(reservation)
	return &resp, nil
}

// ConfirmBySessionID flips a hold to CONFIRMED once its deposit
// checkout completes.
func (s *ReservationService) ConfirmBySessionID(sessionID string) (*db.Reservation, error) {
	reservation, err := s.repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatusAndPayment(reservation.ID, db.StatusConfirmed, paymentSucceeded); err != nil {
		return nil, err
	}
	reservation.Status = db.StatusConfirmed
	reservation.PaymentStatus = paymentSucceeded
	if s.sender != nil {
		s.sender.SendBookingEmail(reservation, "confirmada")
	}
	return reservation, nil
}

// CancelRefundedBySessionID records an externally-refunded deposit.
func (s *ReservationService) CancelRefundedBySessionID(sessionID string) error {
	reservation, err := s.repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	return s.repo.UpdateStatusAndPayment(reservation.ID, db.StatusCanceled, paymentRefunded)
}

// ConsultDate summarizes one day for the consult flow: free tables in
// the prime dinner block and remaining event seats.
func (s *ReservationService) ConsultDate(date time.Time) (*entities.DateAvailability, error) {
	active, err := s.repo.LoadActiveForDate(date)
	if err != nil {
		return nil, fmt.Errorf("internal error consulting date: %w", err)
	}

	const primeStart, primeEnd = 20 * 60, 22 * 60
	overlapping := Overlapping(primeStart, primeEnd, active)

	occupied := make(map[string]bool)
	exclusive := false
	for _, r := range overlapping {
		if r.IsExclusive {
			exclusive = true
		}
		for _, id := range r.TableIDList() {
			occupied[id] = true
		}
	}

	free := 0
	for _, t := range s.availability.tables {
		if !occupied[t.ID] {
			free++
		}
	}
	remaining := EventCapacity - EventGuestCount(overlapping)
	if remaining < 0 {
		remaining = 0
	}

	return &entities.DateAvailability{
		Date:               date,
		FreeTablesAtPrime:  free,
		EventSeatsRemained: remaining,
		ExclusiveBlocked:   exclusive,
	}, nil
}

func (s *ReservationService) validate(req *entities.BookingRequest) error {
	if !db.IsKnownEventType(req.EventType) {
		return errsx.NewConfiguration(fmt.Sprintf("tipo de reserva desconocido: %q", req.EventType))
	}
	if req.PartySize <= 0 {
		return errsx.NewValidation("party_size", "debe ser mayor que cero")
	}
	if req.StartMin < 0 || req.StartMin >= minutesPerDay {
		return errsx.NewValidation("start_time", "fuera del rango del día")
	}
	end := req.EndMin
	if end == 0 {
		end = req.StartMin + db.BlockMinutes
	}
	if end <= req.StartMin || end > minutesPerDay {
		return errsx.NewValidation("end_time", "la franja debe terminar el mismo día, después de empezar")
	}
	if req.CustomerName == "" {
		return errsx.NewValidation("customer_name", "es obligatorio")
	}
	if req.Phone == "" {
		return errsx.NewValidation("phone", "es obligatorio")
	}

	start := s.startInstant(req.Date, req.StartMin)
	if start.Sub(s.now()) < MinAdvance(req.EventType) {
		if db.IsEventType(req.EventType) {
			return errsx.NewRuleViolation("Los eventos deben reservarse con al menos 5 días de antelación")
		}
		return errsx.NewRuleViolation("Las reservas de mesa requieren al menos 4 horas de antelación")
	}
	return nil
}

// newReservationCode returns an 8-hex-digit booking reference drawn
// from the system's random source. Clock-derived codes can collide
// under concurrent creates.
func newReservationCode() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("error generating reservation code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b[:])), nil
}

func (s *ReservationService) startInstant(date time.Time, startMin int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), startMin/60, startMin%60, 0, 0, s.loc)
}

func toResponse(r *db.Reservation) entities.ReservationResponse {
	return entities.ReservationResponse{
		Code:            r.Code,
		Date:            r.Date.Format("2006-01-02"),
		StartTime:       MinutesToClock(r.StartMin),
		EndTime:         MinutesToClock(r.EndMinutes()),
		PartySize:       r.PartySize,
		EventType:       r.EventType,
		Status:          r.Status,
		Tables:          r.TableIDList(),
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		MenuCode:        r.MenuCode,
		Total:           r.Total,
		Deposit:         r.Deposit,
		PaymentStatus:   r.PaymentStatus,
		PaymentDeadline: r.PaymentDeadline,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
