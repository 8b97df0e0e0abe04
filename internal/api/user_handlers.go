package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"braseria/internal/entities"
	errsx "braseria/internal/errors"
	"braseria/internal/service"
	"braseria/internal/venue"
)

type UserReservationHandler struct {
	Service *service.ReservationService
}

func NewUserReservationHandler(svc *service.ReservationService) *UserReservationHandler {
	return &UserReservationHandler{Service: svc}
}

func (h *UserReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	slot, err := slotRequestFrom(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	decision, err := h.Service.CheckSlot(slot)
	if err != nil {
		http.Error(w, "Error checking availability", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(decision)
}

func (h *UserReservationHandler) FindAlternatives(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	slot, err := slotRequestFrom(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	alternatives, err := h.Service.FindAlternatives(slot)
	if err != nil {
		http.Error(w, "Error searching alternatives", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlternativesResponse{Alternatives: alternatives})
}

func (h *UserReservationHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	quote, err := h.Service.Quote(req.MenuCode, req.PartySize, req.DrinkTickets, req.Extras)
	if err != nil {
		http.Error(w, err.Error(), errsx.StatusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quote)
}

func (h *UserReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "Invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	startMin, err := clockToMinutes(req.StartTime)
	if err != nil {
		http.Error(w, "Invalid start_time, use HH:MM", http.StatusBadRequest)
		return
	}
	endMin := 0
	if req.EndTime != "" {
		if endMin, err = clockToMinutes(req.EndTime); err != nil {
			http.Error(w, "Invalid end_time, use HH:MM", http.StatusBadRequest)
			return
		}
	}
	zone, _ := venue.ParseZone(req.Zone)

	resp, err := h.Service.Create(&entities.BookingRequest{
		Date:          date,
		StartMin:      startMin,
		EndMin:        endMin,
		EventType:     req.EventType,
		PartySize:     req.PartySize,
		PreferredZone: zone,
		MenuCode:      req.MenuCode,
		DrinkTickets:  req.DrinkTickets,
		Extras:        req.Extras,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Email:         req.Email,
	})
	if err != nil {
		http.Error(w, err.Error(), errsx.StatusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *UserReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, "phone required", http.StatusBadRequest)
		return
	}
	res, err := h.Service.GetByCode(code, phone)
	if err != nil {
		http.Error(w, "Reservation not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *UserReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, "phone required", http.StatusBadRequest)
		return
	}
	if err := h.Service.Cancel(code, phone); err != nil {
		http.Error(w, err.Error(), errsx.StatusFor(err))
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Reservation cancelled"})
}

func (h *UserReservationHandler) GetMenus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Menus())
}

func slotRequestFrom(req AvailabilityRequest) (entities.SlotRequest, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return entities.SlotRequest{}, errsx.NewValidation("date", "use YYYY-MM-DD")
	}
	startMin, err := clockToMinutes(req.StartTime)
	if err != nil {
		return entities.SlotRequest{}, errsx.NewValidation("start_time", "use HH:MM")
	}
	endMin := 0
	if req.EndTime != "" {
		if endMin, err = clockToMinutes(req.EndTime); err != nil {
			return entities.SlotRequest{}, errsx.NewValidation("end_time", "use HH:MM")
		}
	}
	zone, _ := venue.ParseZone(req.Zone)
	return entities.SlotRequest{
		Date:          date,
		StartMin:      startMin,
		EndMin:        endMin,
		EventType:     req.EventType,
		PartySize:     req.PartySize,
		PreferredZone: zone,
	}, nil
}

func clockToMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
