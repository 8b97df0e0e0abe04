package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"braseria/internal/db"
	"braseria/internal/entities"
	errsx "braseria/internal/errors"
	"braseria/internal/venue"
)

// Conversation steps. Absence of a stored session is synonymous with
// WELCOME; there is no stored "done" step, completion deletes the row.
const (
	StepWelcome            = "WELCOME"
	StepChooseAction       = "CHOOSE_ACTION"
	StepChooseType         = "CHOOSE_TYPE"
	StepChooseEventSubtype = "CHOOSE_EVENT_SUBTYPE"
	StepAskDate            = "ASK_DATE"
	StepAskTime            = "ASK_TIME"
	StepAskPartySize       = "ASK_PARTY_SIZE"
	StepAskZone            = "ASK_ZONE"
	StepAskMenu            = "ASK_MENU"
	StepAskName            = "ASK_NAME"
	StepConfirm            = "CONFIRM"
	StepConsultDate        = "CONSULT_DATE"
	StepCancelReference    = "CANCEL_REFERENCE"
)

// Keys of the accumulated answer payload.
const (
	dataEventType = "event_type"
	dataDate      = "date"
	dataTime      = "time"
	dataPartySize = "party_size"
	dataZone      = "zone"
	dataMenu      = "menu_code"
	dataName      = "name"
)

// SessionTimeout is the inactivity window after which a session is
// discarded on the next read, as if it never existed.
const SessionTimeout = 30 * time.Minute

// ConversationStore persists phone-keyed sessions. Load returns
// (nil, nil) when no session exists.
type ConversationStore interface {
	Load(phone string) (*db.ConversationState, error)
	Save(state *db.ConversationState) error
	Delete(phone string) error
}

// Booker is the slice of the reservation service the conversation
// machine needs.
type Booker interface {
	CheckSlot(req entities.SlotRequest) (entities.SlotDecision, error)
	FindAlternatives(req entities.SlotRequest) ([]string, error)
	Quote(menuCode string, partySize, drinkTickets int, extras []string) (*entities.Quote, error)
	Menus() []entities.MenuOption
	Create(req *entities.BookingRequest) (*entities.BookingResponse, error)
	Cancel(code, phone string) error
	ConsultDate(date time.Time) (*entities.DateAvailability, error)
}

// Messenger delivers outbound messages. Implemented by NotifyService.
type Messenger interface {
	SendText(phone, message string) error
	SendButtons(phone, body string, buttons []Button, header, footer string) error
}

type ConversationService struct {
	store     ConversationStore
	booker    Booker
	messenger Messenger
	now       func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewConversationService(store ConversationStore, booker Booker, messenger Messenger) *ConversationService {
	return &ConversationService{
		store:     store,
		booker:    booker,
		messenger: messenger,
		now:       time.Now,
		locks:     map[string]*sync.Mutex{},
	}
}

// HandleIncomingMessage advances the dialog for one inbound message.
// Messages for the same phone are serialized: duplicate webhook
// deliveries must not race on the same session row.
func (s *ConversationService) HandleIncomingMessage(phone, rawText string) error {
	lock := s.phoneLock(phone)
	lock.Lock()
	defer lock.Unlock()

	input := normalizeInput(rawText)

	state, err := s.store.Load(phone)
	if err != nil {
		log.Printf("Error loading conversation state for %s: %v", phone, err)
		return err
	}

	if state != nil && s.now().Sub(state.UpdatedAt) > SessionTimeout {
		// Destructive read-time expiry: stale sessions restart from
		// the welcome step as if they never existed.
		if err := s.store.Delete(phone); err != nil {
			return err
		}
		state = nil
	}

	if state == nil {
		return s.startConversation(phone)
	}

	if isReset(input) {
		if err := s.store.Delete(phone); err != nil {
			return err
		}
		return s.messenger.SendText(phone, "Hemos reiniciado la conversación. Escríbenos cuando quieras empezar de nuevo.")
	}

	switch state.Step {
	case StepChooseAction:
		return s.handleChooseAction(state, input)
	case StepChooseType:
		return s.handleChooseType(state, input)
	case StepChooseEventSubtype:
		return s.handleChooseEventSubtype(state, input)
	case StepAskDate:
		return s.handleAskDate(state, input)
	case StepAskTime:
		return s.handleAskTime(state, input)
	case StepAskPartySize:
		return s.handleAskPartySize(state, input)
	case StepAskZone:
		return s.handleAskZone(state, input)
	case StepAskMenu:
		return s.handleAskMenu(state, input)
	case StepAskName:
		return s.handleAskName(state, rawText)
	case StepConfirm:
		return s.handleConfirm(state, input)
	case StepConsultDate:
		return s.handleConsultDate(state, input)
	case StepCancelReference:
		return s.handleCancelReference(state, rawText)
	default:
		// Unknown stored step (e.g. after a deploy): start over.
		log.Printf("Unknown conversation step %q for %s, restarting", state.Step, phone)
		if err := s.store.Delete(state.Phone); err != nil {
			return err
		}
		return s.startConversation(phone)
	}
}

func (s *ConversationService) startConversation(phone string) error {
	state := &db.ConversationState{
		Phone:     phone,
		Step:      StepChooseAction,
		Data:      map[string]string{},
		UpdatedAt: s.now(),
	}
	if err := s.store.Save(state); err != nil {
		return err
	}
	return s.sendActionButtons(phone)
}

func (s *ConversationService) sendActionButtons(phone string) error {
	return s.messenger.SendButtons(phone,
		"¡Hola! Soy el asistente de La Brasería. ¿Qué quieres hacer?",
		[]Button{
			{ID: "action_book", Title: "Reservar"},
			{ID: "action_consult", Title: "Ver disponibilidad"},
			{ID: "action_cancel", Title: "Anular reserva"},
		},
		"La Brasería",
		"Escribe 'salir' en cualquier momento para empezar de nuevo",
	)
}

func (s *ConversationService) handleChooseAction(state *db.ConversationState, input string) error {
	switch input {
	case "1", "reservar", "action_book":
		if err := s.advance(state, StepChooseType); err != nil {
			return err
		}
		return s.messenger.SendButtons(state.Phone, "¿Qué tipo de reserva quieres?",
			[]Button{
				{ID: "type_table", Title: "Mesa"},
				{ID: "type_event", Title: "Evento o grupo"},
			}, "", "")
	case "2", "disponibilidad", "ver disponibilidad", "action_consult":
		if err := s.advance(state, StepConsultDate); err != nil {
			return err
		}
		return s.messenger.SendText(state.Phone, "¿Para qué fecha? (DD/MM/AAAA)")
	case "3", "anular", "anular reserva", "action_cancel":
		if err := s.advance(state, StepCancelReference); err != nil {
			return err
		}
		return s.messenger.SendText(state.Phone, "Dime el código de tu reserva (lo tienes en el mensaje de confirmación).")
	default:
		return s.sendActionButtons(state.Phone)
	}
}

func (s *ConversationService) handleChooseType(state *db.ConversationState, input string) error {
	switch input {
	case "1", "mesa", "type_table":
		state.Data[dataEventType] = db.EventNormal
		if err := s.advance(state, StepAskDate); err != nil {
			return err
		}
		return s.messenger.SendText(state.Phone, "¿Para qué día? (DD/MM/AAAA)")
	case "2", "evento", "evento o grupo", "grupo", "type_event":
		if err := s.advance(state, StepChooseEventSubtype); err != nil {
			return err
		}
		return s.sendEventSubtypePrompt(state.Phone)
	default:
		return s.messenger.SendButtons(state.Phone, "No te he entendido. ¿Qué tipo de reserva quieres?",
			[]Button{
				{ID: "type_table", Title: "Mesa"},
				{ID: "type_event", Title: "Evento o grupo"},
			}, "", "")
	}
}

func (s *ConversationService) sendEventSubtypePrompt(phone string) error {
	return s.messenger.SendText(phone,
		"¿Qué tipo de evento?\n"+
			"1. Fiesta infantil\n"+
			"2. Grupo sentado\n"+
			"3. Grupo de pie\n"+
			"4. Noche exclusiva (local completo)")
}

func (s *ConversationService) handleChooseEventSubtype(state *db.ConversationState, input string) error {
	var eventType string
	switch input {
	case "1", "infantil", "fiesta infantil":
		eventType = db.EventChildParty
	case "2", "grupo sentado", "sentado":
		eventType = db.EventSeatedGroup
	case "3", "grupo de pie", "de pie":
		eventType = db.EventStandingGroup
	case "4", "noche exclusiva", "exclusiva":
		eventType = db.EventExclusiveNight
	default:
		return s.sendEventSubtypePrompt(state.Phone)
	}
	state.Data[dataEventType] = eventType
	if err := s.advance(state, StepAskDate); err != nil {
		return err
	}
	return s.messenger.SendText(state.Phone, "¿Para qué día? (DD/MM/AAAA)")
}

func (s *ConversationService) handleAskDate(state *db.ConversationState, input string) error {
	date, err := parseDate(input, s.now())
	if err != nil {
		return s.messenger.SendText(state.Phone, "No he reconocido la fecha. Escríbela como DD/MM/AAAA, por ejemplo 24/12/2026.")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return s.messenger.SendText(state.Phone, "Esa fecha ya ha pasado. ¿Para qué día quieres la reserva?")
	}
	state.Data[dataDate] = date.Format("2006-01-02")
	if err := s.advance(state, StepAskTime); err != nil {
		return err
	}
	return s.messenger.SendText(state.Phone, "¿A qué hora? (HH:MM)")
}

func (s *ConversationService) handleAskTime(state *db.ConversationState, input string) error {
	startMin, err := parseClock(input)
	if err != nil {
		return s.messenger.SendText(state.Phone, "No he reconocido la hora. Escríbela como HH:MM, por ejemplo 21:00.")
	}
	state.Data[dataTime] = strconv.Itoa(startMin)
	if err := s.advance(state, StepAskPartySize); err != nil {
		return err
	}
	return s.messenger.SendText(state.Phone, "¿Para cuántas personas?")
}

func (s *ConversationService) handleAskPartySize(state *db.ConversationState, input string) error {
	size, err := strconv.Atoi(input)
	if err != nil || size < 1 || size > EventCapacity {
		return s.messenger.SendText(state.Phone, fmt.Sprintf("Dime un número de personas entre 1 y %d.", EventCapacity))
	}
	state.Data[dataPartySize] = strconv.Itoa(size)

	if state.Data[dataEventType] == db.EventNormal {
		if err := s.advance(state, StepAskZone); err != nil {
			return err
		}
		return s.messenger.SendButtons(state.Phone, "¿Dónde prefieres la mesa?",
			[]Button{
				{ID: "zone_outside", Title: "Terraza"},
				{ID: "zone_inside", Title: "Interior"},
				{ID: "zone_any", Title: "Me da igual"},
			}, "", "")
	}

	// Events do not pick a zone; check the slot as soon as the size is known.
	ok, err := s.checkCollectedSlot(state)
	if err != nil || !ok {
		return err
	}
	if err := s.advance(state, StepAskMenu); err != nil {
		return err
	}
	return s.sendMenuPrompt(state.Phone)
}

func (s *ConversationService) handleAskZone(state *db.ConversationState, input string) error {
	switch input {
	case "1", "terraza", "fuera", "zone_outside":
		state.Data[dataZone] = string(venue.ZoneOutside)
	case "2", "interior", "dentro", "zone_inside":
		state.Data[dataZone] = string(venue.ZoneInside)
	case "3", "me da igual", "igual", "indiferente", "zone_any":
		state.Data[dataZone] = ""
	default:
		return s.messenger.SendButtons(state.Phone, "No te he entendido. ¿Dónde prefieres la mesa?",
			[]Button{
				{ID: "zone_outside", Title: "Terraza"},
				{ID: "zone_inside", Title: "Interior"},
				{ID: "zone_any", Title: "Me da igual"},
			}, "", "")
	}

	ok, err := s.checkCollectedSlot(state)
	if err != nil || !ok {
		return err
	}
	if err := s.advance(state, StepAskName); err != nil {
		return err
	}
	return s.messenger.SendText(state.Phone, "¿A nombre de quién hago la reserva?")
}

func (s *ConversationService) sendMenuPrompt(phone string) error {
	var b strings.Builder
	b.WriteString("¿Qué menú queréis?\n")
	for i, m := range s.booker.Menus() {
		b.WriteString(fmt.Sprintf("%d. %s (%d €/persona)\n", i+1, m.Label, m.PricePerPerson))
	}
	return s.messenger.SendText(phone, strings.TrimRight(b.String(), "\n"))
}

func (s *ConversationService) handleAskMenu(state *db.ConversationState, input string) error {
	menus := s.booker.Menus()
	var chosen string
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(menus) {
		chosen = menus[n-1].Code
	} else {
		for _, m := range menus {
			if input == m.Code || input == strings.ToLower(m.Label) {
				chosen = m.Code
				break
			}
		}
	}
	if chosen == "" {
		return s.sendMenuPrompt(state.Phone)
	}
	state.Data[dataMenu] = chosen
	if err := s.advance(state, StepAskName); err != nil {
		return err
	}
	return s.messenger.SendText(state.Phone, "¿A nombre de quién hago la reserva?")
}

func (s *ConversationService) handleAskName(state *db.ConversationState, rawText string) error {
	name := strings.TrimSpace(rawText)
	if name == "" {
		return s.messenger.SendText(state.Phone, "Necesito un nombre para la reserva.")
	}
	state.Data[dataName] = name
	if err := s.advance(state, StepConfirm); err != nil {
		return err
	}
	return s.sendSummary(state)
}

func (s *ConversationService) sendSummary(state *db.ConversationState) error {
	req, err := s.bookingRequest(state)
	if err != nil {
		return s.failAndClear(state, err)
	}

	var b strings.Builder
	b.WriteString("Resumen de tu reserva:\n")
	b.WriteString(fmt.Sprintf("• %s\n", eventTypeLabel(req.EventType)))
	b.WriteString(fmt.Sprintf("• Día %s a las %s\n", req.Date.Format("02/01/2006"), MinutesToClock(req.StartMin)))
	b.WriteString(fmt.Sprintf("• %d personas\n", req.PartySize))
	if req.EventType == db.EventNormal {
		if req.PreferredZone != "" {
			b.WriteString(fmt.Sprintf("• Zona: %s\n", zoneLabel(req.PreferredZone)))
		}
	} else {
		quote, err := s.booker.Quote(req.MenuCode, req.PartySize, req.DrinkTickets, req.Extras)
		if err != nil {
			return s.failAndClear(state, err)
		}
		b.WriteString(fmt.Sprintf("• Total %.2f €, señal del 40%%: %.2f €\n", quote.Total, quote.Deposit))
	}
	b.WriteString(fmt.Sprintf("• A nombre de %s", req.CustomerName))

	return s.messenger.SendButtons(state.Phone, b.String(),
		[]Button{
			{ID: "confirm_yes", Title: "Confirmar"},
			{ID: "confirm_no", Title: "No, gracias"},
		}, "", "")
}

func (s *ConversationService) handleConfirm(state *db.ConversationState, input string) error {
	switch input {
	case "1", "si", "sí", "confirmar", "vale", "confirm_yes":
		req, err := s.bookingRequest(state)
		if err != nil {
			return s.failAndClear(state, err)
		}
		resp, err := s.booker.Create(req)
		if err != nil {
			// Whatever went wrong, the session never stays stuck.
			return s.failAndClear(state, err)
		}
		if err := s.store.Delete(state.Phone); err != nil {
			return err
		}
		msg := fmt.Sprintf("¡Reserva registrada! Tu código es %s.", resp.Code)
		if resp.PaymentURL != "" {
			msg += fmt.Sprintf("\nPara confirmarla, paga la señal de %.2f € aquí: %s", resp.Deposit, resp.PaymentURL)
			if resp.PaymentDeadline != nil {
				msg += fmt.Sprintf("\nTienes hasta el %s; si no, la reserva se anula automáticamente.", resp.PaymentDeadline.Format("02/01/2006"))
			}
		}
		return s.messenger.SendText(state.Phone, msg)
	case "2", "no", "no, gracias", "confirm_no":
		if err := s.store.Delete(state.Phone); err != nil {
			return err
		}
		return s.messenger.SendText(state.Phone, "De acuerdo, no he guardado nada. ¡Hasta pronto!")
	default:
		return s.sendSummary(state)
	}
}

func (s *ConversationService) handleConsultDate(state *db.ConversationState, input string) error {
	date, err := parseDate(input, s.now())
	if err != nil {
		return s.messenger.SendText(state.Phone, "No he reconocido la fecha. Escríbela como DD/MM/AAAA.")
	}
	summary, err := s.booker.ConsultDate(date)
	if err != nil {
		return s.failAndClear(state, err)
	}
	if err := s.store.Delete(state.Phone); err != nil {
		return err
	}
	if summary.ExclusiveBlocked {
		return s.messenger.SendText(state.Phone,
			fmt.Sprintf("El %s el local está reservado en exclusiva.", date.Format("02/01/2006")))
	}
	return s.messenger.SendText(state.Phone,
		fmt.Sprintf("El %s tenemos %d mesas libres en la franja de 20:00 a 22:00 y quedan %d plazas para eventos. Escríbenos para reservar.",
			date.Format("02/01/2006"), summary.FreeTablesAtPrime, summary.EventSeatsRemained))
}

func (s *ConversationService) handleCancelReference(state *db.ConversationState, rawText string) error {
	code := strings.ToUpper(strings.TrimSpace(rawText))
	if code == "" {
		return s.messenger.SendText(state.Phone, "Necesito el código de la reserva.")
	}

	err := s.booker.Cancel(code, state.Phone)
	if delErr := s.store.Delete(state.Phone); delErr != nil {
		return delErr
	}
	switch {
	case err == nil:
		return s.messenger.SendText(state.Phone, fmt.Sprintf("Reserva %s anulada. Si pagaste una señal, te la devolvemos.", code))
	case errsx.IsRuleViolation(err):
		return s.messenger.SendText(state.Phone, err.Error())
	default:
		return s.messenger.SendText(state.Phone, "No he encontrado esa reserva asociada a tu teléfono.")
	}
}

// checkCollectedSlot runs the availability check once enough answers
// are collected. On rejection it reports the reason plus alternative
// times and sends the dialog back to ASK_TIME; the bool is false when
// the caller must not advance.
func (s *ConversationService) checkCollectedSlot(state *db.ConversationState) (bool, error) {
	req, err := s.slotRequest(state)
	if err != nil {
		return false, s.failAndClear(state, err)
	}

	decision, err := s.booker.CheckSlot(req)
	if err != nil {
		return false, s.failAndClear(state, err)
	}
	if decision.Available {
		return true, nil
	}

	msg := decision.Reason
	alternatives, err := s.booker.FindAlternatives(req)
	if err == nil && len(alternatives) > 0 {
		msg += fmt.Sprintf("\nTambién tenemos hueco a las: %s.", strings.Join(alternatives, ", "))
	}
	msg += "\n¿A qué otra hora te viene bien? (HH:MM)"

	if err := s.advance(state, StepAskTime); err != nil {
		return false, err
	}
	return false, s.messenger.SendText(state.Phone, msg)
}

// failAndClear informs the user and drops the session: a failed booking
// never leaves a zombie conversation behind.
func (s *ConversationService) failAndClear(state *db.ConversationState, err error) error {
	log.Printf("Conversation for %s failed at %s: %v", state.Phone, state.Step, err)
	if delErr := s.store.Delete(state.Phone); delErr != nil {
		return delErr
	}

	msg := "Ha ocurrido un error y no he podido completar la operación. Escríbenos de nuevo para volver a intentarlo."
	switch {
	case errsx.IsRuleViolation(err):
		msg = "No he podido completar la reserva: " + err.Error() + "\nEscríbenos de nuevo para intentarlo con otros datos."
	case errsx.IsConflict(err):
		msg = "Esa franja se acaba de ocupar. Escríbenos de nuevo e inténtalo con otra hora."
	}
	return s.messenger.SendText(state.Phone, msg)
}

func (s *ConversationService) advance(state *db.ConversationState, step string) error {
	state.Step = step
	state.UpdatedAt = s.now()
	return s.store.Save(state)
}

func (s *ConversationService) slotRequest(state *db.ConversationState) (entities.SlotRequest, error) {
	date, err := time.Parse("2006-01-02", state.Data[dataDate])
	if err != nil {
		return entities.SlotRequest{}, errsx.NewValidation(dataDate, "fecha no guardada")
	}
	startMin, err := strconv.Atoi(state.Data[dataTime])
	if err != nil {
		return entities.SlotRequest{}, errsx.NewValidation(dataTime, "hora no guardada")
	}
	size, err := strconv.Atoi(state.Data[dataPartySize])
	if err != nil {
		return entities.SlotRequest{}, errsx.NewValidation(dataPartySize, "número de personas no guardado")
	}
	zone, _ := venue.ParseZone(state.Data[dataZone])
	return entities.SlotRequest{
		Date:          date,
		StartMin:      startMin,
		EventType:     state.Data[dataEventType],
		PartySize:     size,
		PreferredZone: zone,
	}, nil
}

func (s *ConversationService) bookingRequest(state *db.ConversationState) (*entities.BookingRequest, error) {
	slot, err := s.slotRequest(state)
	if err != nil {
		return nil, err
	}
	return &entities.BookingRequest{
		Date:          slot.Date,
		StartMin:      slot.StartMin,
		EventType:     slot.EventType,
		PartySize:     slot.PartySize,
		PreferredZone: slot.PreferredZone,
		MenuCode:      state.Data[dataMenu],
		CustomerName:  state.Data[dataName],
		Phone:         state.Phone,
	}, nil
}

func (s *ConversationService) phoneLock(phone string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[phone] = lock
	}
	return lock
}

// resetTokens unconditionally clear the session from any step.
var resetTokens = map[string]bool{
	"salir":    true,
	"reset":    true,
	"cancelar": true,
	"0":        true,
}

func isReset(input string) bool {
	return resetTokens[input]
}

func normalizeInput(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Join(strings.Fields(s), " ")
	return accentReplacer.Replace(s)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)

// parseDate accepts DD/MM/YYYY, DD/MM (next occurrence) and ISO dates.
// The result is a bare date at midnight UTC.
func parseDate(input string, now time.Time) (time.Time, error) {
	input = strings.ReplaceAll(input, "-", "/")
	if t, err := time.Parse("2006/01/02", input); err == nil {
		return t, nil
	}
	parts := strings.Split(input, "/")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, errsx.NewValidation("date", "formato no reconocido")
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, errsx.NewValidation("date", "formato no reconocido")
	}

	year := now.Year()
	if len(parts) == 3 {
		year, err1 = strconv.Atoi(parts[2])
		if err1 != nil {
			return time.Time{}, errsx.NewValidation("date", "formato no reconocido")
		}
		if year < 100 {
			year += 2000
		}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, errsx.NewValidation("date", "ese día no existe")
	}
	if len(parts) == 2 && date.Before(now.UTC().Truncate(24*time.Hour)) {
		date = date.AddDate(1, 0, 0)
	}
	return date, nil
}

// parseClock parses HH:MM into minutes of day.
func parseClock(input string) (int, error) {
	input = strings.ReplaceAll(input, ".", ":")
	t, err := time.Parse("15:04", input)
	if err != nil {
		return 0, errsx.NewValidation("time", "formato no reconocido")
	}
	return t.Hour()*60 + t.Minute(), nil
}

func eventTypeLabel(eventType string) string {
	switch eventType {
	case db.EventNormal:
		return "Mesa"
	case db.EventChildParty:
		return "Fiesta infantil"
	case db.EventSeatedGroup:
		return "Grupo sentado"
	case db.EventStandingGroup:
		return "Grupo de pie"
	case db.EventExclusiveNight:
		return "Noche exclusiva"
	}
	return eventType
}

func zoneLabel(zone venue.Zone) string {
	switch zone {
	case venue.ZoneOutside:
		return "terraza"
	case venue.ZoneInside:
		return "interior"
	}
	return string(zone)
}
