package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"braseria/internal/db"
	"braseria/internal/entities"
	errsx "braseria/internal/errors"
)

type memoryConversationStore struct {
	states map[string]*db.ConversationState
}

func newMemoryConversationStore() *memoryConversationStore {
	return &memoryConversationStore{states: map[string]*db.ConversationState{}}
}

func (m *memoryConversationStore) Load(phone string) (*db.ConversationState, error) {
	return m.states[phone], nil
}

func (m *memoryConversationStore) Save(state *db.ConversationState) error {
	m.states[state.Phone] = state
	return nil
}

func (m *memoryConversationStore) Delete(phone string) error {
	delete(m.states, phone)
	return nil
}

type fakeBooker struct {
	decision     entities.SlotDecision
	alternatives []string
	createResp   *entities.BookingResponse
	createErr    error
	created      []*entities.BookingRequest
	cancelErr    error
	canceled     []string
	consult      *entities.DateAvailability
}

func (f *fakeBooker) CheckSlot(req entities.SlotRequest) (entities.SlotDecision, error) {
	return f.decision, nil
}

func (f *fakeBooker) FindAlternatives(req entities.SlotRequest) ([]string, error) {
	return f.alternatives, nil
}

func (f *fakeBooker) Quote(menuCode string, partySize, drinkTickets int, extras []string) (*entities.Quote, error) {
	return NewQuoteService().Calculate(menuCode, partySize, drinkTickets, extras)
}

func (f *fakeBooker) Menus() []entities.MenuOption {
	return NewQuoteService().Menus()
}

func (f *fakeBooker) Create(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}

func (f *fakeBooker) Cancel(code, phone string) error {
	f.canceled = append(f.canceled, code)
	return f.cancelErr
}

func (f *fakeBooker) ConsultDate(date time.Time) (*entities.DateAvailability, error) {
	return f.consult, nil
}

type recordingMessenger struct {
	texts   []string
	buttons []string
}

func (r *recordingMessenger) SendText(phone, message string) error {
	r.texts = append(r.texts, message)
	return nil
}

func (r *recordingMessenger) SendButtons(phone, body string, buttons []Button, header, footer string) error {
	r.buttons = append(r.buttons, body)
	return nil
}

var conversationNow = time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)

func newConversationFixture() (*ConversationService, *memoryConversationStore, *fakeBooker, *recordingMessenger) {
	store := newMemoryConversationStore()
	booker := &fakeBooker{
		decision:   entities.SlotDecision{Available: true},
		createResp: &entities.BookingResponse{Code: "5F3A9C01", Status: db.StatusConfirmed},
	}
	msgr := &recordingMessenger{}
	svc := NewConversationService(store, booker, msgr)
	svc.now = func() time.Time { return conversationNow }
	return svc, store, booker, msgr
}

func say(t *testing.T, svc *ConversationService, phone, text string) {
	t.Helper()
	require.NoError(t, svc.HandleIncomingMessage(phone, text))
}

func TestConversationWelcome(t *testing.T) {
	svc, store, _, msgr := newConversationFixture()

	say(t, svc, "+34600111222", "hola")

	state := store.states["+34600111222"]
	require.NotNil(t, state)
	assert.Equal(t, StepChooseAction, state.Step)
	require.Len(t, msgr.buttons, 1)
	assert.Contains(t, msgr.buttons[0], "La Brasería")
}

func TestConversationStaleSessionRestarts(t *testing.T) {
	svc, store, _, msgr := newConversationFixture()
	store.states["+34600111222"] = &db.ConversationState{
		Phone:     "+34600111222",
		Step:      StepAskDate,
		Data:      map[string]string{dataEventType: db.EventNormal},
		UpdatedAt: conversationNow.Add(-31 * time.Minute),
	}

	say(t, svc, "+34600111222", "24/12/2030")

	// The stale answer is discarded and a fresh welcome goes out.
	state := store.states["+34600111222"]
	require.NotNil(t, state)
	assert.Equal(t, StepChooseAction, state.Step)
	assert.Empty(t, state.Data)
	require.Len(t, msgr.buttons, 1)
}

func TestConversationRecentSessionSurvives(t *testing.T) {
	svc, store, _, _ := newConversationFixture()
	store.states["+34600111222"] = &db.ConversationState{
		Phone:     "+34600111222",
		Step:      StepAskDate,
		Data:      map[string]string{dataEventType: db.EventNormal},
		UpdatedAt: conversationNow.Add(-29 * time.Minute),
	}

	say(t, svc, "+34600111222", "24/12/2030")

	assert.Equal(t, StepAskTime, store.states["+34600111222"].Step)
}

func TestConversationReset(t *testing.T) {
	svc, store, _, msgr := newConversationFixture()
	for _, token := range []string{"salir", "RESET", "Cancelar", "0"} {
		store.states["+34600111222"] = &db.ConversationState{
			Phone:     "+34600111222",
			Step:      StepAskPartySize,
			Data:      map[string]string{dataEventType: db.EventNormal},
			UpdatedAt: conversationNow,
		}

		say(t, svc, "+34600111222", token)

		assert.Nil(t, store.states["+34600111222"], "token %q must clear the session", token)
	}
	require.NotEmpty(t, msgr.texts)
	assert.Contains(t, msgr.texts[len(msgr.texts)-1], "reiniciado")
}

func TestConversationUnrecognizedInputDoesNotAdvance(t *testing.T) {
	svc, store, _, msgr := newConversationFixture()
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "quiero una pizza")

	assert.Equal(t, StepChooseAction, store.states[phone].Step)
	// The action buttons were sent twice: welcome plus the re-prompt.
	assert.Len(t, msgr.buttons, 2)
}

func TestConversationNormalHappyPath(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1") // reservar
	say(t, svc, phone, "1") // mesa
	say(t, svc, phone, "24/12/2030")
	say(t, svc, phone, "21:00")
	say(t, svc, phone, "4")
	say(t, svc, phone, "3") // me da igual
	say(t, svc, phone, "Ana García")
	say(t, svc, phone, "1") // confirmar

	require.Len(t, booker.created, 1)
	req := booker.created[0]
	assert.Equal(t, db.EventNormal, req.EventType)
	assert.Equal(t, 4, req.PartySize)
	assert.Equal(t, "2030-12-24", req.Date.Format("2006-01-02"))
	assert.Equal(t, 21*60, req.StartMin)
	assert.Equal(t, "Ana García", req.CustomerName)
	assert.Equal(t, phone, req.Phone)

	assert.Nil(t, store.states[phone], "a finished booking leaves no session behind")
	last := msgr.texts[len(msgr.texts)-1]
	assert.Contains(t, last, "5F3A9C01")
}

func TestConversationEventFlowQuotesDeposit(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	deadline := time.Date(2030, time.January, 20, 0, 0, 0, 0, time.UTC)
	booker.createResp = &entities.BookingResponse{
		Code:            "AB12CD34",
		Status:          db.StatusHoldBlocked,
		Total:           290,
		Deposit:         116,
		PaymentURL:      "https://checkout.stripe.com/pay/cs_test",
		PaymentDeadline: &deadline,
	}
	phone := "+34600333444"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1") // reservar
	say(t, svc, phone, "2") // evento
	say(t, svc, phone, "2") // grupo sentado
	say(t, svc, phone, "24/12/2030")
	say(t, svc, phone, "21:00")
	say(t, svc, phone, "10")
	say(t, svc, phone, "3") // menu_grupo_29
	say(t, svc, phone, "Luis")

	// The summary quotes total and deposit before asking to confirm.
	summary := msgr.buttons[len(msgr.buttons)-1]
	assert.Contains(t, summary, "290.00")
	assert.Contains(t, summary, "116.00")

	say(t, svc, phone, "1") // confirmar

	require.Len(t, booker.created, 1)
	assert.Equal(t, db.EventSeatedGroup, booker.created[0].EventType)
	assert.Equal(t, "menu_grupo_29", booker.created[0].MenuCode)

	assert.Nil(t, store.states[phone])
	last := msgr.texts[len(msgr.texts)-1]
	assert.Contains(t, last, "AB12CD34")
	assert.Contains(t, last, "116.00")
	assert.Contains(t, last, "20/01/2030")
}

func TestConversationDecline(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1")
	say(t, svc, phone, "1")
	say(t, svc, phone, "24/12/2030")
	say(t, svc, phone, "21:00")
	say(t, svc, phone, "4")
	say(t, svc, phone, "3")
	say(t, svc, phone, "Ana")
	say(t, svc, phone, "2") // no, gracias

	assert.Empty(t, booker.created)
	assert.Nil(t, store.states[phone])
	assert.Contains(t, msgr.texts[len(msgr.texts)-1], "no he guardado nada")
}

func TestConversationRejectedSlotOffersAlternatives(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	booker.decision = entities.SlotDecision{
		Available: false,
		Reason:    "No hay mesa libre para 4 personas",
	}
	booker.alternatives = []string{"20:30", "21:00"}
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1")
	say(t, svc, phone, "1")
	say(t, svc, phone, "24/12/2030")
	say(t, svc, phone, "19:00")
	say(t, svc, phone, "4")
	say(t, svc, phone, "3")

	// Back to asking for a time instead of advancing to the name.
	assert.Equal(t, StepAskTime, store.states[phone].Step)
	last := msgr.texts[len(msgr.texts)-1]
	assert.Contains(t, last, "No hay mesa libre")
	assert.Contains(t, last, "20:30, 21:00")

	// Answering with a new time continues the flow.
	booker.decision = entities.SlotDecision{Available: true}
	say(t, svc, phone, "20:30")
	say(t, svc, phone, "4")
	say(t, svc, phone, "3")
	assert.Equal(t, StepAskName, store.states[phone].Step)
}

func TestConversationCreateFailureClearsSession(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	booker.createErr = errsx.NewConflict("la franja se ha ocupado mientras se confirmaba la reserva")
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1")
	say(t, svc, phone, "1")
	say(t, svc, phone, "24/12/2030")
	say(t, svc, phone, "21:00")
	say(t, svc, phone, "4")
	say(t, svc, phone, "3")
	say(t, svc, phone, "Ana")
	say(t, svc, phone, "1")

	assert.Nil(t, store.states[phone], "a failed booking must not leave a stuck session")
	assert.Contains(t, msgr.texts[len(msgr.texts)-1], "se acaba de ocupar")
}

func TestConversationConsultDate(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	booker.consult = &entities.DateAvailability{
		Date:               time.Date(2030, time.December, 24, 0, 0, 0, 0, time.UTC),
		FreeTablesAtPrime:  7,
		EventSeatsRemained: 60,
	}
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "2")
	say(t, svc, phone, "24/12/2030")

	assert.Nil(t, store.states[phone])
	last := msgr.texts[len(msgr.texts)-1]
	assert.Contains(t, last, "7 mesas libres")
	assert.Contains(t, last, "60 plazas")
}

func TestConversationCancelByCode(t *testing.T) {
	svc, store, booker, msgr := newConversationFixture()
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "3")
	say(t, svc, phone, " 5f3a9c01 ")

	require.Len(t, booker.canceled, 1)
	assert.Equal(t, "5F3A9C01", booker.canceled[0])
	assert.Nil(t, store.states[phone])
	assert.Contains(t, msgr.texts[len(msgr.texts)-1], "anulada")
}

func TestConversationPastDateRejected(t *testing.T) {
	svc, store, _, msgr := newConversationFixture()
	phone := "+34600111222"

	say(t, svc, phone, "hola")
	say(t, svc, phone, "1")
	say(t, svc, phone, "1")
	say(t, svc, phone, "01/01/2020")

	assert.Equal(t, StepAskDate, store.states[phone].Step)
	assert.Contains(t, msgr.texts[len(msgr.texts)-1], "ya ha pasado")
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "si", normalizeInput("  Sí "))
	assert.Equal(t, "grupo de pie", normalizeInput("Grupo   de  Pie"))
	assert.Equal(t, "anular reserva", normalizeInput("ANULAR RESERVA"))
}

func TestParseDate(t *testing.T) {
	now := time.Date(2030, time.June, 10, 12, 0, 0, 0, time.UTC)

	t.Run("full date", func(t *testing.T) {
		d, err := parseDate("24/12/2030", now)
		require.NoError(t, err)
		assert.Equal(t, "2030-12-24", d.Format("2006-01-02"))
	})

	t.Run("iso date", func(t *testing.T) {
		d, err := parseDate("2030-12-24", now)
		require.NoError(t, err)
		assert.Equal(t, "2030-12-24", d.Format("2006-01-02"))
	})

	t.Run("day and month roll to next occurrence", func(t *testing.T) {
		d, err := parseDate("01/02", now) // February already past in June
		require.NoError(t, err)
		assert.Equal(t, "2031-02-01", d.Format("2006-01-02"))

		d, err = parseDate("24/12", now)
		require.NoError(t, err)
		assert.Equal(t, "2030-12-24", d.Format("2006-01-02"))
	})

	t.Run("impossible day", func(t *testing.T) {
		_, err := parseDate("31/02/2030", now)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseDate("mañana", now)
		assert.Error(t, err)
	})
}

func TestParseClock(t *testing.T) {
	m, err := parseClock("21:00")
	require.NoError(t, err)
	assert.Equal(t, 21*60, m)

	m, err = parseClock("20.30")
	require.NoError(t, err)
	assert.Equal(t, 20*60+30, m)

	_, err = parseClock("nueve")
	assert.Error(t, err)
}
