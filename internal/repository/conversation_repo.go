package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"braseria/internal/db"
)

type ConversationRepository struct {
	DB *sql.DB
}

func NewConversationRepository(database *sql.DB) *ConversationRepository {
	return &ConversationRepository{DB: database}
}

// Load returns nil without error when no session exists: absence is a
// first-class outcome for the conversation machine, not a failure.
func (r *ConversationRepository) Load(phone string) (*db.ConversationState, error) {
	var state db.ConversationState
	var raw []byte
	err := r.DB.QueryRow(
		`SELECT phone, step, data, updated_at FROM conversation_states WHERE phone = $1`,
		phone,
	).Scan(&state.Phone, &state.Step, &raw, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading conversation state: %w", err)
	}

	state.Data = map[string]string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &state.Data); err != nil {
			return nil, fmt.Errorf("error decoding conversation data for %s: %w", phone, err)
		}
	}
	return &state, nil
}

func (r *ConversationRepository) Save(state *db.ConversationState) error {
	raw, err := json.Marshal(state.Data)
	if err != nil {
		return fmt.Errorf("error encoding conversation data: %w", err)
	}
	_, err = r.DB.Exec(`
		INSERT INTO conversation_states (phone, step, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO UPDATE
		SET step = EXCLUDED.step, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		state.Phone, state.Step, raw, state.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving conversation state: %w", err)
	}
	return nil
}

func (r *ConversationRepository) Delete(phone string) error {
	_, err := r.DB.Exec(`DELETE FROM conversation_states WHERE phone = $1`, phone)
	if err != nil {
		return fmt.Errorf("error deleting conversation state: %w", err)
	}
	return nil
}
