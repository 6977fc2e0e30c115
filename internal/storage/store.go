// ABOUTME: Key-value persistence for tracker state under fixed keys.
// ABOUTME: JSON blobs; corrupt or missing data degrades to safe defaults.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/fbwogus456-hub/levelup/internal/scoring"
)

// Fixed storage keys. The version suffixes are part of the on-disk
// contract and keep old blobs from colliding with newer shapes.
const (
	StateKey   = "levelup_state_v2"
	LogsKey    = "levelup_logs_v2"
	ProfileKey = "levelup_profile_v1"
	UIKey      = "levelup_ui_v2"
	HistoryKey = "levelup_history_v1"
	ActionKey  = "levelup_action_v1"
)

// AllKeys lists every blob the store manages, for export and reset.
var AllKeys = []string{StateKey, LogsKey, ProfileKey, UIKey, HistoryKey, ActionKey}

// blobKV is the raw backend: Get returns (nil, nil) for a missing key.
type blobKV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Store wraps a backend with typed accessors for the tracker blobs.
type Store struct {
	kv blobKV
}

// NewStore wraps an opened backend.
func NewStore(kv blobKV) *Store {
	return &Store{kv: kv}
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "levelup")
}

// DefaultState is what a fresh or unreadable state blob decodes to.
func DefaultState() *models.State {
	return &models.State{
		Score: 300,
		Level: scoring.DefaultLevels.LevelFromScore(300),
	}
}

// getJSON decodes the blob under key into out. Missing keys and malformed
// JSON both leave out untouched and report ok=false; storage corruption is
// recovered, never propagated.
func (s *Store) getJSON(key string, out any) (ok bool, err error) {
	data, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// State loads the tracker state, falling back to the default.
func (s *Store) State() (*models.State, error) {
	st := &models.State{}
	ok, err := s.getJSON(StateKey, st)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultState(), nil
	}
	return st, nil
}

func (s *Store) SetState(st *models.State) error {
	return s.setJSON(StateKey, st)
}

// Logs loads the activity log, empty when missing or unreadable.
func (s *Store) Logs() ([]*models.LogEntry, error) {
	var logs []*models.LogEntry
	if _, err := s.getJSON(LogsKey, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Store) SetLogs(logs []*models.LogEntry) error {
	if logs == nil {
		logs = []*models.LogEntry{}
	}
	return s.setJSON(LogsKey, logs)
}

// Profile returns nil when no profile has been saved yet.
func (s *Store) Profile() (*models.Profile, error) {
	p := &models.Profile{}
	ok, err := s.getJSON(ProfileKey, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (s *Store) SetProfile(p *models.Profile) error {
	return s.setJSON(ProfileKey, p)
}

func (s *Store) UI() (*models.UIState, error) {
	ui := &models.UIState{}
	if _, err := s.getJSON(UIKey, ui); err != nil {
		return nil, err
	}
	return ui, nil
}

func (s *Store) SetUI(ui *models.UIState) error {
	return s.setJSON(UIKey, ui)
}

// History loads the focus history, empty when missing or unreadable.
func (s *Store) History() ([]*models.FocusEntry, error) {
	var entries []*models.FocusEntry
	if _, err := s.getJSON(HistoryKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) SetHistory(entries []*models.FocusEntry) error {
	if entries == nil {
		entries = []*models.FocusEntry{}
	}
	return s.setJSON(HistoryKey, entries)
}

func (s *Store) Action() (*models.ActionState, error) {
	a := &models.ActionState{}
	if _, err := s.getJSON(ActionKey, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) SetAction(a *models.ActionState) error {
	return s.setJSON(ActionKey, a)
}

// Reset deletes every managed key.
func (s *Store) Reset() error {
	for _, key := range AllKeys {
		if err := s.kv.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

// Dump returns the raw blob under every present key, for export.
func (s *Store) Dump() (map[string]json.RawMessage, error) {
	out := map[string]json.RawMessage{}
	for _, key := range AllKeys {
		data, err := s.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		if len(data) == 0 {
			continue
		}
		if !json.Valid(data) {
			continue
		}
		out[key] = json.RawMessage(data)
	}
	return out, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
