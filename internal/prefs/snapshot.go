// Package prefs keeps a local JSON copy of a user's state next to the
// other per-user files in the config directory.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jask/fincontrol/internal/domain"
)

const snapshotVersion = 1

type snapshot struct {
	Version int          `json:"version"`
	UserID  string       `json:"user_id"`
	SavedAt time.Time    `json:"saved_at"`
	State   domain.State `json:"state"`
}

// StatePath returns the snapshot file of userID, creating its directory.
// User ids that are not a plain file name component are rejected.
func StatePath(userID string) (string, error) {
	if userID == "" || userID == "." || userID == ".." || strings.ContainsAny(userID, `/\`) {
		return "", fmt.Errorf("invalid user id %q", userID)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "fincontrol")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "state_"+userID+".json"), nil
}

// SaveState writes the snapshot atomically.
func SaveState(userID string, st domain.State) error {
	path, err := StatePath(userID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot{
		Version: snapshotVersion,
		UserID:  userID,
		SavedAt: time.Now().UTC().Truncate(time.Second),
		State:   st,
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadState reads the snapshot of userID. Without a file it returns a fresh
// state holding the default categories. A snapshot whose entities fail
// validation is refused.
func LoadState(userID string) (domain.State, error) {
	path, err := StatePath(userID)
	if err != nil {
		return domain.State{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewState(), nil
		}
		return domain.State{}, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.State{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if snap.Version != snapshotVersion {
		return domain.State{}, fmt.Errorf("snapshot %s: unsupported version %d", path, snap.Version)
	}
	if snap.UserID != userID {
		return domain.State{}, fmt.Errorf("snapshot %s belongs to %q", path, snap.UserID)
	}
	if err := snap.State.Validate(); err != nil {
		return domain.State{}, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap.State, nil
}
