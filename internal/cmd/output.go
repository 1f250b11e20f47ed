package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh"

	"tessera/internal/domain"
	"tessera/internal/logging"
	"tessera/internal/ports"
)

const timeLayout = "2006-01-02 15:04:05"

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printJSONLine(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

// resolveSession finds a session by ID, then by unique name
func resolveSession(ctx context.Context, store ports.SessionStore, ref string) (*domain.Session, error) {
	session, err := store.GetSession(ctx, ref)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sessions, err := store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	var match *domain.Session
	for i := range sessions {
		if sessions[i].Name != ref {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("session name %q is ambiguous, use the ID: %w", ref, domain.ErrConflict)
		}
		match = &sessions[i]
	}
	if match == nil {
		return nil, fmt.Errorf("session %q: %w", ref, domain.ErrNotFound)
	}
	return match, nil
}

// confirm asks a yes/no question on the terminal
func confirm(title, description, affirmative string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative(affirmative).
				Negative("Cancel").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		logging.Logger.Info("User cancelled", "prompt", title)
		fmt.Println("Cancelled")
	}
	return ok, nil
}

// blobFromFlag wraps a caller-supplied payload
func blobFromFlag(data string, version int) domain.Blob {
	if data == "" {
		return domain.Blob{}
	}
	return domain.NewBlob(version, []byte(data))
}
