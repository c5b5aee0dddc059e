package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gfranca/mestre/ent"
	"github.com/gfranca/mestre/ent/examrecord"
	"github.com/gfranca/mestre/ent/workspacestate"
	"github.com/gfranca/mestre/internal/exam"
	"github.com/gfranca/mestre/internal/workspace"
)

// contextSlot is the fixed key of the singleton workspace-context row.
const contextSlot = "active"

// WorkspaceRepo implements workspace.Persister with two independent
// slices: one row per saved exam, and a singleton context row. Each save
// is a full-snapshot overwrite; there is a single writer (the UI event
// loop), so last write wins by construction.
type WorkspaceRepo struct {
	client *ent.Client
}

var _ workspace.Persister = (*WorkspaceRepo)(nil)

// SaveRecords overwrites the saved-exam collection in one transaction.
func (r *WorkspaceRepo) SaveRecords(ctx context.Context, records []exam.Record) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ExamRecord.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear exam records: %w", err)
	}

	for i, rec := range records {
		dataMap, err := toMap(rec)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal exam record %q: %w", rec.Title, err)
		}
		_, err = tx.ExamRecord.Create().
			SetTitle(rec.Title).
			SetPosition(i).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save exam record %q: %w", rec.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit exam records: %w", err)
	}
	return nil
}

// LoadRecords restores the saved-exam collection in insertion order.
func (r *WorkspaceRepo) LoadRecords(ctx context.Context) ([]exam.Record, error) {
	rows, err := r.client.ExamRecord.Query().
		Order(ent.Asc(examrecord.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam records: %w", err)
	}

	var records []exam.Record
	for _, row := range rows {
		var rec exam.Record
		if err := fromMap(row.Data, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal exam record %q: %w", row.Title, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveContext overwrites the singleton context row.
func (r *WorkspaceRepo) SaveContext(ctx context.Context, wc workspace.Context) error {
	dataMap, err := toMap(wc)
	if err != nil {
		return fmt.Errorf("marshal workspace context: %w", err)
	}

	n, err := r.client.WorkspaceState.Update().
		Where(workspacestate.Slot(contextSlot)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update workspace context: %w", err)
	}
	if n == 0 {
		_, err = r.client.WorkspaceState.Create().
			SetSlot(contextSlot).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create workspace context: %w", err)
		}
	}
	return nil
}

// LoadContext restores the singleton context row. The boolean reports
// whether a stored context existed.
func (r *WorkspaceRepo) LoadContext(ctx context.Context) (workspace.Context, bool, error) {
	row, err := r.client.WorkspaceState.Query().
		Where(workspacestate.Slot(contextSlot)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return workspace.Context{}, false, nil
		}
		return workspace.Context{}, false, fmt.Errorf("query workspace context: %w", err)
	}

	var wc workspace.Context
	if err := fromMap(row.Data, &wc); err != nil {
		return workspace.Context{}, false, fmt.Errorf("unmarshal workspace context: %w", err)
	}
	return wc, true, nil
}

// toMap converts a value to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap converts an ent JSON column back into a typed value.
func fromMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
