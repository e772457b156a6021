package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/snapshot"
	"github.com/abhisek/lingua/internal/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, rec progress.Record) error {
	dataMap, err := recordToMap(rec)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *progressRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	rec, err := mapToRecord(s.Data)
	if err != nil {
		// Corrupt snapshot data is treated as absent: the caller falls
		// back to a default record rather than failing startup.
		return nil, nil
	}
	return &Snapshot{ID: s.ID, Timestamp: s.Timestamp, Record: rec}, nil
}

func (r *progressRepo) Prune(ctx context.Context, keep int) error {
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func recordToMap(rec progress.Record) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToRecord(m map[string]any) (progress.Record, error) {
	var rec progress.Record
	b, err := json.Marshal(m)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(b, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
