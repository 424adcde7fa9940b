package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"islandfarm/internal/adapter/repo/gorm/model"
	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, sessionID string, events []farm.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.FarmEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.FarmEvent{
			SessionID:  sessionID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    string(b),
		})
	}
	return journalDB(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

func (r EventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]farm.DomainEvent, error) {
	rows := []model.FarmEvent{}
	query := journalDB(ctx, r.db).WithContext(ctx).
		Where(&model.FarmEvent{SessionID: sessionID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]farm.DomainEvent, len(rows))
	for i, row := range rows {
		var payload map[string]any
		if row.Payload != "" {
			_ = json.Unmarshal([]byte(row.Payload), &payload)
		}
		out[len(rows)-1-i] = farm.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		}
	}
	return out, nil
}
