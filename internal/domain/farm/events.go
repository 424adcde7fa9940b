package farm

import "time"

const (
	EventSessionStarted = "session_started"
	EventToolUsed       = "tool_used"
	EventCropAdvanced   = "crop_advanced"
	EventPlayerMoved    = "player_moved"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

func SessionStartedEvent(g *Game, at time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventSessionStarted,
		OccurredAt: at,
		Payload: map[string]any{
			"player_x":        g.player.Position.X,
			"player_y":        g.player.Position.Y,
			"inventory_after": inventoryPayload(g.inventory.Snapshot()),
		},
	}
}

func ToolUsedEvent(out Outcome, inv map[Item]int, at time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventToolUsed,
		OccurredAt: at,
		Payload: map[string]any{
			"tool":            string(out.Tool),
			"x":               out.Target.X,
			"y":               out.Target.Y,
			"in_range":        out.InRange,
			"changed":         out.Changed,
			"reason":          string(out.Reason),
			"facing":          string(out.Facing),
			"inventory_after": inventoryPayload(inv),
		},
	}
}

func CropAdvancedEvents(advances []Advance, at time.Time) []DomainEvent {
	if len(advances) == 0 {
		return nil
	}
	out := make([]DomainEvent, 0, len(advances))
	for _, a := range advances {
		out = append(out, DomainEvent{
			Type:       EventCropAdvanced,
			OccurredAt: at,
			Payload: map[string]any{
				"x":    a.Cell.X,
				"y":    a.Cell.Y,
				"from": a.From.String(),
				"to":   a.To.String(),
			},
		})
	}
	return out
}

func PlayerMovedEvent(p PlayerView, moved bool, at time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventPlayerMoved,
		OccurredAt: at,
		Payload: map[string]any{
			"moved":  moved,
			"facing": string(p.Facing),
			"x":      p.Position.X,
			"y":      p.Position.Y,
		},
	}
}

func inventoryPayload(inv map[Item]int) map[string]any {
	out := make(map[string]any, len(inv))
	for item, n := range inv {
		out[string(item)] = n
	}
	return out
}
