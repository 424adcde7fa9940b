package farm

import "strings"

type Tool string

const (
	ToolTill    Tool = "till"
	ToolPlant   Tool = "plant"
	ToolWater   Tool = "water"
	ToolHarvest Tool = "harvest"
)

type ToolSlot struct {
	Tool   Tool   `json:"tool"`
	Name   string `json:"name"`
	Hotkey string `json:"hotkey"`
}

var toolbar = []ToolSlot{
	{Tool: ToolTill, Name: "Till", Hotkey: "1"},
	{Tool: ToolPlant, Name: "Plant", Hotkey: "2"},
	{Tool: ToolWater, Name: "Water", Hotkey: "3"},
	{Tool: ToolHarvest, Name: "Harvest", Hotkey: "4"},
}

// Toolbar lists the tools in slot order.
func Toolbar() []ToolSlot {
	out := make([]ToolSlot, len(toolbar))
	copy(out, toolbar)
	return out
}

// ParseTool accepts a tool name or its hotkey.
func ParseTool(raw string) (Tool, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, slot := range toolbar {
		if raw == string(slot.Tool) || raw == slot.Hotkey {
			return slot.Tool, true
		}
	}
	return "", false
}
