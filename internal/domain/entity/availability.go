package entity

// SlotStatus tags a generated slot on the availability calendar. Slots are
// derived on every query and never persisted.
type SlotStatus string

const (
	SlotStatusPast         SlotStatus = "past"
	SlotStatusOnPermission SlotStatus = "on_permission"
	SlotStatusOccupied     SlotStatus = "occupied"
	SlotStatusAvailable    SlotStatus = "available"
)

// Slot is a single bookable (date, time) unit for one practitioner.
type Slot struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}
