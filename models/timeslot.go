package models

// TimeSlot is one fixed time-of-day interval on the ground. The same set of
// slots applies to every calendar date; a slot's identity carries no date.
type TimeSlot struct {
	ID    string `bson:"id" json:"id"`
	Start int    `bson:"start" json:"start"` // minutes from midnight (e.g., 960 for 16:00)
	End   int    `bson:"end" json:"end"`     // minutes from midnight
}

// SlotAvailability is a catalog slot annotated for a specific date.
type SlotAvailability struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`
	IsTaken   bool   `json:"is_taken"`
}

// Availability is the full annotated catalog for one date.
type Availability struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}
