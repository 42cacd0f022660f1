package models

type Room struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Projector bool   `json:"projector"`
	Sound     bool   `json:"sound"`
}

type RoomAvailability struct {
	Room
	AvailableSlots []string `json:"available_slots"`
}
