// Package fixtures holds the standard room set loaded at setup.
package fixtures

import "roomBooker/internal/models"

func Rooms() []models.Room {
	return []models.Room{
		{Name: "Conference Room A", Capacity: 10, Projector: true, Sound: true},
		{Name: "Conference Room B", Capacity: 20, Projector: false, Sound: true},
		{Name: "Meeting Room 1", Capacity: 5, Projector: false, Sound: false},
		{Name: "Meeting Room 2", Capacity: 8, Projector: true, Sound: false},
		{Name: "Board Room", Capacity: 15, Projector: true, Sound: true},
		{Name: "Training Room", Capacity: 25, Projector: true, Sound: true},
		{Name: "Lounge", Capacity: 7, Projector: false, Sound: true},
		{Name: "Executive Suite", Capacity: 4, Projector: true, Sound: false},
		{Name: "Workshop Room", Capacity: 12, Projector: false, Sound: true},
		{Name: "Interview Room", Capacity: 3, Projector: false, Sound: false},
	}
}
