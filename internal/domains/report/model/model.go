package model

import "time"

// DashboardSummary is the front-desk snapshot for a single business day.
type DashboardSummary struct {
	TotalRooms       int     `db:"total_rooms"`
	AvailableRooms   int     `db:"available_rooms"`
	OccupiedRooms    int     `db:"occupied_rooms"`
	MaintenanceRooms int     `db:"maintenance_rooms"`
	ArrivalsToday    int     `db:"arrivals_today"`
	DeparturesToday  int     `db:"departures_today"`
	InHouseGuests    int     `db:"in_house_guests"`
	RevenueToday     float64 `db:"revenue_today"`
}

// RevenueRow is one day of the revenue breakdown.
type RevenueRow struct {
	Day      time.Time `db:"day"`
	Bookings int       `db:"bookings"`
	Revenue  float64   `db:"revenue"`
}
