package dto

import (
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type DashboardSummaryResponse struct {
	TotalRooms       int     `json:"total_rooms"`
	AvailableRooms   int     `json:"available_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	MaintenanceRooms int     `json:"maintenance_rooms"`
	ArrivalsToday    int     `json:"arrivals_today"`
	DeparturesToday  int     `json:"departures_today"`
	InHouseGuests    int     `json:"in_house_guests"`
	RevenueToday     float64 `json:"revenue_today"`
}

func (r *DashboardSummaryResponse) FromModel(mod model.DashboardSummary) {
	r.TotalRooms = mod.TotalRooms
	r.AvailableRooms = mod.AvailableRooms
	r.OccupiedRooms = mod.OccupiedRooms
	r.MaintenanceRooms = mod.MaintenanceRooms
	r.ArrivalsToday = mod.ArrivalsToday
	r.DeparturesToday = mod.DeparturesToday
	r.InHouseGuests = mod.InHouseGuests
	r.RevenueToday = mod.RevenueToday
}

type RevenueRowResponse struct {
	Day      string  `json:"day"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RevenueReportResponse struct {
	From         string               `json:"from"`
	To           string               `json:"to"`
	TotalRevenue float64              `json:"total_revenue"`
	Days         []RevenueRowResponse `json:"days"`
}

func (r *RevenueReportResponse) FromModels(from, to string, rows []model.RevenueRow) {
	r.From = from
	r.To = to

	r.Days = make([]RevenueRowResponse, len(rows))
	for i, row := range rows {
		r.Days[i] = RevenueRowResponse{
			Day:      timezone.Format(row.Day, constant.DateOnlyFormat),
			Bookings: row.Bookings,
			Revenue:  row.Revenue,
		}
		r.TotalRevenue += row.Revenue
	}
}
