package model

type DashboardResponse struct {
	StaffName        string  `json:"staffName"`
	CinemaName       string  `json:"cinemaName"`
	TodayShowtimes   int64   `json:"todayShowtimes"`
	TodayBookings    int64   `json:"todayBookings"`
	TodayTicketsSold int64   `json:"todayTicketsSold"`
	TodayRevenue     float64 `json:"todayRevenue"`
	PendingBookings  int64   `json:"pendingBookings"`
}

type TicketStatisticsResponse struct {
	TotalTickets  int64 `json:"totalTickets"`
	UsedTickets   int64 `json:"usedTickets"`
	UnusedTickets int64 `json:"unusedTickets"`
	VerifiedToday int64 `json:"verifiedToday"`
}

type RevenueByDateInput struct {
	StartDate string `query:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate   string `query:"endDate" validate:"required"`
}

type RevenueRow struct {
	Date         string  `json:"date"`
	Bookings     int64   `json:"bookings"`
	TicketsSold  int64   `json:"ticketsSold"`
	FoodRevenue  float64 `json:"foodRevenue"`
	TotalRevenue float64 `json:"totalRevenue"`
}
