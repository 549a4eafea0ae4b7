package router

import (
	"cinema_booking/constants"
	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/profile/:userId", middleware.Protected(), validate.GetById("userId"), handler.GetProfile)
	auth.Put("/profile/:userId", middleware.Protected(), validate.GetById("userId"), validate.UpdateProfile(), handler.UpdateProfile)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	customer := api.Group("/customer", logger.New())

	// Công khai: duyệt phim, suất chiếu, sơ đồ ghế, đồ ăn, rạp, đánh giá
	customer.Get("/movies", handler.GetMovies)
	customer.Get("/trending", handler.GetTrendingMovies)
	customer.Get("/movie/:movieId", validate.GetById("movieId"), handler.GetMovieDetail)
	customer.Get("/showtimes/:movieId", validate.GetById("movieId"), handler.GetShowtimesByMovie)
	customer.Get("/seats/:showtimeId", validate.GetById("showtimeId"), handler.GetSeats)
	customer.Get("/foods", handler.GetFoods)
	customer.Get("/cinemas", handler.GetCinemas)
	customer.Get("/reviews/:movieId", validate.GetById("movieId"), handler.GetReviews)
	customer.Post("/check-promo", validate.CheckPromo(), handler.CheckPromo)
	customer.Get("/available-promos", middleware.OptionalJWT(), handler.GetAvailablePromos)

	// Cần đăng nhập: đặt vé và quản lý đơn
	customer.Post("/create-booking", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	customer.Post("/cancel-booking", middleware.Protected(), validate.CancelBooking(), handler.CancelBooking)
	customer.Post("/cancel-ticket", middleware.Protected(), validate.CancelTicket(), handler.CancelTicket)
	customer.Post("/confirm-qr-payment", middleware.Protected(), validate.ConfirmPayment(), handler.ConfirmQRPayment)
	customer.Get("/check-booking-status/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.CheckBookingStatus)
	customer.Post("/booking/:bookingId/apply-promo", middleware.Protected(), validate.GetById("bookingId"), validate.ApplyPromo(), handler.ApplyPromoToBooking)
	customer.Get("/booking/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingDetail)
	customer.Get("/bookings/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetBookingsByCustomer)
	customer.Get("/invoice/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetInvoice)
	customer.Get("/my-tickets/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetMyTickets)
	customer.Get("/tickets/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetTicketsInBooking)
	customer.Get("/ticket-qr/:ticketId", middleware.Protected(), validate.GetById("ticketId"), handler.GetTicketQR)
	customer.Post("/create-review", middleware.Protected(), validate.CreateReview(), handler.CreateReview)

	// Khu vực nhân viên
	staff := api.Group("/staff", logger.New(), middleware.Protected(),
		middleware.RequireRoles(constants.ROLE_STAFF, constants.ROLE_ADMIN))
	staff.Get("/dashboard/:staffId", validate.GetById("staffId"), handler.GetDashboard)
	staff.Get("/showtimes", handler.GetShowtimesForBooking)
	staff.Get("/seats/:showtimeId", validate.GetById("showtimeId"), handler.GetSeatsStaff)
	staff.Get("/bookings", handler.GetBookings)
	staff.Get("/booking/:bookingId", validate.GetById("bookingId"), handler.GetBookingDetail)
	staff.Get("/verified-tickets", handler.GetVerifiedTickets)
	staff.Get("/ticket-statistics", handler.GetTicketStatistics)
	staff.Get("/revenue-by-date", handler.GetRevenueByDate)
	staff.Post("/create-booking", validate.CreateOfflineBooking(), handler.CreateOfflineBooking)
	staff.Post("/verify-ticket", validate.VerifyTicket(), handler.VerifyTicket)
	staff.Post("/verify-ticket-web", validate.VerifyTicket(), handler.VerifyTicketWeb)

	// Chỉ Admin
	admin := api.Group("/admin", logger.New(), middleware.Protected(),
		middleware.RequireRoles(constants.ROLE_ADMIN))
	admin.Put("/booking/:bookingId/status", validate.GetById("bookingId"), validate.UpdateBookingStatus(), handler.UpdateBookingStatus)
	admin.Post("/showtimes", validate.CreateShowtime(), handler.CreateShowtime)
}
