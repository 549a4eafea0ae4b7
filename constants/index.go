package constants

// Vai trò tài khoản
const (
	ROLE_ADMIN    = "Admin"
	ROLE_STAFF    = "Staff"
	ROLE_CUSTOMER = "Customer"
)

// Trạng thái đơn đặt vé
const (
	BOOKING_UNPAID    = "Chưa thanh toán"
	BOOKING_PENDING   = "Chờ Duyệt"
	BOOKING_PAID      = "Đã Thanh toán"
	BOOKING_CANCELLED = "Đã Hủy"
)

// Trạng thái vé
const (
	TICKET_UNUSED = "Chưa sử dụng"
	TICKET_USED   = "Đã sử dụng"
)

// Trạng thái khuyến mãi
const (
	PROMO_ACTIVE   = "Hoạt động"
	PROMO_INACTIVE = "Ngừng hoạt động"
)

// Trạng thái phim
const (
	MOVIE_NOW_SHOWING = "Đang chiếu"
	MOVIE_COMING_SOON = "Sắp chiếu"
	MOVIE_STOPPED     = "Ngừng chiếu"
)

// Trạng thái ghế trong sơ đồ phòng
const (
	SEAT_AISLE  = 0
	SEAT_USABLE = 2
)

// Thông báo lỗi dùng chung
const (
	ERROR_INPUT        = "Dữ liệu đầu vào không hợp lệ"
	ERROR_UNAUTHORIZED = "Bạn cần đăng nhập để thực hiện thao tác này"
	ERROR_FORBIDDEN    = "Bạn không có quyền thực hiện thao tác này"
	ERROR_NOT_FOUND    = "Không tìm thấy dữ liệu"
	ERROR_SERVER       = "Có lỗi xảy ra, vui lòng thử lại sau"
)
