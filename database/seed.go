package database

import (
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}

	staffs := []model.Staff{
		{Name: "Quản trị viên", Email: "admin@cinema.vn", Password: HashPassword, Role: constants.ROLE_ADMIN},
	}
	for _, staff := range staffs {
		if err := db.Where(model.Staff{Email: staff.Email}).FirstOrCreate(&staff).Error; err != nil {
			log.Println("failed to seed data for staff:", staff.Email, "error:", err)
		}
	}

	seatTypes := []model.SeatType{
		{Name: "NORMAL", SurchargePct: 0},
		{Name: "VIP", SurchargePct: 20},
		{Name: "COUPLE", SurchargePct: 30},
	}
	for _, st := range seatTypes {
		if err := db.Where(model.SeatType{Name: st.Name}).FirstOrCreate(&st).Error; err != nil {
			log.Println("failed to seed data for seat type:", st.Name, "error:", err)
		}
	}

	dayTypes := []model.DayType{
		{Name: "Ngày thường", SurchargePct: 0},
		{Name: "Cuối tuần", SurchargePct: 10},
		{Name: "Ngày lễ", SurchargePct: 20},
	}
	for _, dt := range dayTypes {
		if err := db.Where(model.DayType{Name: dt.Name}).FirstOrCreate(&dt).Error; err != nil {
			log.Println("failed to seed data for day type:", dt.Name, "error:", err)
		}
	}

	timeSlots := []model.TimeSlot{
		{StartTime: "09:00"},
		{StartTime: "12:00"},
		{StartTime: "15:00"},
		{StartTime: "18:30"},
		{StartTime: "20:45"},
	}
	for _, ts := range timeSlots {
		if err := db.Where(model.TimeSlot{StartTime: ts.StartTime}).FirstOrCreate(&ts).Error; err != nil {
			log.Println("failed to seed data for time slot:", ts.StartTime, "error:", err)
		}
	}

	genres := []model.Genre{
		{Name: "Hành động"},
		{Name: "Tình cảm"},
		{Name: "Kinh dị"},
		{Name: "Hoạt hình"},
		{Name: "Hài"},
	}
	for _, g := range genres {
		if err := db.Where(model.Genre{Name: g.Name}).FirstOrCreate(&g).Error; err != nil {
			log.Println("failed to seed data for genre:", g.Name, "error:", err)
		}
	}

	movies := []model.Movie{
		{Title: "Mai", Duration: 131, Status: constants.MOVIE_NOW_SHOWING, ReleaseDate: parseDate("2024-02-10"), Director: "Trấn Thành"},
		{Title: "Lật Mặt 7", Duration: 138, Status: constants.MOVIE_NOW_SHOWING, ReleaseDate: parseDate("2024-04-26"), Director: "Lý Hải"},
	}
	for _, m := range movies {
		m.Slug = slug.Make(m.Title)
		if err := db.Where(model.Movie{Slug: m.Slug}).FirstOrCreate(&m).Error; err != nil {
			log.Println("failed to seed data for movie:", m.Title, "error:", err)
		}
	}

	cinemas := []model.Cinema{
		{Name: "Cinema Quận 1", Address: "123 Nguyễn Huệ, Quận 1, TP.HCM"},
		{Name: "Cinema Hà Nội", Address: "45 Tràng Tiền, Hoàn Kiếm, Hà Nội"},
	}
	for _, cn := range cinemas {
		if err := db.Where(model.Cinema{Name: cn.Name}).FirstOrCreate(&cn).Error; err != nil {
			log.Println("failed to seed data for cinema:", cn.Name, "error:", err)
		}
	}

	foods := []model.FoodItem{
		{Name: "Bắp rang bơ", Price: 45000, Category: "Bắp"},
		{Name: "Nước ngọt lớn", Price: 35000, Category: "Nước"},
		{Name: "Combo bắp nước", Price: 89000, Category: "Combo"},
	}
	for _, f := range foods {
		if err := db.Where(model.FoodItem{Name: f.Name}).FirstOrCreate(&f).Error; err != nil {
			log.Println("failed to seed data for food:", f.Name, "error:", err)
		}
	}

	promotions := []model.Promotion{
		{Code: "KM001", Description: "Khuyến mãi tháng 12", DiscountType: "Phần trăm (%)", DiscountValue: 10, RemainingUses: 100, Status: constants.PROMO_ACTIVE},
		{Code: "KM002", Description: "Giảm thẳng 20.000đ", DiscountType: "Tiền mặt", DiscountValue: 20000, RemainingUses: 50, Status: constants.PROMO_ACTIVE},
		{Code: "KM003", Description: "Ưu đãi khách hàng thân thiết", DiscountType: "Phần trăm (%)", DiscountValue: 15, RemainingUses: 100, Status: constants.PROMO_ACTIVE},
		{Code: "KM004", Description: "Giảm 10% cho đơn có combo", DiscountType: "Phần trăm (%)", DiscountValue: 10, RemainingUses: 200, Status: constants.PROMO_ACTIVE},
	}
	for _, p := range promotions {
		if err := db.Where(model.Promotion{Code: p.Code}).FirstOrCreate(&p).Error; err != nil {
			log.Println("failed to seed data for promotion:", p.Code, "error:", err)
		}
	}
}
