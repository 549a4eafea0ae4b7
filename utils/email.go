package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"cinema_booking/config"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData dữ liệu cho template email xác nhận đặt vé
type BookingConfirmationData struct {
	BookingId   uint
	MovieName   string
	CinemaName  string
	RoomName    string
	Showtime    string
	Seats       string
	TotalAmount float64
}

const bookingConfirmationTmpl = `
<h2>Xác nhận đặt vé #{{.BookingId}}</h2>
<p>Phim: <b>{{.MovieName}}</b></p>
<p>Rạp: {{.CinemaName}} - {{.RoomName}}</p>
<p>Suất chiếu: {{.Showtime}}</p>
<p>Ghế: {{.Seats}}</p>
<p>Tổng tiền: {{.TotalAmount}} VND</p>
<p>Vui lòng xuất trình mã QR đính kèm tại quầy soát vé.</p>`

// SendBookingConfirmationEmail gửi email xác nhận đặt vé kèm mã QR (async).
// Bỏ qua nếu chưa cấu hình SMTP.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, qrPNGs [][]byte) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}
	go func() {
		tmpl, err := template.New("booking_confirmation").Parse(bookingConfirmationTmpl)
		if err != nil {
			log.Printf("Lỗi parse template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.ConfigDefault("SMTP_FROM", username)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận đặt vé #"+strconv.FormatUint(uint64(data.BookingId), 10))
		m.SetBody("text/html", body.String())
		for i, png := range qrPNGs {
			name := "ve_" + strconv.Itoa(i+1) + ".png"
			m.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(png)
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email xác nhận đặt vé: %v", err)
		}
	}()
}
