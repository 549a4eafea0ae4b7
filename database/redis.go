package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinema_booking/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const seatMapTTL = 30 * time.Second

func ConnectRedis() {
	addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Không kết nối được Redis (%s), sơ đồ ghế sẽ đọc trực tiếp từ DB: %v", addr, err)
		Redis = nil
		return
	}
	fmt.Println("Connection Opened to Redis")
}

func seatMapKey(showtimeId uint, staffMode bool) string {
	if staffMode {
		return fmt.Sprintf("seatmap:staff:%d", showtimeId)
	}
	return fmt.Sprintf("seatmap:%d", showtimeId)
}

// GetSeatMapCache đọc JSON sơ đồ ghế đã cache, trả về "" nếu miss.
func GetSeatMapCache(ctx context.Context, showtimeId uint, staffMode bool) string {
	if Redis == nil {
		return ""
	}
	val, err := Redis.Get(ctx, seatMapKey(showtimeId, staffMode)).Result()
	if err != nil {
		return ""
	}
	return val
}

func SetSeatMapCache(ctx context.Context, showtimeId uint, staffMode bool, payload string) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(ctx, seatMapKey(showtimeId, staffMode), payload, seatMapTTL).Err(); err != nil {
		log.Printf("Lỗi ghi cache sơ đồ ghế showtime=%d: %v", showtimeId, err)
	}
}

// InvalidateSeatMap xoá cache cả hai chế độ sau khi đơn/vé thay đổi.
func InvalidateSeatMap(ctx context.Context, showtimeId uint) {
	if Redis == nil {
		return
	}
	Redis.Del(ctx, seatMapKey(showtimeId, false), seatMapKey(showtimeId, true))
}
