package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// requiredEnv - variabel yang wajib ada sebelum server boleh jalan.
// Token kosong = siapa saja bisa memalsukan identitas, jadi gagal cepat.
var requiredEnv = []string{
	"OWNER_ID",
	"DB_USER",
	"DB_NAME",
	"JWT_SECRET",
	"TERMINAL_KEY_HASH",
	"REDIS_ADDR",
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env tidak ditemukan, pakai env system")
	}
}

func GetEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// CheckRequiredEnv - kumpulkan semua variabel wajib yang kosong sekaligus,
// biar satu kali benerin .env cukup
func CheckRequiredEnv() error {
	var missing []string

	for _, key := range requiredEnv {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("variabel wajib belum di-set: %s", strings.Join(missing, ", "))
	}

	return nil
}

// MustGetEnv - fatal kalau variabel wajib tidak di-set
func MustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("%s wajib di-set di .env atau env system", key)
	}
	return val
}

// OwnerID - identitas owner untuk bootstrap otorisasi, wajib integer
func OwnerID() int64 {
	raw := MustGetEnv("OWNER_ID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("OWNER_ID harus berupa user ID (integer), dapat %q", raw)
	}

	return id
}
