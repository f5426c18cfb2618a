package service

import (
	"math/rand/v2"
	"strconv"
	"time"

	"hadirku_backend/internals/features/attendance/sessions/model"
)

// Masa berlaku kode akses sejak (re)generate.
const CodeTTL = 120 * time.Second

// GenerateAccessCode menghasilkan kode 4 digit "1000".."9999" (9000 nilai,
// tanpa leading zero). Kode ini bukan batas keamanan — hanya gerbang tampilan
// bagi peserta, jadi math/rand cukup. Unik lintas waktu tidak dijamin dan
// memang tidak diperlukan.
func GenerateAccessCode() string {
	return strconv.Itoa(rand.IntN(9000) + 1000)
}

// MatchesAccessCode: kode cocok dengan sesi INI dan belum kadaluarsa di now.
// Perbandingan per-sesi, bukan lintas kartu — ruang kode cuma 9000 nilai,
// tabrakan antar sesi paralel itu wajar dan tidak boleh saling membuka.
func MatchesAccessCode(sess *model.CardSessionModel, code string, now time.Time) bool {
	if sess == nil || !sess.SessionActive {
		return false
	}
	return sess.SessionCode == code && now.Before(sess.SessionCodeExpiresAt)
}
