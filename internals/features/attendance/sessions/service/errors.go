package service

import "errors"

var (
	// Tidak ada sesi berjalan untuk kartu tersebut.
	ErrNoActiveSession = errors.New("tidak ada sesi aktif")

	// Operasi sesi hanya boleh dilakukan host yang memulai sesi.
	ErrNotHost = errors.New("bukan host sesi")

	// Kode belum kadaluarsa, rotasi ditolak (bukan error bagi pemanggil
	// yang cuma mau membaca kode terbaru).
	ErrCodeStillValid = errors.New("kode masih berlaku")
)
