package service

import (
	"sort"
	"time"

	cardModel "hadirku_backend/internals/features/attendance/cards/model"
	recordModel "hadirku_backend/internals/features/attendance/records/model"
)

const matrixDateLayout = "2006-01-02"

// MatrixUser satu baris matriks: peserta + kehadiran per tanggal.
type MatrixUser struct {
	MemberID   string          `json:"member_id"`
	MemberCode string          `json:"member_code"`
	MemberName string          `json:"member_name"`
	Presence   map[string]bool `json:"presence"` // tanggal (YYYY-MM-DD) -> hadir
}

// Matrix hasil query layer: daftar peserta terurut nama x daftar tanggal
// beraktivitas terurut naik.
type Matrix struct {
	Dates []string     `json:"dates"`
	Users []MatrixUser `json:"users"`
}

// BuildMatrix menyusun matriks kehadiran murni dari hasil scan ledger.
// Kehadiran pada satu hari = ada minimal satu record dengan checkin hari itu;
// status checkout tidak relevan. Tanggal tanpa record sama sekali (sesi
// pernah jalan tapi tak ada yang hadir) tetap jadi kolom.
func BuildMatrix(members []cardModel.CardMemberModel, days []recordModel.CardLogDayModel, records []recordModel.AttendanceRecordModel) Matrix {
	dateSet := make(map[string]struct{}, len(days))
	for _, d := range days {
		dateSet[d.LogDayDate.Format(matrixDateLayout)] = struct{}{}
	}
	for _, r := range records {
		dateSet[r.RecordDate.Format(matrixDateLayout)] = struct{}{}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	// (member, tanggal) -> hadir
	present := make(map[string]map[string]bool, len(members))
	for _, r := range records {
		if r.RecordCheckinAt.IsZero() {
			continue
		}
		key := r.RecordMemberID.String()
		if present[key] == nil {
			present[key] = make(map[string]bool)
		}
		present[key][r.RecordDate.Format(matrixDateLayout)] = true
	}

	sorted := make([]cardModel.CardMemberModel, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MemberName != sorted[j].MemberName {
			return sorted[i].MemberName < sorted[j].MemberName
		}
		return sorted[i].MemberCode < sorted[j].MemberCode
	})

	users := make([]MatrixUser, 0, len(sorted))
	for _, mbr := range sorted {
		row := MatrixUser{
			MemberID:   mbr.MemberID.String(),
			MemberCode: mbr.MemberCode,
			MemberName: mbr.MemberName,
			Presence:   make(map[string]bool, len(dates)),
		}
		for _, d := range dates {
			row.Presence[d] = present[mbr.MemberID.String()][d]
		}
		users = append(users, row)
	}

	return Matrix{Dates: dates, Users: users}
}

// FormatDate membantu controller menormalkan tanggal path param.
func FormatDate(t time.Time) string { return t.Format(matrixDateLayout) }

// ParseDate memvalidasi path param tanggal (YYYY-MM-DD, UTC).
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(matrixDateLayout, s, time.UTC)
}
