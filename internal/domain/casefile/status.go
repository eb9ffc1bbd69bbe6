package casefile

import "strings"

var validStatuses = map[VisaStatus]bool{
	StatusHoanTat:      true,
	StatusVanThieuHoSo: true,
	StatusDaLanTay:     true,
	StatusDaCoVisum:    true,
	StatusChuaDu8Thang: true,
}

// Vietnamese display strings (with and without diacritics) seen in imported
// spreadsheets and older frontends.
var statusLabels = map[string]VisaStatus{
	"hoàn tất": StatusHoanTat,
	"hoan tat": StatusHoanTat,

	"vẫn thiếu hồ sơ": StatusVanThieuHoSo,
	"van thieu ho so": StatusVanThieuHoSo,

	"đã lăn tay": StatusDaLanTay,
	"da lan tay": StatusDaLanTay,

	"đã có visum": StatusDaCoVisum,
	"da co visum": StatusDaCoVisum,

	"chưa đủ 8 tháng": StatusChuaDu8Thang,
	"chua du 8 thang": StatusChuaDu8Thang,
}

// NormalizeVisaStatus accepts either an enum key (case-insensitive) or a
// localized display string and returns the matching status. Unrecognized
// non-empty input means "no change", so ok is false rather than an error.
func NormalizeVisaStatus(input string) (VisaStatus, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", false
	}

	if st := VisaStatus(strings.ToUpper(raw)); validStatuses[st] {
		return st, true
	}

	if st, ok := statusLabels[strings.ToLower(raw)]; ok {
		return st, true
	}

	return "", false
}
