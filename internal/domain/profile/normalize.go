package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// stringify renders a JSON scalar as trimmed text. Maps and slices are not
// scalar fields and collapse to "".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		if t == math.Trunc(t) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func toNullIfEmpty(v any) *string {
	s := stringify(v)
	if s == "" {
		return nil
	}
	return &s
}

func toIntOrNull(v any) *int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		n := int(t)
		return &n
	case json.Number:
		if f, err := t.Float64(); err == nil {
			n := int(f)
			return &n
		}
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		n := int(f)
		return &n
	default:
		return nil
	}
}

func toDateOrNull(v any) *time.Time {
	s := stringify(v)
	if s == "" {
		return nil
	}
	if d, err := time.Parse(dateLayout, s); err == nil {
		return &d
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return &d
	}
	return nil
}

// toItems coerces any historical shape of a collection field into a slice of
// objects: real arrays pass through, JSON-encoded strings are parsed,
// everything else becomes empty.
func toItems(v any) []map[string]any {
	var arr []any
	switch t := v.(type) {
	case []any:
		arr = t
	case string:
		if err := json.Unmarshal([]byte(t), &arr); err != nil {
			return nil
		}
	default:
		return nil
	}

	items := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	default:
		return false
	}
}

func familyMembersFrom(v any) []FamilyMember {
	items := toItems(v)
	out := make([]FamilyMember, 0, len(items))
	for _, m := range items {
		out = append(out, FamilyMember{
			Relation: stringify(m["relation"]),
			FullName: stringify(m["fullName"]),
			Dob:      stringify(m["dob"]),
			Hometown: stringify(m["hometown"]),
		})
	}
	return out
}

func familyJobsFrom(v any) []FamilyJobIncome {
	items := toItems(v)
	out := make([]FamilyJobIncome, 0, len(items))
	for _, m := range items {
		out = append(out, FamilyJobIncome{
			Relation: stringify(m["relation"]),
			Job:      stringify(m["job"]),
			Income:   stringify(m["income"]),
			Details:  stringify(m["details"]),
		})
	}
	return out
}

func educationFrom(v any) []EducationItem {
	items := toItems(v)
	out := make([]EducationItem, 0, len(items))
	for _, m := range items {
		out = append(out, EducationItem{
			Level:      stringify(m["level"]),
			FromYear:   stringify(m["fromYear"]),
			ToYear:     stringify(m["toYear"]),
			SchoolName: stringify(m["schoolName"]),
			Address:    stringify(m["address"]),
			Major:      stringify(m["major"]),
			Notes:      stringify(m["notes"]),
		})
	}
	return out
}

func workFrom(v any) []WorkItem {
	items := toItems(v)
	out := make([]WorkItem, 0, len(items))
	for _, m := range items {
		out = append(out, WorkItem{
			FromYear: stringify(m["fromYear"]),
			ToYear:   stringify(m["toYear"]),
			Company:  stringify(m["company"]),
			Address:  stringify(m["address"]),
			Position: stringify(m["position"]),
			Notes:    stringify(m["notes"]),
		})
	}
	return out
}

func travelFrom(v any) []TravelItem {
	items := toItems(v)
	out := make([]TravelItem, 0, len(items))
	for _, m := range items {
		out = append(out, TravelItem{
			Country:     stringify(m["country"]),
			FromDate:    stringify(m["fromDate"]),
			ToDate:      stringify(m["toDate"]),
			Purpose:     stringify(m["purpose"]),
			IllegalStay: toBool(m["illegalStay"]),
			Notes:       stringify(m["notes"]),
		})
	}
	return out
}

// marshalOrNull stores an empty collection as NULL rather than "[]". The
// distinction between "never filled in" and "saved as empty" is collapsed
// intentionally.
func marshalOrNull[T any](items []T) datatypes.JSON {
	if len(items) == 0 {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// SanitizeForStorage coerces an untrusted questionnaire payload into a
// strictly-typed profile record. Nothing unvalidated is ever persisted.
func SanitizeForStorage(raw map[string]any) VisaProfile {
	marital := MaritalStatus(stringify(raw["maritalStatus"]))
	if marital == "" {
		marital = MaritalSingle
	}

	return VisaProfile{
		Phone:       toNullIfEmpty(raw["phone"]),
		Email:       toNullIfEmpty(raw["email"]),
		HomeAddress: toNullIfEmpty(raw["homeAddress"]),

		HeightCm:      toIntOrNull(raw["heightCm"]),
		EyeColor:      toNullIfEmpty(raw["eyeColor"]),
		Religion:      toNullIfEmpty(raw["religion"]),
		MaritalStatus: marital,
		MarriageDate:  toDateOrNull(raw["marriageDate"]),
		DivorceDate:   toDateOrNull(raw["divorceDate"]),

		CurrentCompany: toNullIfEmpty(raw["currentCompany"]),
		CompanyAddress: toNullIfEmpty(raw["companyAddress"]),

		GraduatedSchool: toNullIfEmpty(raw["graduatedSchool"]),
		Major:           toNullIfEmpty(raw["major"]),

		BigAssets: toNullIfEmpty(raw["bigAssets"]),

		FamilyMembers:    marshalOrNull(familyMembersFrom(raw["familyMembers"])),
		FamilyJobsIncome: marshalOrNull(familyJobsFrom(raw["familyJobsIncome"])),
		TravelHistory:    marshalOrNull(travelFrom(raw["travelHistory"])),
		EducationHistory: marshalOrNull(educationFrom(raw["educationHistory"])),
		WorkHistory:      marshalOrNull(workFrom(raw["workHistory"])),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func decodeStored(data datatypes.JSON) any {
	if len(data) == 0 {
		return nil
	}
	var arr []any
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil
	}
	return arr
}

// ForDisplay is the mirror image of SanitizeForStorage: stored NULLs come
// back as empty strings and collections are always non-nil arrays.
func ForDisplay(p *VisaProfile) View {
	v := View{
		FamilyMembers:    []FamilyMember{},
		FamilyJobsIncome: []FamilyJobIncome{},
		TravelHistory:    []TravelItem{},
		EducationHistory: []EducationItem{},
		WorkHistory:      []WorkItem{},
		MaritalStatus:    string(MaritalSingle),
	}
	if p == nil {
		return v
	}

	v.Phone = strOrEmpty(p.Phone)
	v.Email = strOrEmpty(p.Email)
	v.HomeAddress = strOrEmpty(p.HomeAddress)

	if p.HeightCm != nil {
		v.HeightCm = fmt.Sprintf("%d", *p.HeightCm)
	}
	v.EyeColor = strOrEmpty(p.EyeColor)
	v.Religion = strOrEmpty(p.Religion)
	if p.MaritalStatus != "" {
		v.MaritalStatus = string(p.MaritalStatus)
	}
	v.MarriageDate = dateString(p.MarriageDate)
	v.DivorceDate = dateString(p.DivorceDate)

	v.CurrentCompany = strOrEmpty(p.CurrentCompany)
	v.CompanyAddress = strOrEmpty(p.CompanyAddress)

	v.GraduatedSchool = strOrEmpty(p.GraduatedSchool)
	v.Major = strOrEmpty(p.Major)

	v.BigAssets = strOrEmpty(p.BigAssets)

	if items := familyMembersFrom(decodeStored(p.FamilyMembers)); len(items) > 0 {
		v.FamilyMembers = items
	}
	if items := familyJobsFrom(decodeStored(p.FamilyJobsIncome)); len(items) > 0 {
		v.FamilyJobsIncome = items
	}
	if items := travelFrom(decodeStored(p.TravelHistory)); len(items) > 0 {
		v.TravelHistory = items
	}
	if items := educationFrom(decodeStored(p.EducationHistory)); len(items) > 0 {
		v.EducationHistory = items
	}
	if items := workFrom(decodeStored(p.WorkHistory)); len(items) > 0 {
		v.WorkHistory = items
	}

	return v
}
