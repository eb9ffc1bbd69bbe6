package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForStorage_Scalars(t *testing.T) {
	p := SanitizeForStorage(map[string]any{
		"phone":        "  0912 345 678 ",
		"email":        "",
		"homeAddress":  nil,
		"heightCm":     "172",
		"eyeColor":     "nâu",
		"marriageDate": "2020-06-15",
		"divorceDate":  "not a date",
	})

	assert.Equal(t, "0912 345 678", *p.Phone)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.HomeAddress)
	assert.Equal(t, 172, *p.HeightCm)
	assert.Equal(t, "nâu", *p.EyeColor)
	assert.Equal(t, 2020, p.MarriageDate.Year())
	assert.Nil(t, p.DivorceDate)
	assert.Equal(t, MaritalSingle, p.MaritalStatus)
}

func TestSanitizeForStorage_HeightFromNumber(t *testing.T) {
	// JSON numbers decode to float64
	p := SanitizeForStorage(map[string]any{"heightCm": float64(168)})
	assert.Equal(t, 168, *p.HeightCm)
}

func TestSanitizeForStorage_EmptyCollectionsBecomeNull(t *testing.T) {
	p := SanitizeForStorage(map[string]any{
		"familyMembers":    []any{},
		"workHistory":      nil,
		"educationHistory": "not json",
	})

	assert.Nil(t, p.FamilyMembers)
	assert.Nil(t, p.WorkHistory)
	assert.Nil(t, p.EducationHistory)
}

func TestSanitizeForStorage_CollectionFromJSONString(t *testing.T) {
	// older frontends sent collections as JSON-encoded strings
	p := SanitizeForStorage(map[string]any{
		"familyMembers": `[{"relation":"BO","fullName":"Nguyễn Văn B","dob":"1965-01-02","hometown":"Nghệ An"}]`,
	})

	var members []FamilyMember
	assert.NoError(t, json.Unmarshal(p.FamilyMembers, &members))
	assert.Len(t, members, 1)
	assert.Equal(t, "BO", members[0].Relation)
	assert.Equal(t, "Nguyễn Văn B", members[0].FullName)
}

func TestSanitizeForStorage_TravelIllegalStayCoercion(t *testing.T) {
	p := SanitizeForStorage(map[string]any{
		"travelHistory": []any{
			map[string]any{"country": "Japan", "illegalStay": "true"},
			map[string]any{"country": "Korea", "illegalStay": false},
		},
	})

	var items []TravelItem
	assert.NoError(t, json.Unmarshal(p.TravelHistory, &items))
	assert.True(t, items[0].IllegalStay)
	assert.False(t, items[1].IllegalStay)
}

func TestForDisplay_NilProfile(t *testing.T) {
	v := ForDisplay(nil)

	assert.Equal(t, string(MaritalSingle), v.MaritalStatus)
	assert.Empty(t, v.Phone)
	assert.NotNil(t, v.FamilyMembers)
	assert.Len(t, v.FamilyMembers, 0)
	assert.NotNil(t, v.WorkHistory)
}

func TestForDisplay_RoundTrip(t *testing.T) {
	stored := SanitizeForStorage(map[string]any{
		"phone":         "0912345678",
		"heightCm":      "170",
		"maritalStatus": "KET_HON",
		"marriageDate":  "2019-03-01",
		"familyMembers": []any{
			map[string]any{"relation": "ME", "fullName": "Trần Thị C"},
		},
	})

	v := ForDisplay(&stored)

	assert.Equal(t, "0912345678", v.Phone)
	assert.Equal(t, "170", v.HeightCm)
	assert.Equal(t, "KET_HON", v.MaritalStatus)
	assert.Equal(t, "2019-03-01", v.MarriageDate)
	assert.Equal(t, "", v.DivorceDate)
	assert.Len(t, v.FamilyMembers, 1)
	assert.Equal(t, "Trần Thị C", v.FamilyMembers[0].FullName)
	// untouched collections come back as empty arrays, not null
	assert.NotNil(t, v.TravelHistory)
	assert.Len(t, v.TravelHistory, 0)
}

func TestDateStringFormatsStoredDates(t *testing.T) {
	d := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	p := VisaProfile{MarriageDate: &d}

	v := ForDisplay(&p)
	assert.Equal(t, "2020-06-15", v.MarriageDate)
}
