package profile

// Repeating sub-records of the questionnaire. They have no identity of their
// own; the whole collection is replaced on every save.

type FamilyMember struct {
	Relation string `json:"relation"` // BO, ME, VO_CHONG, CON, ANH_CHI_EM, KHAC
	FullName string `json:"fullName"`
	Dob      string `json:"dob"` // YYYY-MM-DD
	Hometown string `json:"hometown"`
}

type FamilyJobIncome struct {
	Relation string `json:"relation"`
	Job      string `json:"job"`
	Income   string `json:"income"` // free text, e.g. "15tr/tháng"
	Details  string `json:"details"`
}

type EducationItem struct {
	Level      string `json:"level"` // TIEU_HOC ... DAI_HOC, KHAC
	FromYear   string `json:"fromYear"`
	ToYear     string `json:"toYear"`
	SchoolName string `json:"schoolName"`
	Address    string `json:"address"`
	Major      string `json:"major"`
	Notes      string `json:"notes"`
}

type WorkItem struct {
	FromYear string `json:"fromYear"`
	ToYear   string `json:"toYear"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	Position string `json:"position"`
	Notes    string `json:"notes"`
}

type TravelItem struct {
	Country     string `json:"country"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	Purpose     string `json:"purpose"` // DU_LICH, XKLĐ, HOC_TAP, CONG_TAC, KHAC
	IllegalStay bool   `json:"illegalStay"`
	Notes       string `json:"notes"`
}

// View is the display-normalized shape of a profile: every scalar is a
// string, dates are YYYY-MM-DD, every collection is a non-nil slice.
type View struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	HomeAddress string `json:"homeAddress"`

	HeightCm      string `json:"heightCm"`
	EyeColor      string `json:"eyeColor"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"maritalStatus"`
	MarriageDate  string `json:"marriageDate"`
	DivorceDate   string `json:"divorceDate"`

	CurrentCompany string `json:"currentCompany"`
	CompanyAddress string `json:"companyAddress"`

	GraduatedSchool string `json:"graduatedSchool"`
	Major           string `json:"major"`

	BigAssets string `json:"bigAssets"`

	FamilyMembers    []FamilyMember    `json:"familyMembers"`
	FamilyJobsIncome []FamilyJobIncome `json:"familyJobsIncome"`
	TravelHistory    []TravelItem      `json:"travelHistory"`
	EducationHistory []EducationItem   `json:"educationHistory"`
	WorkHistory      []WorkItem        `json:"workHistory"`
}
