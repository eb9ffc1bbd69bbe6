package document

// TranslationRule says whether a slot's file needs a certified translation.
type TranslationRule string

const (
	TranslationNone        TranslationRule = ""
	TranslationDERequired  TranslationRule = "DE_REQUIRED"
	TranslationSpecialRule TranslationRule = "SPECIAL_LANGUAGE_RULE"
)

type TemplateEntry struct {
	Type            DocType
	Required        bool
	TranslationRule TranslationRule
	Note            string
}

// IHKChecklistTemplate is the fixed ordered catalog of default document
// slots every case gets at creation time.
var IHKChecklistTemplate = []TemplateEntry{
	{
		Type:     TypeApplicationForm,
		Required: true,
		Note:     "Unterschrift nicht erforderlich bei digitaler Antragstellung",
	},
	{
		Type:            TypeDiplomaAndSubjects,
		Required:        true,
		TranslationRule: TranslationDERequired,
	},
	{
		Type:     TypeIdentityProof,
		Required: true,
	},
	{
		Type:     TypeCV,
		Required: true,
	},
	{
		Type:     TypeIntentToWorkProof,
		Required: true,
	},
	{
		Type:            TypeProofWorkExperience,
		Required:        false,
		TranslationRule: TranslationDERequired,
	},
	{
		Type:            TypeOtherQualifications,
		Required:        false,
		TranslationRule: TranslationDERequired,
	},
	{
		Type:            TypeTrainingCurriculum,
		Required:        false,
		TranslationRule: TranslationSpecialRule,
	},
}

type DefaultCustomDoc struct {
	Title    string
	Required bool
}

// DefaultCustomDocs are seeded once per case alongside the checklist.
var DefaultCustomDocs = []DefaultCustomDoc{
	{Title: "Visum", Required: true},
	{Title: "Hộ chiếu", Required: true},
	{Title: "EZB", Required: false},
	{Title: "Zusatz D", Required: false},
	{Title: "Arbeitsvertrag", Required: true},
	{Title: "IHK", Required: false},
	{Title: "Ngày nhập cảnh", Required: false},
}
