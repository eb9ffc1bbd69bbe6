// Package render builds the downloadable "Sơ yếu lý lịch" biography
// document from a case identity and its display-normalized profile.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/haiminh-dev/ihk-case-api/internal/domain/casefile"
	"github.com/haiminh-dev/ihk-case-api/internal/domain/profile"
)

const vnFont = "Times New Roman"

// table width in twips, roughly the printable width of an A4 page
const tableWidth = 9026

const placeholder = "—"

func labelOr(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// vnDate renders a YYYY-MM-DD value as a Vietnamese short date. Anything
// unparsable degrades to the placeholder.
func vnDate(s string) string {
	if s == "" {
		return placeholder
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		if d, err = time.Parse(time.RFC3339, s); err != nil {
			return placeholder
		}
	}
	return d.Format("2/1/2006")
}

var relationLabels = map[string]string{
	"BO":         "Bố",
	"ME":         "Mẹ",
	"VO_CHONG":   "Vợ/Chồng",
	"CON":        "Con",
	"ANH_CHI_EM": "Anh/Chị/Em",
	"KHAC":       "Khác",
}

var eduLevelLabels = map[string]string{
	"TIEU_HOC":  "Tiểu học",
	"TRUNG_HOC": "Trung học",
	"THPT":      "THPT",
	"TRUNG_CAP": "Trung cấp",
	"CAO_DANG":  "Cao đẳng",
	"DAI_HOC":   "Đại học",
	"KHAC":      "Khác",
}

var travelPurposeLabels = map[string]string{
	"DU_LICH":  "Du lịch",
	"XKLĐ":     "Xuất khẩu lao động",
	"HOC_TAP":  "Học tập",
	"CONG_TAC": "Công tác",
	"KHAC":     "Khác",
}

func mapLabel(m map[string]string, v string) string {
	if lbl, ok := m[v]; ok {
		return lbl
	}
	return labelOr(v)
}

func maritalLabel(v string) string {
	switch v {
	case "KET_HON":
		return "Đã kết hôn"
	case "LY_HON":
		return "Ly hôn"
	default:
		return "Độc thân"
	}
}

func boolLabel(v bool) string {
	if v {
		return "Có"
	}
	return "Không"
}

type builder struct {
	doc *docx.Docx
}

func (b *builder) title(text string) {
	p := b.doc.AddParagraph().Justification("center")
	p.AddText(text).Size("32").Bold().Font(vnFont, "", vnFont, "")
}

func (b *builder) heading(text string) {
	p := b.doc.AddParagraph()
	p.AddText(text).Size("26").Bold().Font(vnFont, "", vnFont, "")
}

func (b *builder) line(text string) {
	b.doc.AddParagraph().AddText(text).Font(vnFont, "", vnFont, "")
}

func (b *builder) rightLine(text string, bold bool) {
	p := b.doc.AddParagraph().Justification("end")
	r := p.AddText(text).Font(vnFont, "", vnFont, "")
	if bold {
		r.Bold()
	}
}

func (b *builder) emptyLine() {
	b.doc.AddParagraph().AddText("").Font(vnFont, "", vnFont, "")
}

// kvTable renders an ordered label/value table, values falling back to the
// placeholder.
func (b *builder) kvTable(rows [][2]string) {
	tbl := b.doc.AddTable(len(rows), 2, tableWidth, nil)
	for i, row := range rows {
		cells := tbl.TableRows[i].TableCells
		cells[0].AddParagraph().AddText(row[0]).Bold().Font(vnFont, "", vnFont, "")
		cells[1].AddParagraph().AddText(labelOr(row[1])).Font(vnFont, "", vnFont, "")
	}
}

// numbered renders one line per entry, or the placeholder when the section
// has no data. The section itself is never omitted.
func (b *builder) numbered(lines []string) {
	if len(lines) == 0 {
		b.line(placeholder)
		return
	}
	for _, l := range lines {
		b.line(l)
	}
}

// Biography deterministically renders the questionnaire into a .docx byte
// stream. Missing or malformed fields degrade to placeholders; it never
// fails on profile content.
func Biography(c casefile.Case, v profile.View) ([]byte, error) {
	b := &builder{doc: docx.New().WithDefaultTheme()}

	dob := placeholder
	if c.Dob != nil {
		dob = c.Dob.Format("2/1/2006")
	}

	b.title("SƠ YẾU LÝ LỊCH")
	b.emptyLine()

	b.heading("I. THÔNG TIN CÁ NHÂN")
	b.kvTable([][2]string{
		{"Họ và tên", c.FullName},
		{"Ngày sinh", dob},
		{"Số điện thoại", v.Phone},
		{"Email", v.Email},
		{"Địa chỉ nhà", v.HomeAddress},
		{"Chiều cao (cm)", v.HeightCm},
		{"Màu mắt", v.EyeColor},
		{"Tôn giáo", v.Religion},
		{"Tình trạng hôn nhân", maritalLabel(v.MaritalStatus)},
		{"Ngày kết hôn (nếu có)", vnDate(v.MarriageDate)},
		{"Ngày ly hôn (nếu có)", vnDate(v.DivorceDate)},
	})
	b.emptyLine()

	b.heading("II. CÔNG VIỆC HIỆN TẠI")
	b.kvTable([][2]string{
		{"Công ty đang làm việc", v.CurrentCompany},
		{"Địa chỉ công ty", v.CompanyAddress},
	})
	b.emptyLine()

	b.heading("III. HỌC VẤN")
	b.kvTable([][2]string{
		{"Trường tốt nghiệp", v.GraduatedSchool},
		{"Chuyên ngành", v.Major},
	})
	b.emptyLine()

	b.heading("IV. TÀI SẢN")
	b.kvTable([][2]string{
		{"Tài sản lớn", v.BigAssets},
	})
	b.emptyLine()

	b.heading("V. THÔNG TIN GIA ĐÌNH")
	var familyLines []string
	for i, m := range v.FamilyMembers {
		familyLines = append(familyLines, fmt.Sprintf(
			"%d) %s: %s; Ngày sinh: %s; Quê quán: %s",
			i+1, mapLabel(relationLabels, m.Relation), labelOr(m.FullName), vnDate(m.Dob), labelOr(m.Hometown),
		))
	}
	b.numbered(familyLines)
	b.emptyLine()

	b.heading("VI. CÔNG VIỆC & THU NHẬP CỦA GIA ĐÌNH")
	var incomeLines []string
	for i, x := range v.FamilyJobsIncome {
		incomeLines = append(incomeLines, fmt.Sprintf(
			"%d) %s — Công việc: %s; Thu nhập: %s; Chi tiết: %s",
			i+1, mapLabel(relationLabels, x.Relation), labelOr(x.Job), labelOr(x.Income), labelOr(x.Details),
		))
	}
	b.numbered(incomeLines)
	b.emptyLine()

	b.heading("VII. QUÁ TRÌNH HỌC TẬP")
	var eduLines []string
	for i, ed := range v.EducationHistory {
		eduLines = append(eduLines, fmt.Sprintf(
			"%d) %s — Thời gian: %s – %s; Trường: %s; Địa chỉ: %s; Chuyên ngành: %s; Ghi chú: %s",
			i+1, mapLabel(eduLevelLabels, ed.Level), labelOr(ed.FromYear), labelOr(ed.ToYear),
			labelOr(ed.SchoolName), labelOr(ed.Address), labelOr(ed.Major), labelOr(ed.Notes),
		))
	}
	b.numbered(eduLines)
	b.emptyLine()

	b.heading("VIII. QUÁ TRÌNH CÔNG TÁC")
	var workLines []string
	for i, w := range v.WorkHistory {
		workLines = append(workLines, fmt.Sprintf(
			"%d) Thời gian: %s – %s; Công ty: %s; Địa chỉ: %s; Chức vụ: %s; Ghi chú: %s",
			i+1, labelOr(w.FromYear), labelOr(w.ToYear), labelOr(w.Company),
			labelOr(w.Address), labelOr(w.Position), labelOr(w.Notes),
		))
	}
	b.numbered(workLines)
	b.emptyLine()

	b.heading("IX. LỊCH SỬ XUẤT/NHẬP CẢNH")
	var travelLines []string
	for i, t := range v.TravelHistory {
		travelLines = append(travelLines, fmt.Sprintf(
			"%d) Quốc gia: %s; Thời gian: %s – %s; Diện: %s; Bất hợp pháp/quá hạn: %s; Ghi chú: %s",
			i+1, labelOr(t.Country), vnDate(t.FromDate), vnDate(t.ToDate),
			mapLabel(travelPurposeLabels, t.Purpose), boolLabel(t.IllegalStay), labelOr(t.Notes),
		))
	}
	b.numbered(travelLines)
	b.emptyLine()

	b.line("Tôi xin cam đoan những thông tin trên là đúng sự thật. Nếu sai tôi xin hoàn toàn chịu trách nhiệm.")
	b.emptyLine()
	b.rightLine("Ngày ....... tháng ....... năm .......", false)
	b.emptyLine()
	b.rightLine("Người khai (Ký, ghi rõ họ tên)", true)

	var buf bytes.Buffer
	if _, err := b.doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
