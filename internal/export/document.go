// Package export renders a proposal into its two downloadable files: a
// word-processing document and a budget spreadsheet. Both are pure
// functions of the proposal and the language.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/locale"
)

const (
	brandColor = "1E1B4B"
	white      = "FFFFFF"
)

// Sizes are in half-points.
const (
	sizeTitle   = 48
	sizeHeading = 28
	sizeSub     = 24
	sizeBody    = 24
	sizeCell    = 20
)

// zipEpoch is stamped on every archive entry so identical input yields
// identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToDocument renders the proposal as a .docx word-processing document.
// Section order is fixed; reading direction and alignment follow lang and
// are applied to every paragraph and table.
func ToDocument(p domain.ProjectProposal, lang locale.Language) ([]byte, error) {
	body := renderBody(p, lang)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(lang)},
		{"word/document.xml", body},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing document archive: %w", err)
	}
	return buf.Bytes(), nil
}

type runStyle struct {
	bold  bool
	color string
	size  int
}

type para struct {
	align   string
	before  int
	after   int
	outline int // -1 for body text
	style   runStyle
	text    string
}

// docBuilder accumulates WordprocessingML body content.
type docBuilder struct {
	b   strings.Builder
	rtl bool
}

func (d *docBuilder) start() string {
	if d.rtl {
		return "right"
	}
	return "left"
}

func (d *docBuilder) paragraph(p para) {
	d.b.WriteString("<w:p><w:pPr>")
	if d.rtl {
		d.b.WriteString("<w:bidi/>")
	}
	fmt.Fprintf(&d.b, `<w:spacing w:before="%d" w:after="%d"/>`, p.before, p.after)
	fmt.Fprintf(&d.b, `<w:jc w:val="%s"/>`, p.align)
	if p.outline >= 0 {
		fmt.Fprintf(&d.b, `<w:outlineLvl w:val="%d"/>`, p.outline)
	}
	d.b.WriteString("</w:pPr>")
	d.run(p.style, p.text)
	d.b.WriteString("</w:p>")
}

func (d *docBuilder) run(r runStyle, text string) {
	d.b.WriteString("<w:r><w:rPr>")
	if r.bold {
		d.b.WriteString("<w:b/><w:bCs/>")
	}
	if r.color != "" {
		fmt.Fprintf(&d.b, `<w:color w:val="%s"/>`, r.color)
	}
	if r.size > 0 {
		sz := strconv.Itoa(r.size)
		d.b.WriteString(`<w:sz w:val="` + sz + `"/><w:szCs w:val="` + sz + `"/>`)
	}
	if d.rtl {
		d.b.WriteString("<w:rtl/>")
	}
	d.b.WriteString("</w:rPr>")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			d.b.WriteString("<w:br/>")
		}
		d.b.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(&d.b, []byte(line))
		d.b.WriteString("</w:t>")
	}
	d.b.WriteString("</w:r>")
}

func (d *docBuilder) title(text string) {
	d.paragraph(para{align: "center", after: 800, outline: 0, text: text,
		style: runStyle{bold: true, color: brandColor, size: sizeTitle}})
}

func (d *docBuilder) heading(n int, text string) {
	d.paragraph(para{align: d.start(), before: 400, after: 200, outline: 1,
		text: fmt.Sprintf("%d. %s", n, text),
		style: runStyle{bold: true, color: brandColor, size: sizeHeading}})
}

func (d *docBuilder) subheading(text string) {
	d.paragraph(para{align: d.start(), before: 200, after: 100, outline: 2, text: text,
		style: runStyle{bold: true, color: brandColor, size: sizeSub}})
}

func (d *docBuilder) text(text string) {
	d.paragraph(para{align: "both", after: 200, outline: -1, text: text, style: runStyle{size: sizeBody}})
}

func (d *docBuilder) bullets(items []string) {
	for _, item := range items {
		d.paragraph(para{align: d.start(), after: 120, outline: -1, text: "• " + item, style: runStyle{size: sizeBody}})
	}
}

func (d *docBuilder) table(header [3]string, rows [][3]string) {
	d.b.WriteString("<w:tbl><w:tblPr>")
	if d.rtl {
		d.b.WriteString("<w:bidiVisual/>")
	}
	d.b.WriteString(`<w:tblW w:w="5000" w:type="pct"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&d.b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, edge)
	}
	d.b.WriteString(`</w:tblBorders></w:tblPr><w:tblGrid>`)
	for range header {
		d.b.WriteString(`<w:gridCol w:w="3009"/>`)
	}
	d.b.WriteString("</w:tblGrid>")

	d.row(header[:], true)
	for _, r := range rows {
		d.row(r[:], false)
	}
	d.b.WriteString("</w:tbl>")
}

func (d *docBuilder) row(cells []string, header bool) {
	d.b.WriteString("<w:tr>")
	for _, c := range cells {
		d.b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="1667" w:type="pct"/>`)
		if header {
			fmt.Fprintf(&d.b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, brandColor)
		}
		d.b.WriteString("</w:tcPr>")
		if header {
			d.paragraph(para{align: "center", outline: -1, text: c, style: runStyle{bold: true, color: white}})
		} else {
			d.paragraph(para{align: d.start(), outline: -1, text: c, style: runStyle{size: sizeCell}})
		}
		d.b.WriteString("</w:tc>")
	}
	d.b.WriteString("</w:tr>")
}

func renderBody(p domain.ProjectProposal, lang locale.Language) string {
	t := lang.Labels()
	d := &docBuilder{rtl: lang.IsRTL()}

	d.b.WriteString(xml.Header)
	d.b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`)

	d.title(p.Title)

	d.heading(1, t.ExecSummary)
	d.text(p.ExecutiveSummary)
	d.heading(2, t.ProbAnalysis)
	d.text(p.ProblemAnalysis)
	d.heading(3, t.TheoryOfChange)
	d.text(p.TheoryOfChange)

	d.heading(4, t.Goals)
	d.bullets(p.SpecificGoals)

	d.heading(5, t.SWOT)
	for _, q := range []struct {
		label string
		items []string
	}{
		{t.Strengths, p.SWOT.Strengths},
		{t.Weaknesses, p.SWOT.Weaknesses},
		{t.Opportunities, p.SWOT.Opportunities},
		{t.Threats, p.SWOT.Threats},
	} {
		d.subheading(q.label)
		d.bullets(q.items)
	}

	d.heading(6, t.Activities)
	rows := make([][3]string, len(p.Activities))
	for i, a := range p.Activities {
		rows[i] = [3]string{a.Activity, a.Details, a.Output}
	}
	d.table([3]string{t.Activity, t.Details, t.Output}, rows)

	d.heading(7, t.METitle)
	d.subheading(t.Indicators)
	d.bullets(p.MEPlan.Indicators)

	d.heading(8, t.Sustainability)
	d.text(p.Sustainability)

	d.b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>`)
	d.b.WriteString(`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>`)
	if d.rtl {
		d.b.WriteString("<w:bidi/>")
	}
	d.b.WriteString("</w:sectPr></w:body></w:document>")
	return d.b.String()
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

func stylesXML(lang locale.Language) string {
	bcp47 := "en-US"
	if lang == locale.Arabic {
		bcp47 = "ar-SA"
	}
	return xml.Header + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:docDefaults><w:rPrDefault><w:rPr>` +
		`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>` +
		`<w:sz w:val="24"/><w:szCs w:val="24"/>` +
		`<w:lang w:val="en-US" w:bidi="` + bcp47 + `"/>` +
		`</w:rPr></w:rPrDefault></w:docDefaults>` +
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
		`</w:styles>`
}
