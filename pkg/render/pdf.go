package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points.
const (
	pdfPageW   = 600.0
	pdfPageH   = 350.0
	pdfMarginL = 15.0
	pdfMarginR = 15.0
	pdfMarginT = 10.0
	pdfMarginB = 15.0

	pdfContentW = pdfPageW - pdfMarginL - pdfMarginR
	pdfBottom   = pdfPageH - pdfMarginB

	pdfBodyIndent   = 30.0
	pdfBulletIndent = 25.0
	pdfSubIndent    = 15.0
	pdfRightIndent  = 15.0

	pdfBodyLine = 14.0
	pdfCodeLine = 11.0

	pdfBodyCharsPerLine   = 100
	pdfBulletCharsPerLine = 85
)

type rgb [3]int

var (
	colorOrange    = rgb{0xff, 0x79, 0x00}
	colorTeal      = rgb{0x00, 0x97, 0xb2}
	colorCodeBG    = rgb{0xf3, 0xf3, 0xf3}
	colorCodeText  = rgb{0x22, 0x22, 0x22}
	colorWhite     = rgb{0xff, 0xff, 0xff}
	colorBlack     = rgb{0x00, 0x00, 0x00}
	colorExample   = rgb{0x00, 0x66, 0x00}
	colorTableGrid = rgb{0xf3, 0xf3, 0xf3}
)

// Options configure both renderers.
type Options struct {
	LogoPath string
	Warn     WarnFunc

	uncompressed bool
}

type cellStyle struct {
	Fill rgb
	Text rgb
	Bold bool
}

// tableRowStyle styles the header row apart from the body rows.
func tableRowStyle(row int) cellStyle {
	if row == 0 {
		return cellStyle{Fill: colorTeal, Text: colorWhite, Bold: true}
	}
	return cellStyle{Fill: colorWhite, Text: colorBlack}
}

type pdfWriter struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	logo string
	warn WarnFunc
}

// RenderPDF lays doc out on 600x350pt pages: a cover page, a presenter
// page, for daily documents a programme page, then the content.
func RenderPDF(doc Document, w io.Writer, opts Options) error {
	p := newPDFWriter(doc, opts)

	p.coverPage("Formation", doc.Title)
	p.coverPage("Présenté par", doc.Trainer)
	if doc.Daily {
		p.programmePage(doc)
	}

	blocks := Flatten(doc, p.warn)
	if !doc.Daily {
		p.pdf.AddPage()
	}
	for _, b := range blocks {
		p.block(b)
	}

	if p.pdf.Err() {
		return fmt.Errorf("render pdf: %w", p.pdf.Error())
	}
	return p.pdf.Output(w)
}

func newPDFWriter(doc Document, opts Options) *pdfWriter {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pdfPageW, Ht: pdfPageH},
	})
	pdf.SetMargins(pdfMarginL, pdfMarginT, pdfMarginR)
	pdf.SetAutoPageBreak(true, pdfMarginB)
	pdf.SetCompression(!opts.uncompressed)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Trainer, true)
	pdf.SetHeaderFunc(func() {
		setFill(pdf, colorOrange)
		pdf.Rect(0, 0, 8, pdfPageH, "F")
	})

	p := &pdfWriter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		warn: opts.Warn,
	}
	if p.warn == nil {
		p.warn = nopWarn
	}
	p.registerLogo(opts.LogoPath)
	return p
}

func (p *pdfWriter) registerLogo(path string) {
	if path == "" {
		return
	}
	format, err := imageFormat(path)
	if err != nil {
		p.warn("Logo is not a readable image", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	p.pdf.RegisterImageOptions(path, fpdf.ImageOptions{ImageType: format})
	if p.pdf.Err() {
		p.warn("Logo could not be embedded", map[string]interface{}{"path": path, "error": p.pdf.Error().Error()})
		p.pdf.ClearError()
		return
	}
	p.logo = path
}

func (p *pdfWriter) drawLogo(x, y, w, h float64) {
	if p.logo == "" {
		return
	}
	p.pdf.ImageOptions(p.logo, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
}

func (p *pdfWriter) coverPage(heading, text string) {
	p.pdf.AddPage()
	p.drawLogo(pdfPageW-pdfMarginR-120, pdfMarginT, 120, 30)

	p.pdf.SetY(pdfMarginT + 30 + 20 + 45)
	p.font("Helvetica", "B", 45, colorOrange)
	p.pdf.CellFormat(pdfContentW, 50, p.tr(heading), "", 1, "L", false, 0, "")

	p.pdf.Ln(15)
	p.font("Helvetica", "", 25, colorBlack)
	p.pdf.SetX(pdfMarginL + 45)
	p.pdf.MultiCell(pdfContentW-45, 30, p.tr(text), "", "C", false)
}

func (p *pdfWriter) programmePage(doc Document) {
	p.pdf.AddPage()
	p.font("Helvetica", "B", 14, colorOrange)
	p.pdf.CellFormat(pdfContentW, 20, p.tr("Programme de la Formation"), "", 1, "L", false, 0, "")
	p.pdf.Ln(20)

	for _, g := range doc.Groups {
		p.ensureSpace(16)
		p.font("Helvetica", "B", 12, colorBlack)
		p.pdf.SetX(pdfMarginL + pdfSubIndent)
		p.pdf.CellFormat(pdfContentW-pdfSubIndent, 16, p.tr(g.Label+":"), "", 1, "L", false, 0, "")

		p.font("Courier", "", 10, colorBlack)
		for _, node := range g.Nodes {
			p.pdf.SetX(pdfMarginL + pdfBulletIndent)
			p.pdf.MultiCell(pdfContentW-pdfBulletIndent, pdfBodyLine, p.tr("• "+orDefault(node.Title, untitledSection)), "", "L", false)
		}
		p.pdf.Ln(10)
	}
}

func (p *pdfWriter) block(b Block) {
	switch b.Kind {
	case BlockDay:
		p.dayBanner(b.Text)
	case BlockSection:
		p.ensureSpace(30)
		p.font("Helvetica", "B", 14, colorOrange)
		p.pdf.MultiCell(pdfContentW, 20, p.tr(b.Text), "", "L", false)
		p.pdf.Ln(10)
	case BlockSubsection:
		p.ensureSpace(20)
		p.font("Helvetica", "B", 12, colorBlack)
		p.pdf.SetX(pdfMarginL + pdfSubIndent)
		p.pdf.MultiCell(pdfContentW-pdfSubIndent, 16, p.tr(b.Text), "", "L", false)
		p.pdf.Ln(5)
	case BlockBody:
		p.paragraph(b.Text, "", colorBlack)
	case BlockExample:
		p.paragraph(b.Text, "I", colorExample)
	case BlockBullets:
		p.bullets(b.Lines)
	case BlockCode:
		p.code(b.Lines)
	case BlockTable:
		p.table(b.Rows)
	}
}

func (p *pdfWriter) dayBanner(label string) {
	p.pdf.AddPage()
	y := p.pdf.GetY()
	setFill(p.pdf, colorCodeBG)
	setDraw(p.pdf, colorOrange)
	p.pdf.SetLineWidth(1)
	p.pdf.Rect(pdfMarginL, y, pdfContentW, 40, "FD")

	p.font("Helvetica", "B", 20, colorTeal)
	p.pdf.SetXY(pdfMarginL+10, y+10)
	p.pdf.CellFormat(pdfContentW-20, 20, p.tr(label), "", 1, "L", false, 0, "")
	p.pdf.SetY(y + 40 + 20)
}

func (p *pdfWriter) paragraph(text, style string, color rgb) {
	width := pdfContentW - pdfBodyIndent - pdfRightIndent
	p.ensureSpace(float64(estimateLines(text, pdfBodyCharsPerLine)) * pdfBodyLine)

	p.font("Helvetica", style, 10, color)
	p.pdf.SetX(pdfMarginL + pdfBodyIndent)
	p.pdf.MultiCell(width, pdfBodyLine, p.tr(text), "", "J", false)
	p.pdf.Ln(6)
}

func (p *pdfWriter) bullets(items []string) {
	width := pdfContentW - pdfBulletIndent - pdfRightIndent
	p.font("Courier", "", 10, colorBlack)
	for _, item := range items {
		p.ensureSpace(float64(estimateLines(item, pdfBulletCharsPerLine)) * pdfBodyLine)
		p.pdf.SetX(pdfMarginL + pdfBulletIndent)
		p.pdf.MultiCell(width, pdfBodyLine, p.tr("• "+item), "", "L", false)
	}
	p.pdf.Ln(8)
}

// code keeps literal lines on a light grey band in Courier.
func (p *pdfWriter) code(lines []string) {
	width := pdfContentW - pdfBodyIndent - pdfRightIndent
	p.ensureSpace(float64(len(lines))*pdfCodeLine + 12)

	p.font("Courier", "", 9, colorCodeText)
	setFill(p.pdf, colorCodeBG)
	x := pdfMarginL + pdfBodyIndent

	p.pdf.SetX(x)
	p.pdf.CellFormat(width, 6, "", "", 1, "L", true, 0, "")
	for _, line := range lines {
		p.pdf.SetX(x)
		p.pdf.CellFormat(width, pdfCodeLine, p.tr("  "+line), "", 1, "L", true, 0, "")
	}
	p.pdf.SetX(x)
	p.pdf.CellFormat(width, 6, "", "", 1, "L", true, 0, "")
	p.pdf.Ln(8)
}

func (p *pdfWriter) table(rows [][]string) {
	const pad = 4.0
	cols := len(rows[0])
	colW := (pdfContentW - pdfBodyIndent - pdfRightIndent) / float64(cols)
	left := pdfMarginL + pdfBodyIndent

	setDraw(p.pdf, colorTableGrid)
	p.pdf.SetLineWidth(1)
	p.pdf.SetAutoPageBreak(false, pdfMarginB)
	defer p.pdf.SetAutoPageBreak(true, pdfMarginB)

	for i, row := range rows {
		style := tableRowStyle(i)
		fontStyle := ""
		if style.Bold {
			fontStyle = "B"
		}
		p.font("Helvetica", fontStyle, 10, style.Text)

		lines := 1
		cells := make([]string, cols)
		for j, cell := range row {
			cells[j] = p.tr(cell)
			if n := len(p.pdf.SplitLines([]byte(cells[j]), colW-2*pad)); n > lines {
				lines = n
			}
		}
		rowH := float64(lines)*12 + 2*pad
		if p.pdf.GetY()+rowH > pdfBottom {
			p.pdf.AddPage()
			setDraw(p.pdf, colorTableGrid)
			p.font("Helvetica", fontStyle, 10, style.Text)
		}

		y := p.pdf.GetY()
		for j, cell := range cells {
			x := left + float64(j)*colW
			setFill(p.pdf, style.Fill)
			p.pdf.Rect(x, y, colW, rowH, "FD")
			p.pdf.SetXY(x+pad, y+pad)
			p.pdf.MultiCell(colW-2*pad, 12, cell, "", "C", false)
		}
		p.pdf.SetXY(pdfMarginL, y+rowH)
	}
	p.pdf.Ln(10)
}

// ensureSpace starts a new page when a block of height h would cross the
// bottom margin. Blocks taller than a page are left to flow.
func (p *pdfWriter) ensureSpace(h float64) {
	if h > pdfBottom-pdfMarginT {
		h = pdfBodyLine * 2
	}
	if p.pdf.GetY()+h > pdfBottom {
		p.pdf.AddPage()
	}
}

func (p *pdfWriter) font(family, style string, size float64, color rgb) {
	p.pdf.SetFont(family, style, size)
	p.pdf.SetTextColor(color[0], color[1], color[2])
}

func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c[0], c[1], c[2]) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c[0], c[1], c[2]) }

// imageFormat names the image type the way fpdf expects it.
func imageFormat(path string) (string, error) {
	_, _, format, err := imageInfo(path)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(format), nil
}
