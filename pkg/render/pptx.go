package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const emuPerInch = 914400

// Slide geometry in inches (4:3, 10 x 7.5).
const (
	slideW = 10.0
	slideH = 7.5

	slideMarginTop    = 0.4
	slideBottomMargin = 0.5
	slideLeft         = 0.8
	slideContentW     = 8.0
	slideLineSpacing  = 0.2

	slideLineHeight         = 0.4
	slideBodyCharsPerLine   = 70
	slideBulletCharsPerLine = 50
	slideTableHeight        = 1.5
	slideTextMaxHeight      = 2.5
)

const (
	hexOrange    = "FF7900"
	hexOrangeAlt = "FF6600"
	hexTeal      = "0097B2"
	hexBlack     = "000000"
	hexCodeText  = "323232"
	hexCodeFill  = "FEFEFE"
	hexExample   = "006600"
	hexTableHead = "85B3DE"
	hexTableBody = "F7F5F5"
)

type slide struct {
	shapes  []string
	nextID  int
	hasLogo bool
}

func (s *slide) id() int {
	s.nextID++
	return s.nextID
}

type deckLogo struct {
	data   []byte
	ext    string
	width  float64
	height float64
}

// deck builds slides with the running-offset layout: blocks are stacked
// from the top and a new slide starts when the estimated height of the
// next block would not fit.
type deck struct {
	slides []*slide
	cur    *slide
	top    float64
	logo   *deckLogo
	warn   WarnFunc
}

// RenderPPTX writes doc as an Office Open XML presentation: a title slide,
// a presenter slide, a plan slide, then the content.
func RenderPPTX(doc Document, w io.Writer, opts Options) error {
	d := &deck{warn: opts.Warn}
	if d.warn == nil {
		d.warn = nopWarn
	}
	d.loadLogo(opts.LogoPath)

	d.titleSlide(doc.Title)
	d.presenterSlide(doc.Trainer)
	d.planSlide(doc)

	for _, b := range Flatten(doc, d.warn) {
		d.block(b)
	}
	return d.write(w, doc)
}

func (d *deck) loadLogo(path string) {
	if path == "" {
		return
	}
	pw, ph, format, err := imageInfo(path)
	if err != nil {
		d.warn("Logo is not a readable image", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		d.warn("Logo could not be read", map[string]interface{}{"path": path, "error": err.Error()})
		return
	}
	const width = 1.5
	d.logo = &deckLogo{data: data, ext: format, width: width, height: width * float64(ph) / float64(pw)}
}

func (d *deck) newSlide(bar string) *slide {
	s := &slide{nextID: 1}
	d.slides = append(d.slides, s)
	s.shapes = append(s.shapes, barShape(s.id(), bar))
	return s
}

func (d *deck) addLogo(s *slide, x, y float64) {
	if d.logo == nil {
		return
	}
	s.hasLogo = true
	s.shapes = append(s.shapes, pictureShape(s.id(), x, y, d.logo.width, d.logo.height))
}

func (d *deck) titleSlide(subject string) {
	s := d.newSlide(hexOrange)
	d.addLogo(s, 8, 0.5)
	s.shapes = append(s.shapes,
		textShape(s.id(), 0.8, 2.8, 8, 1, []paragraph{{runs: []run{{text: "Formation", size: 60, bold: true, color: hexOrange}}}}),
		textShape(s.id(), 2, 4, 8, 1, []paragraph{{runs: []run{{text: subject, size: 24, color: hexBlack}}}}),
	)
}

func (d *deck) presenterSlide(trainer string) {
	s := d.newSlide(hexOrangeAlt)
	d.addLogo(s, 8, 0.5)
	s.shapes = append(s.shapes,
		textShape(s.id(), 0.8, 2.8, 8, 1, []paragraph{{runs: []run{{text: "Présenté par", size: 60, bold: true, color: hexBlack}}}}),
		textShape(s.id(), 2.8, 4.2, 6, 0.6, []paragraph{{runs: []run{{text: trainer, size: 24, color: hexBlack}}}}),
		textShape(s.id(), 2.8, 4.9, 6, 0.5, []paragraph{{runs: []run{{text: "Formateur", size: 18, color: hexBlack}}}}),
	)
}

func (d *deck) planSlide(doc Document) {
	s := d.newSlide(hexOrangeAlt)
	d.addLogo(s, 8, 0.5)
	s.shapes = append(s.shapes,
		textShape(s.id(), 0.8, 2.8, 8, 1, []paragraph{{runs: []run{{text: "Plan de formation", size: 60, bold: true, color: hexBlack}}}}),
	)
	if doc.Daily && len(doc.Groups) > 0 {
		labels := make([]string, 0, len(doc.Groups))
		for _, g := range doc.Groups {
			labels = append(labels, g.Label)
		}
		s.shapes = append(s.shapes,
			textShape(s.id(), 2, 4, 8, 1, []paragraph{{runs: []run{{text: strings.Join(labels, " · "), size: 24, color: hexBlack}}}}),
		)
	}
}

// checkSpace returns the offset a block of height h starts at, opening a
// new content slide when it would cross the bottom margin.
func (d *deck) checkSpace(h float64) float64 {
	if d.cur == nil || d.top+h > slideH-slideBottomMargin {
		s := d.newSlide(hexOrange)
		d.addLogo(s, 0.5, 7)
		d.cur = s
		d.top = slideMarginTop
	}
	return d.top
}

func (d *deck) block(b Block) {
	switch b.Kind {
	case BlockDay:
		s := d.newSlide(hexOrange)
		d.addLogo(s, 8, 0.5)
		s.shapes = append(s.shapes,
			textShape(s.id(), 0.8, 2.8, 8, 1, []paragraph{{runs: []run{{text: b.Text, size: 54, bold: true, color: hexTeal}}}}),
		)
		d.cur = nil

	case BlockSection:
		top := d.checkSpace(0.6)
		d.add(textShape(d.cur.id(), slideLeft, top, slideContentW, 0.5, []paragraph{{runs: []run{{text: b.Text, size: 20, bold: true, color: hexOrange}}}}))
		d.top += 0.6

	case BlockSubsection:
		top := d.checkSpace(0.5)
		d.add(textShape(d.cur.id(), slideLeft, top, slideContentW, 0.5, []paragraph{{runs: []run{{text: "• " + b.Text, size: 16, bold: true, color: hexBlack}}}}))
		d.top += 0.4 + slideLineSpacing

	case BlockBody, BlockExample:
		h, size := textBoxHeight(b.Text)
		top := d.checkSpace(h)
		r := run{text: b.Text, size: size, color: hexBlack}
		if b.Kind == BlockExample {
			r.italic, r.color = true, hexExample
		}
		d.add(textShape(d.cur.id(), slideLeft, top, slideContentW, h, []paragraph{{runs: []run{r}, spacing: 150}}))
		d.top += h + slideLineSpacing

	case BlockBullets:
		h := bulletsHeight(b.Lines)
		top := d.checkSpace(1)
		paras := make([]paragraph, 0, len(b.Lines))
		for _, line := range b.Lines {
			paras = append(paras, paragraph{runs: []run{{text: "• " + line, size: 15, color: hexBlack}}, spacing: 150})
		}
		d.add(textShape(d.cur.id(), slideLeft, top, slideContentW, h, paras))
		d.top += h + slideLineSpacing

	case BlockCode:
		h := 0.4 + 0.3*float64(len(b.Lines))
		top := d.checkSpace(h)
		d.add(codeShape(d.cur.id(), slideLeft, top, slideContentW, h, b.Lines))
		d.top += h + slideLineSpacing

	case BlockTable:
		top := d.checkSpace(slideTableHeight)
		d.add(tableShape(d.cur.id(), slideLeft, top, slideContentW, slideTableHeight, b.Rows))
		d.top += slideTableHeight + slideLineSpacing
	}
}

func (d *deck) add(shape string) {
	d.cur.shapes = append(d.cur.shapes, shape)
}

// textBoxHeight estimates a body box at 70 characters per line. Boxes
// taller than the cap keep the cap and shrink the font instead.
func textBoxHeight(text string) (float64, float64) {
	h := float64(estimateLines(text, slideBodyCharsPerLine)) * slideLineHeight
	size := 13.0
	for h > slideTextMaxHeight && size > 9 {
		h -= slideLineHeight
		size--
	}
	if h > slideTextMaxHeight {
		h = slideTextMaxHeight
	}
	return h, size
}

func bulletsHeight(bullets []string) float64 {
	total := 0
	for _, b := range bullets {
		total += len([]rune(b))
	}
	return float64(total/slideBulletCharsPerLine+len(bullets)) * slideLineHeight
}

func (d *deck) write(w io.Writer, doc Document) error {
	zw := zip.NewWriter(w)

	files := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML(len(d.slides))},
		{"_rels/.rels", rootRelsXML},
		{"docProps/app.xml", appXML(len(d.slides))},
		{"docProps/core.xml", coreXML(doc.Title, doc.Trainer)},
		{"ppt/presentation.xml", presentationXML(len(d.slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(d.slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for _, f := range files {
		if err := writeZipFile(zw, f.name, []byte(f.body)); err != nil {
			return err
		}
	}

	logoName := ""
	if d.logo != nil {
		logoName = "logo." + d.logo.ext
		if err := writeZipFile(zw, "ppt/media/"+logoName, d.logo.data); err != nil {
			return err
		}
	}

	for i, s := range d.slides {
		n := i + 1
		if err := writeZipFile(zw, fmt.Sprintf("ppt/slides/slide%d.xml", n), []byte(slideXML(s))); err != nil {
			return err
		}
		rels := slideRelsXML(s.hasLogo, logoName)
		if err := writeZipFile(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), []byte(rels)); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish pptx: %w", err)
	}
	return nil
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

type run struct {
	text   string
	size   float64
	bold   bool
	italic bool
	color  string
	font   string
}

type paragraph struct {
	runs    []run
	spacing int
}

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func xfrm(x, y, w, h float64) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, emu(x), emu(y), emu(w), emu(h))
}

func runXML(r run) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` lang="fr-FR" sz="%d"`, int(r.size*100))
	if r.bold {
		attrs.WriteString(` b="1"`)
	}
	if r.italic {
		attrs.WriteString(` i="1"`)
	}
	font := r.font
	if font == "" {
		font = "Inter"
	}
	return fmt.Sprintf(`<a:r><a:rPr%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
		attrs.String(), r.color, font, escape(r.text))
}

func paragraphXML(p paragraph) string {
	var b strings.Builder
	b.WriteString("<a:p>")
	if p.spacing > 0 {
		fmt.Fprintf(&b, `<a:pPr><a:lnSpc><a:spcPct val="%d"/></a:lnSpc></a:pPr>`, p.spacing*1000)
	}
	for _, r := range p.runs {
		b.WriteString(runXML(r))
	}
	b.WriteString("</a:p>")
	return b.String()
}

func textBody(paras []paragraph) string {
	var b strings.Builder
	b.WriteString(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:noAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paras {
		b.WriteString(paragraphXML(p))
	}
	b.WriteString(`</p:txBody>`)
	return b.String()
}

func textShape(id int, x, y, w, h float64, paras []paragraph) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>%s</p:sp>`,
		id, id, xfrm(x, y, w, h), textBody(paras))
}

func barShape(id int, fill string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Bar %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr></p:sp>`,
		id, id, xfrm(0, 0, 0.2, slideH), fill)
}

// codeShape is a dashed, near-white box holding the lines in Consolas.
func codeShape(id int, x, y, w, h float64, lines []string) string {
	paras := make([]paragraph, 0, len(lines))
	for _, l := range lines {
		paras = append(paras, paragraph{runs: []run{{text: l, size: 12, color: hexCodeText, font: "Consolas"}}})
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Code %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln w="11430"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:prstDash val="dash"/></a:ln></p:spPr>%s</p:sp>`,
		id, id, xfrm(x, y, w, h), hexCodeFill, hexBlack, textBody(paras))
}

func pictureShape(id int, x, y, w, h float64) string {
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Logo %d"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill><p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, id, xfrm(x, y, w, h))
}

// tableShape styles the first row as the header.
func tableShape(id int, x, y, w, h float64, rows [][]string) string {
	cols := len(rows[0])
	colW := emu(w) / int64(cols)
	rowH := emu(h) / int64(len(rows))

	var b strings.Builder
	fmt.Fprintf(&b, `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="Table %d"/><p:cNvGraphicFramePr><a:graphicFrameLocks noGrp="1"/></p:cNvGraphicFramePr><p:nvPr/></p:nvGraphicFramePr>`, id, id)
	fmt.Fprintf(&b, `<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`, emu(x), emu(y), emu(w), emu(h))
	b.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl><a:tblPr firstRow="1" bandRow="1"/><a:tblGrid>`)
	for i := 0; i < cols; i++ {
		fmt.Fprintf(&b, `<a:gridCol w="%d"/>`, colW)
	}
	b.WriteString(`</a:tblGrid>`)

	for i, row := range rows {
		fill, bold := hexTableBody, false
		if i == 0 {
			fill, bold = hexTableHead, true
		}
		fmt.Fprintf(&b, `<a:tr h="%d">`, rowH)
		for _, cell := range row {
			b.WriteString(`<a:tc><a:txBody><a:bodyPr/><a:lstStyle/>`)
			b.WriteString(paragraphXML(paragraph{runs: []run{{text: cell, size: 12, bold: bold, color: hexBlack}}}))
			fmt.Fprintf(&b, `</a:txBody><a:tcPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:tcPr></a:tc>`, fill)
		}
		b.WriteString(`</a:tr>`)
	}
	b.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	return b.String()
}

func slideXML(s *slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sld %s %s %s>`, nsA, nsR, nsP)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(groupHeader)
	for _, shape := range s.shapes {
		b.WriteString(shape)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}
