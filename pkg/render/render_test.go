package render

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNode = `{
	"title": "Introduction",
	"subsections": [
		{
			"title": "Pourquoi Go",
			"content": "Go est un langage compilé.",
			"example": "Un serveur HTTP en dix lignes.",
			"bullets": ["simple", "rapide"],
			"code": ["package main", "\tfunc main() {}"],
			"table": [["Langage", "Typage"], ["Go", "statique"], ["Python"]]
		}
	]
}`

type warnings struct {
	messages []string
}

func (w *warnings) add(msg string, _ map[string]interface{}) {
	w.messages = append(w.messages, msg)
}

func TestParseContent_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		daily  bool
		groups int
		labels []string
	}{
		{name: "single node", raw: sampleNode, groups: 1, labels: []string{""}},
		{name: "list of nodes", raw: "[" + sampleNode + "," + sampleNode + "]", groups: 1, labels: []string{""}},
		{name: "nested lists", raw: "[[" + sampleNode + "],[[" + sampleNode + "]]]", groups: 2, labels: []string{"", ""}},
		{name: "nested lists in daily mode", raw: "[[" + sampleNode + "],[" + sampleNode + "]]", daily: true, groups: 2, labels: []string{"Jour 1", "Jour 2"}},
		{name: "day objects", raw: `[{"day": 2, "content": [` + sampleNode + `]}, {"day": 3, "content": [` + sampleNode + `]}]`, daily: true, groups: 2, labels: []string{"Jour 2", "Jour 3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := ParseContent(json.RawMessage(tt.raw), tt.daily, nil)
			require.NoError(t, err)
			require.Len(t, groups, tt.groups)
			for i, g := range groups {
				assert.Equal(t, tt.labels[i], g.Label)
				assert.NotEmpty(t, g.Nodes)
				assert.Equal(t, "Introduction", g.Nodes[0].Title)
			}
		})
	}
}

func TestParseContent_SkipsUnreadableNodes(t *testing.T) {
	w := &warnings{}
	groups, err := ParseContent(json.RawMessage(`[42, `+sampleNode+`]`), false, w.add)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Nodes, 1)
	assert.Equal(t, []string{"Skipping unreadable section"}, w.messages)
}

func TestParseContent_Empty(t *testing.T) {
	for _, raw := range []string{"", "[]", "[[]]", `[{"day": 1, "content": []}]`} {
		_, err := ParseContent(json.RawMessage(raw), false, nil)
		assert.ErrorIs(t, err, ErrNoContent, raw)
	}
}

func TestFlatten_Order(t *testing.T) {
	groups, err := ParseContent(json.RawMessage(sampleNode), true, nil)
	require.NoError(t, err)

	blocks := Flatten(Document{Title: "Go", Daily: true, Groups: groups}, nil)

	kinds := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind
	}
	assert.Equal(t, []BlockKind{
		BlockDay, BlockSection, BlockSubsection, BlockBody, BlockExample, BlockBullets, BlockCode, BlockTable,
	}, kinds)
	assert.Equal(t, "Jour 1", blocks[0].Text)
	assert.Equal(t, "Exemple: Un serveur HTTP en dix lignes.", blocks[4].Text)
	assert.Equal(t, "    func main() {}", blocks[6].Lines[1])
	assert.Equal(t, []string{"Python", ""}, blocks[7].Rows[2])
}

func TestFlatten_SkipsMalformedBlocks(t *testing.T) {
	raw := `{"title": "", "subsections": [{"title": "", "content": "texte", "bullets": "pas une liste", "table": [["a"], "b"], "code": [1, 2]}]}`
	groups, err := ParseContent(json.RawMessage(raw), false, nil)
	require.NoError(t, err)

	w := &warnings{}
	blocks := Flatten(Document{Groups: groups}, w.add)

	require.Len(t, blocks, 3)
	assert.Equal(t, "Sans titre", blocks[0].Text)
	assert.Equal(t, "Sous-section", blocks[1].Text)
	assert.Equal(t, BlockBody, blocks[2].Kind)
	assert.Equal(t, []string{"Skipping malformed bullets", "Skipping malformed code block", "Skipping malformed table"}, w.messages)
}

func TestTableRowStyle(t *testing.T) {
	header, body := tableRowStyle(0), tableRowStyle(1)

	assert.NotEqual(t, header, body)
	assert.True(t, header.Bold)
	assert.Equal(t, body, tableRowStyle(5))
}

func TestResolveLogo(t *testing.T) {
	dir := t.TempDir()

	path, err := ResolveLogo(filepath.Join(dir, "missing.png"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultLogoName), path)

	w, h, err := imageSize(path)
	require.NoError(t, err)
	assert.Equal(t, 150, w)
	assert.Equal(t, 50, h)

	again, err := ResolveLogo(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func sampleDocument(t *testing.T, daily bool) Document {
	t.Helper()
	groups, err := ParseContent(json.RawMessage("[["+sampleNode+"],["+sampleNode+"]]"), daily, nil)
	require.NoError(t, err)
	return Document{Title: "Programmer en Go", Trainer: "Camille Martin", Daily: daily, Groups: groups}
}

func TestRenderPDF(t *testing.T) {
	dir := t.TempDir()
	logo, err := ResolveLogo("", dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = RenderPDF(sampleDocument(t, true), &buf, Options{LogoPath: logo, uncompressed: true})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Contains(t, out, "Formation")
	assert.Contains(t, out, "Programme de la Formation")
	assert.Contains(t, out, "Jour 2")
	// header row fill
	assert.Contains(t, out, "0.000 0.592 0.698 rg")
}

func TestRenderPDF_MissingLogoWarns(t *testing.T) {
	w := &warnings{}
	var buf bytes.Buffer

	err := RenderPDF(sampleDocument(t, false), &buf, Options{LogoPath: filepath.Join(t.TempDir(), "nope.png"), Warn: w.add})

	require.NoError(t, err)
	assert.Contains(t, w.messages, "Logo is not a readable image")
	assert.NotZero(t, buf.Len())
}

func TestRenderPDF_AccentedTable(t *testing.T) {
	node := `[{"title": "Outillage", "subsections": [{
		"title": "Commandes",
		"content": "Résumé des outils.",
		"table": [
			["Outil", "Rôle", "Coût"],
			["go vet", "analyse statique → détecte les erreurs fréquentes avant l'exécution du programme", "0 €"],
			["gofmt", "met en forme le code source", "gratuit"]
		]
	}]}]`
	groups, err := ParseContent(json.RawMessage(node), false, nil)
	require.NoError(t, err)
	doc := Document{Title: "Outils Go", Trainer: "Zoé", Groups: groups}

	var buf bytes.Buffer
	require.NotPanics(t, func() {
		err = RenderPDF(doc, &buf, Options{uncompressed: true})
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "R\xf4le")
	assert.Contains(t, out, "0 \x80")
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(body)
	}
	return files
}

func TestRenderPPTX(t *testing.T) {
	dir := t.TempDir()
	logo, err := ResolveLogo("", dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPPTX(sampleDocument(t, true), &buf, Options{LogoPath: logo}))

	files := readZip(t, buf.Bytes())
	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/media/logo.png",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
	} {
		assert.Contains(t, files, part)
	}

	assert.Contains(t, files["ppt/slides/slide1.xml"], "<a:t>Formation</a:t>")
	assert.Contains(t, files["ppt/slides/slide1.xml"], "<a:t>Programmer en Go</a:t>")
	assert.Contains(t, files["ppt/slides/slide2.xml"], "<a:t>Camille Martin</a:t>")
	assert.Contains(t, files["ppt/slides/slide3.xml"], "<a:t>Plan de formation</a:t>")
	assert.Contains(t, files["ppt/slides/slide4.xml"], "<a:t>Jour 1</a:t>")
	assert.Contains(t, files["ppt/slides/_rels/slide1.xml.rels"], "../media/logo.png")

	slides := 0
	for name := range files {
		if strings.HasPrefix(name, "ppt/slides/slide") {
			slides++
		}
	}
	assert.Contains(t, files["ppt/presentation.xml"], `<p:sldId id="256" r:id="rId2"/>`)
	assert.Contains(t, files["[Content_Types].xml"], "/ppt/slides/slide"+strconv.Itoa(slides)+".xml")

	var content strings.Builder
	for i := 5; i <= slides; i++ {
		content.WriteString(files["ppt/slides/slide"+strconv.Itoa(i)+".xml"])
	}
	deck := content.String()
	assert.Contains(t, deck, "<a:t>Introduction</a:t>")
	assert.Contains(t, deck, `typeface="Consolas"`)
	assert.Contains(t, deck, `<a:srgbClr val="85B3DE"/>`)
	assert.Contains(t, deck, `<a:prstDash val="dash"/>`)
}

func TestRenderPPTX_EscapesText(t *testing.T) {
	doc := sampleDocument(t, false)
	doc.Title = `A & B <C>`

	var buf bytes.Buffer
	require.NoError(t, RenderPPTX(doc, &buf, Options{}))

	files := readZip(t, buf.Bytes())
	assert.Contains(t, files["ppt/slides/slide1.xml"], "A &amp; B &lt;C&gt;")
	assert.NotContains(t, files, "ppt/media/logo.png")
}

func TestTextBoxHeight(t *testing.T) {
	h, size := textBoxHeight("court")
	assert.InDelta(t, 0.4, h, 1e-9)
	assert.Equal(t, 13.0, size)

	h, size = textBoxHeight(strings.Repeat("x", 70*20))
	assert.LessOrEqual(t, h, slideTextMaxHeight)
	assert.Equal(t, 9.0, size)
}
