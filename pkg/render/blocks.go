package render

import (
	"strings"
)

type BlockKind int

const (
	BlockDay BlockKind = iota
	BlockSection
	BlockSubsection
	BlockBody
	BlockExample
	BlockBullets
	BlockCode
	BlockTable
)

// Block is one unit of layout. Text is set for headings, body and example;
// Lines for bullets and code; Rows for tables, header first.
type Block struct {
	Kind  BlockKind
	Text  string
	Lines []string
	Rows  [][]string
}

const (
	untitledSection    = "Sans titre"
	untitledSubsection = "Sous-section"
)

// Flatten walks the document in plan order. Within a sub-section the order
// is body, example, bullets, code, table. Malformed optional blocks are
// reported through warn and left out.
func Flatten(doc Document, warn WarnFunc) []Block {
	if warn == nil {
		warn = nopWarn
	}

	var blocks []Block
	for _, g := range doc.Groups {
		if doc.Daily {
			blocks = append(blocks, Block{Kind: BlockDay, Text: g.Label})
		}
		for _, node := range g.Nodes {
			blocks = append(blocks, Block{Kind: BlockSection, Text: orDefault(node.Title, untitledSection)})

			for _, sub := range node.Subsections {
				blocks = append(blocks, Block{Kind: BlockSubsection, Text: orDefault(sub.Title, untitledSubsection)})
				where := map[string]interface{}{"section": node.Title, "subsection": sub.Title}

				if body := strings.TrimSpace(sub.Content); body != "" {
					blocks = append(blocks, Block{Kind: BlockBody, Text: body})
				}
				if ex := strings.TrimSpace(sub.Example); ex != "" {
					blocks = append(blocks, Block{Kind: BlockExample, Text: "Exemple: " + ex})
				}

				if bullets, err := sub.BulletList(); err != nil {
					warn("Skipping malformed bullets", withError(where, err))
				} else if len(bullets) > 0 {
					blocks = append(blocks, Block{Kind: BlockBullets, Lines: bullets})
				}

				if code, err := sub.CodeLines(); err != nil {
					warn("Skipping malformed code block", withError(where, err))
				} else if len(code) > 0 {
					blocks = append(blocks, Block{Kind: BlockCode, Lines: expandTabs(code)})
				}

				if rows, err := sub.TableRows(); err != nil {
					warn("Skipping malformed table", withError(where, err))
				} else if rows = squareRows(rows); len(rows) > 0 {
					blocks = append(blocks, Block{Kind: BlockTable, Rows: rows})
				}
			}
		}
	}
	return blocks
}

// squareRows drops empty rows and pads the rest to the widest row.
func squareRows(rows [][]string) [][]string {
	width := 0
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		if len(r) > width {
			width = len(r)
		}
		out = append(out, r)
	}
	for i, r := range out {
		for len(r) < width {
			r = append(r, "")
		}
		out[i] = r
	}
	return out
}

func expandTabs(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.ReplaceAll(strings.TrimRight(l, "\r"), "\t", "    ")
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func withError(details map[string]interface{}, err error) map[string]interface{} {
	out := make(map[string]interface{}, len(details)+1)
	for k, v := range details {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}

// estimateLines is the character-count heuristic used to decide page and
// slide breaks.
func estimateLines(text string, charsPerLine int) int {
	return len([]rune(text))/charsPerLine + 1
}
