package reports

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/naz99/Autism-App/internal/diagnosis"
)

// document is the pdfcpu page-description form consumed by api.Create.
// Coordinates use pdfcpu's default lower-left origin.
type document struct {
	Paper string          `json:"paper"`
	Pages map[string]page `json:"pages"`
}

type page struct {
	Content content `json:"content"`
}

type content struct {
	Text []textBox `json:"text"`
}

type textBox struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"pos"`
	Font     font       `json:"font"`
}

type font struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Render produces a complete PDF for one diagnosis result. identity may
// be empty; the document falls back to an anonymous heading. Rendering
// never fails on a valid result; an error here is a defect, not an
// expected path.
func Render(identity string, result *diagnosis.Result) ([]byte, error) {
	doc := buildDocument(Lines(identity, result))

	desc, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal report document: %w", err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(desc), &buf, nil); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return buf.Bytes(), nil
}

// Lines returns the text lines of the report in document order: title,
// identity, all 12 labeled inputs, exactly one result line, and the
// model footer.
func Lines(identity string, result *diagnosis.Result) []string {
	if identity == "" {
		identity = AnonymousIdentity
	}

	fields := result.Input.Fields()
	lines := make([]string, 0, len(fields)+4)

	lines = append(lines,
		"Autism Spectrum Disorder Screening Report",
		"Patient: "+identity,
	)
	for _, f := range fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	lines = append(lines,
		"Screening Result: "+result.Label.Display(),
		fmt.Sprintf(
			"Model %s, generated %s",
			result.ModelVersion,
			result.DiagnosedAt.Format("2006-01-02 15:04 UTC"),
		),
	)

	return lines
}

func buildDocument(lines []string) document {
	const (
		left      = 72.0
		top       = 770.0
		leading   = 22.0
		titleSize = 16
		bodySize  = 11
	)

	boxes := make([]textBox, 0, len(lines))
	y := top
	for i, line := range lines {
		size := bodySize
		if i == 0 {
			size = titleSize
		}

		boxes = append(boxes, textBox{
			Value:    line,
			Position: [2]float64{left, y},
			Font:     font{Name: "Helvetica", Size: size},
		})
		y -= leading
	}

	return document{
		Paper: "A4",
		Pages: map[string]page{
			"1": {Content: content{Text: boxes}},
		},
	}
}
