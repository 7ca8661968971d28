// Package schematic analyzes KiCad schematic text: classifying clipboard
// snippets versus standalone documents, validating structure and version,
// extracting component/net/wire metadata, choosing a paper size from the
// measured geometry and converting between the snippet and full-document
// forms.
package schematic

// Minimum supported KiCad version for schematics (6.0 = 20211014)
const MinSupportedVersion = 20211014

// CurrentVersion is the format version written into synthesized headers.
const CurrentVersion = 20231120

// Generator is the identifier written into synthesized file headers.
const Generator = "kicad_snippets"

// Format distinguishes a bare clipboard snippet from a standalone document.
type Format string

const (
	FormatFull    Format = "full"
	FormatSnippet Format = "snippet"
)

// Position is a component placement: coordinates in mm plus rotation in
// degrees.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// Component is one placed symbol instance. Instances are not deduplicated;
// two components may share a LibID. An empty Footprint means unassigned.
type Component struct {
	Reference string   `json:"reference"`
	Value     string   `json:"value"`
	Footprint string   `json:"footprint"`
	LibID     string   `json:"libId"`
	UUID      string   `json:"uuid"`
	Position  Position `json:"position"`
}

// NetKind is the label flavor a net name was declared with.
type NetKind string

const (
	NetLabel             NetKind = "label"
	NetGlobalLabel       NetKind = "global_label"
	NetHierarchicalLabel NetKind = "hierarchical_label"
)

// Net is a named connection point. Nets are deduplicated by name; the
// first occurrence decides the kind.
type Net struct {
	Name string  `json:"name"`
	Kind NetKind `json:"kind"`
}

// UniqueComponent is one entry of the lib_id rollup: how many instances
// reference the library definition and which distinct values they carry.
type UniqueComponent struct {
	LibID  string   `json:"libId"`
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

// FootprintStats splits components into footprint-assigned and unassigned,
// with the distinct set of assigned footprints.
type FootprintStats struct {
	Assigned   int      `json:"assigned"`
	Unassigned int      `json:"unassigned"`
	Footprints []string `json:"footprints"`
}

// BoundingBox is the minimal axis-aligned rectangle enclosing all
// component positions. All-zero when the document has no components.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Width returns the horizontal extent.
func (bb BoundingBox) Width() float64 {
	return bb.MaxX - bb.MinX
}

// Height returns the vertical extent.
func (bb BoundingBox) Height() float64 {
	return bb.MaxY - bb.MinY
}

// Expand grows the box to include a position.
func (bb *BoundingBox) Expand(x, y float64) {
	if x < bb.MinX {
		bb.MinX = x
	}
	if y < bb.MinY {
		bb.MinY = y
	}
	if x > bb.MaxX {
		bb.MaxX = x
	}
	if y > bb.MaxY {
		bb.MaxY = y
	}
}

// ParsedMetadata aggregates everything one extraction pass collects. A
// fresh instance is built per call and never mutated afterwards;
// re-extraction replaces it wholesale.
type ParsedMetadata struct {
	Components       []Component       `json:"components"`
	UniqueComponents []UniqueComponent `json:"uniqueComponents"`
	Nets             []Net             `json:"nets"`
	ComponentCount   int               `json:"componentCount"`
	WireCount        int               `json:"wireCount"`
	NetCount         int               `json:"netCount"`
	SheetCount       int               `json:"sheetCount"`
	BoundingBox      BoundingBox       `json:"boundingBox"`
	Footprints       FootprintStats    `json:"footprints"`
	Version          int               `json:"version"`
	Generator        string            `json:"generator,omitempty"`
	Title            string            `json:"title,omitempty"`
	Warnings         []string          `json:"warnings,omitempty"`
}

// ValidationResult is the single structured outcome of Validate. Nothing
// below the validator throws past it; every failure lands in Errors.
type ValidationResult struct {
	Valid          bool            `json:"valid"`
	Errors         []string        `json:"errors,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
	Metadata       *ParsedMetadata `json:"metadata,omitempty"`
	IsSnippet      bool            `json:"isSnippet"`
	OriginalFormat Format          `json:"originalFormat"`
}

// PaperSize is a standard sheet with its usable landscape envelope in mm.
type PaperSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions is a measured width/height pair in mm.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SheetSizeResult is the outcome of sheet-size selection.
type SheetSizeResult struct {
	Size        string     `json:"size"`
	Recommended PaperSize  `json:"recommended"`
	IsOversized bool       `json:"isOversized"`
	BoundingBox Dimensions `json:"boundingBox"`
}
