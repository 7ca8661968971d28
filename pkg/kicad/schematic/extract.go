package schematic

import (
	"fmt"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/refdes"
	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/sexpr"
)

// Extract parses a full schematic document and collects its structural
// metadata in a single depth-first traversal. Extraction is pure and
// deterministic: identical input always yields an identical value with
// stable ordering.
func Extract(text string) (*ParsedMetadata, error) {
	root, err := sexpr.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schematic: %w", err)
	}

	e := &extractor{seenNets: make(map[string]bool)}
	e.walk(root)

	meta := &ParsedMetadata{
		Components:     e.components,
		Nets:           e.nets,
		ComponentCount: len(e.components),
		WireCount:      e.wireCount,
		NetCount:       len(e.nets),
		SheetCount:     e.sheetCount,
		Version:        e.version,
		Generator:      e.generator,
		Title:          e.title,
	}
	meta.UniqueComponents = rollupComponents(e.components)
	meta.BoundingBox = componentBounds(e.components)
	meta.Footprints = footprintStats(e.components)
	meta.Warnings = e.warnings(meta)
	return meta, nil
}

type extractor struct {
	components []Component
	nets       []Net
	seenNets   map[string]bool
	wireCount  int
	sheetCount int
	version    int
	generator  string
	title      string
}

// walk descends into every list regardless of tag, so symbols and labels
// are found wherever they sit in the tree.
func (e *extractor) walk(node sexpr.Node) {
	list, ok := node.(*sexpr.List)
	if !ok {
		return
	}

	switch list.Tag() {
	case "version":
		if e.version == 0 {
			if v, ok := list.Int(1); ok {
				e.version = v
			}
		}
	case "generator":
		if e.generator == "" {
			e.generator, _ = list.Text(1)
		}
	case "title":
		if e.title == "" {
			e.title, _ = list.Text(1)
		}
	case "symbol":
		if c, ok := readComponent(list); ok {
			e.components = append(e.components, c)
		}
	case "label", "global_label", "hierarchical_label":
		e.recordNet(list)
	case "wire":
		// Counted only; no connectivity model is built.
		e.wireCount++
	case "sheet":
		e.sheetCount++
	}

	for _, item := range list.Items {
		e.walk(item)
	}
}

// readComponent reads a placed symbol instance. Symbols without a lib_id
// (library definitions, sub-units) are skipped.
func readComponent(list *sexpr.List) (Component, bool) {
	libID, ok := list.Find("lib_id")
	if !ok {
		return Component{}, false
	}

	c := Component{}
	c.LibID, _ = libID.Text(1)
	if uuid, ok := list.Find("uuid"); ok {
		c.UUID, _ = uuid.Text(1)
	}
	if at, ok := list.Find("at"); ok {
		c.Position.X, _ = at.Float(1)
		c.Position.Y, _ = at.Float(2)
		// Angle is optional and defaults to 0.
		c.Position.Angle, _ = at.Float(3)
	}

	// Reference/Value/Footprint are matched by property name, not by
	// position in the child list.
	for _, prop := range list.FindAll("property") {
		name, _ := prop.Text(1)
		value, _ := prop.Text(2)
		switch name {
		case "Reference":
			c.Reference = value
		case "Value":
			c.Value = value
		case "Footprint":
			c.Footprint = value
		}
	}
	return c, true
}

// recordNet records a net by name; the first occurrence wins across all
// three label kinds.
func (e *extractor) recordNet(list *sexpr.List) {
	name, ok := list.Text(1)
	if !ok || e.seenNets[name] {
		return
	}
	e.seenNets[name] = true
	e.nets = append(e.nets, Net{Name: name, Kind: NetKind(list.Tag())})
}

// rollupComponents groups components by lib_id in first-seen order,
// collecting the count and distinct values per group.
func rollupComponents(components []Component) []UniqueComponent {
	index := make(map[string]int)
	var rollup []UniqueComponent
	for _, c := range components {
		i, ok := index[c.LibID]
		if !ok {
			i = len(rollup)
			index[c.LibID] = i
			rollup = append(rollup, UniqueComponent{LibID: c.LibID})
		}
		rollup[i].Count++
		if c.Value != "" && !contains(rollup[i].Values, c.Value) {
			rollup[i].Values = append(rollup[i].Values, c.Value)
		}
	}
	return rollup
}

// componentBounds computes the bounding box over component positions
// only; wires do not contribute. All-zero when there are no components.
func componentBounds(components []Component) BoundingBox {
	if len(components) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		MinX: components[0].Position.X,
		MinY: components[0].Position.Y,
		MaxX: components[0].Position.X,
		MaxY: components[0].Position.Y,
	}
	for _, c := range components[1:] {
		bb.Expand(c.Position.X, c.Position.Y)
	}
	return bb
}

func footprintStats(components []Component) FootprintStats {
	stats := FootprintStats{}
	for _, c := range components {
		if c.Footprint == "" {
			stats.Unassigned++
			continue
		}
		stats.Assigned++
		if !contains(stats.Footprints, c.Footprint) {
			stats.Footprints = append(stats.Footprints, c.Footprint)
		}
	}
	return stats
}

// warnings derives extractor-level content warnings. These never block
// validation.
func (e *extractor) warnings(meta *ParsedMetadata) []string {
	var warnings []string

	unannotated := 0
	for _, c := range meta.Components {
		if c.Reference == "" {
			continue
		}
		d, err := refdes.Parse(c.Reference)
		if err == nil && d.Unannotated {
			unannotated++
		}
	}
	if unannotated > 0 {
		warnings = append(warnings, fmt.Sprintf("%d component(s) have unannotated references (e.g. R?); run annotation before sharing", unannotated))
	}

	if meta.SheetCount > 0 {
		warnings = append(warnings, fmt.Sprintf("schematic references %d hierarchical sheet(s) whose files are not included", meta.SheetCount))
	}

	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
