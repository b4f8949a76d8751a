package geo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/vheb/biomap/internal/logger"
)

const (
	mapWidth  = 900
	titleBand = 40.0
)

// Renderer rasterizes species occurrence maps to PNG files under a fixed
// output directory. It is stateless apart from the directory and safe for
// concurrent use.
type Renderer struct {
	outDir string
	logger *logger.Logger
}

// NewRenderer constructs a [Renderer] writing artifacts into outDir.
func NewRenderer(outDir string, logger *logger.Logger) *Renderer {
	return &Renderer{
		outDir: outDir,
		logger: logger,
	}
}

// ArtifactName returns the deterministic file name of the occurrence map for
// the given scientific name: spaces replaced with underscores, ".png" suffix.
func ArtifactName(scientificName string) string {
	return strings.ReplaceAll(strings.TrimSpace(scientificName), " ", "_") + ".png"
}

// ArtifactPath returns the absolute path of the artifact for the given
// scientific name under the renderer's output directory.
func (r *Renderer) ArtifactPath(scientificName string) string {
	return filepath.Join(r.outDir, ArtifactName(scientificName))
}

// Render draws a choropleth of the given state polygons: states present in
// occurrences are filled with their assigned color, all others with
// [AbsentColor]. The image is captioned with title and written to the output
// directory under the deterministic artifact name, which is returned
// relative to that directory.
func (r *Renderer) Render(collection *geojson.FeatureCollection, occurrences map[string]string, title string) (string, error) {
	if collection == nil || len(collection.Features) == 0 {
		return "", fmt.Errorf("empty polygon collection")
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating maps directory: %w", err)
	}

	bound := collection.Features[0].Geometry.Bound()
	for _, feature := range collection.Features[1:] {
		bound = bound.Union(feature.Geometry.Bound())
	}

	spanX := bound.Max[0] - bound.Min[0]
	spanY := bound.Max[1] - bound.Min[1]
	if spanX <= 0 || spanY <= 0 {
		return "", fmt.Errorf("degenerate polygon bounds")
	}

	mapHeight := float64(mapWidth) * spanY / spanX
	dc := gg.NewContext(mapWidth, int(mapHeight+titleBand))

	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	// Equirectangular projection into the canvas below the title band.
	project := func(p orb.Point) (float64, float64) {
		x := (p[0] - bound.Min[0]) / spanX * float64(mapWidth)
		y := titleBand + (bound.Max[1]-p[1])/spanY*mapHeight
		return x, y
	}

	for _, feature := range collection.Features {
		name, _ := feature.Properties["name"].(string)

		fill, occurs := occurrences[NormalizeToken(name)]
		if !occurs {
			fill = AbsentColor
		}

		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			r.drawPolygon(dc, geom, fill, project)
		case orb.MultiPolygon:
			for _, polygon := range geom {
				r.drawPolygon(dc, polygon, fill, project)
			}
		default:
			r.logger.Warn().Str("state", name).Msgf("skipping unsupported geometry %T", geom)
		}
	}

	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(title, mapWidth/2, titleBand/2, 0.5, 0.5)

	name := ArtifactName(title)
	if err := dc.SavePNG(filepath.Join(r.outDir, name)); err != nil {
		return "", fmt.Errorf("error saving rendered map: %w", err)
	}

	return name, nil
}

func (r *Renderer) drawPolygon(dc *gg.Context, polygon orb.Polygon, fill string, project func(orb.Point) (float64, float64)) {
	for _, ring := range polygon {
		if len(ring) == 0 {
			continue
		}

		dc.NewSubPath()
		x, y := project(ring[0])
		dc.MoveTo(x, y)
		for _, point := range ring[1:] {
			x, y = project(point)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
	}

	dc.SetFillRuleEvenOdd()
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor(BorderColor)
	dc.SetLineWidth(0.8)
	dc.Stroke()
}
