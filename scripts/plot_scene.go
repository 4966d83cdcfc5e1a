/*plot_scene draws the xy projection of a scene: the points of a table file,
colored by whether they hit the shapes of an [Intersect] config.

	$ go run plot_scene.go scene.config points.table out.png
*/
package main

import (
	"log"
	"os"

	"github.com/phil-mansfield/table"
	plt "github.com/phil-mansfield/pyplot"

	"github.com/exactgeom/exactgeom/geom"
	"github.com/exactgeom/exactgeom/io"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf(
			"Required file use: $ %s scene_config points_file out_png",
			os.Args[0],
		)
	}
	configFile, pointsFile, outFile := os.Args[1], os.Args[2], os.Args[3]

	wrap, err := io.ReadIntersectConfig(configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	shape, err := io.BuildShape(wrap.Shape, wrap.Intersect.A)
	if err != nil {
		log.Fatal(err.Error())
	}

	cols, err := table.ReadTable(pointsFile, []int{0, 1, 2}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	pts, err := io.ReadPoints(pointsFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	var hitX, hitY, missX, missY []float64
	for i, p := range pts {
		if geom.Intersects(p, shape) {
			hitX = append(hitX, cols[0][i])
			hitY = append(hitY, cols[1][i])
		} else {
			missX = append(missX, cols[0][i])
			missY = append(missY, cols[1][i])
		}
	}

	plt.Figure(plt.FigSize(8, 8))
	if len(missX) > 0 {
		plt.Plot(missX, missY, "o", plt.C("b"))
	}
	if len(hitX) > 0 {
		plt.Plot(hitX, hitY, "o", plt.C("r"))
	}
	plotOutline(shape)

	plt.Title(wrap.Intersect.A, plt.FontSize(16))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()

	log.Printf("Plotted %d points (%d hits) to %s.",
		len(pts), len(hitX), outFile)
}

// plotOutline draws the xy projection of the shape's edges, when it has
// any.
func plotOutline(g geom.Geometry) {
	var segs []*geom.LineSegment
	switch x := g.(type) {
	case *geom.LineSegment:
		segs = []*geom.LineSegment{x}
	case *geom.Triangle:
		e := x.Edges()
		segs = e[:]
	case *geom.Tetrahedron:
		e := x.Edges()
		segs = e[:]
	default:
		return
	}

	for _, s := range segs {
		x1, _ := s.P().X().Float64()
		y1, _ := s.P().Y().Float64()
		x2, _ := s.Q().X().Float64()
		y2, _ := s.Q().Y().Float64()
		plt.Plot([]float64{x1, x2}, []float64{y1, y2}, "k", plt.LW(2))
	}
}
