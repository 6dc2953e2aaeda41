package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/convexhull/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of hull construction. Input on stdin should be newline separated points
// in the form "x y" for 2d, or "x y z" for 3d. Blank lines and lines starting
// with # are ignored.
var (
	app        = kingpin.New("convexhull", "Compute the convex hull of points read from stdin.")
	configPath = app.Flag("config", "YAML config file.").ExistingFile()
	subHulls   = app.Flag("sub-hulls", "Override the 2D sub-hull count.").Int()
	parallel   = app.Flag("parallel", "Build sub-hulls concurrently.").Bool()
	debug      = app.Flag("debug", "Print debug output to stderr.").Bool()

	hull2D = app.Command("2d", "Hull of points in the plane, and its area.")
	png    = hull2D.Flag("png", "Render the hull to this PNG file.").String()
	scale  = hull2D.Flag("scale", "Pixels per unit when rendering.").Default("1").Float64()
	cat    = hull2D.Flag("imgcat", "Print the rendering to the terminal.").Bool()

	hull3D    = app.Command("3d", "Hull of points in space, as triangles.")
	verify    = hull3D.Flag("verify", "Check that every edge borders exactly two faces.").Bool()
	footprint = hull3D.Flag("footprint", "Also print the area of the hull of the points' XY projection.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := advanced.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = advanced.LoadConfig(*configPath)
		app.FatalIfError(err, "")
	}
	if *subHulls > 0 {
		cfg.SubHullCount = *subHulls
	}
	if *parallel {
		cfg.Parallel = true
	}
	if *debug {
		advanced.SetDebugOutput(os.Stderr)
	}

	rows, err := readRows(os.Stdin)
	app.FatalIfError(err, "reading points")

	switch command {
	case hull2D.FullCommand():
		app.FatalIfError(run2D(rows, cfg), "2d")
	case hull3D.FullCommand():
		app.FatalIfError(run3D(rows, cfg), "3d")
	}
}

func run2D(rows [][]float64, cfg advanced.Config) (err error) {
	defer func() {
		if recoveredErr := advanced.HandleHullPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	points := make([]advanced.Point, len(rows))
	for i, row := range rows {
		points[i] = advanced.Point{X: row[0], Y: row[1]}
	}
	hull, err := advanced.Hull2D(points, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Read %d points, hull has %d vertices\n", len(points), len(hull))
	for _, p := range hull {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}
	fmt.Printf("Area: %g\n", advanced.Area(hull))

	if *png != "" {
		if err := advanced.SaveHull2D(*png, points, hull, *scale); err != nil {
			return errors.Wrapf(err, "writing %q", *png)
		}
	}
	if *cat {
		return advanced.DbgDraw(points, hull, *scale)
	}
	return nil
}

func run3D(rows [][]float64, cfg advanced.Config) (err error) {
	defer func() {
		if recoveredErr := advanced.HandleHullPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	points := make([]advanced.Point3, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return errors.Errorf("point %d has no z coordinate", i+1)
		}
		points[i] = advanced.Point3{X: row[0], Y: row[1], Z: row[2]}
	}
	triangles, err := advanced.Hull3D(points, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Read %d points, hull has %d faces\n", len(points), len(triangles))
	for _, t := range triangles {
		fmt.Printf("%g %g %g, %g %g %g, %g %g %g\n",
			t.P1.X, t.P1.Y, t.P1.Z,
			t.P2.X, t.P2.Y, t.P2.Z,
			t.P3.X, t.P3.Y, t.P3.Z)
	}

	if *verify {
		if err := advanced.NewEdgeAdjacency(triangles).CheckManifold(triangles); err != nil {
			return errors.Wrap(err, "hull is not a closed manifold")
		}
		fmt.Println("Manifold: ok")
	}
	if *footprint {
		shadow, err := advanced.Footprint(points, cfg)
		if err != nil {
			return errors.Wrap(err, "footprint")
		}
		fmt.Printf("Footprint area: %g\n", advanced.Area(shadow))
	}
	return nil
}

func readRows(in io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}

func parseRow(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, errors.Errorf("expected 2 or 3 coordinates, got %d", len(fields))
	}
	row := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate %q", field)
		}
		row[i] = value
	}
	return row, nil
}
