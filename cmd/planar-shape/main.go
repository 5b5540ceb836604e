package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/mapforge/planar"
	"github.com/mapforge/planar/dbg"
)

// Computes the shape descriptors for a point set: convex hull, minimum
// oriented bounding box, and smallest enclosing circle. Input on stdin
// should be newline separated points in the form "x y"; blank lines are
// ignored. This is a demonstration of the library, not one of the analysis
// tools.

var (
	criterion = kingpin.Flag("criterion", "Minimum box criterion.").Default("area").Enum("area", "perimeter")
	seed      = kingpin.Flag("seed", "Seed for the enclosing-circle shuffle; 0 means time-seeded.").Default("0").Int64()
	render    = kingpin.Flag("render", "Render the result to a PNG at this path.").String()
	scale     = kingpin.Flag("scale", "Render scale in pixels per unit.").Default("10").Float64()
	verbose   = kingpin.Flag("verbose", "Dump the derived geometry.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	points := readPoints(os.Stdin)
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, aurora.Red("no points on stdin"))
		os.Exit(1)
	}
	fmt.Printf("Read %d points\n", len(points))

	hull := planar.ConvexHull(points)
	area, err := hull.Area()
	if err != nil {
		fatal(err)
	}
	perimeter, err := hull.Perimeter()
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Hull: %s vertices, area %.4f, perimeter %.4f\n",
		aurora.Cyan(fmt.Sprint(len(hull)-1)), area, perimeter)

	crit := planar.MinimizeArea
	if *criterion == "perimeter" {
		crit = planar.MinimizePerimeter
	}
	box, err := planar.MinimumBounds(points, crit)
	if err != nil {
		fatal(err)
	}
	short, long := planar.BoxAxisLengths(box)
	elongation := 0.0
	if long > 0 {
		elongation = 1 - short/long
	}
	fmt.Printf("Minimum box (%s): %.4f x %.4f, elongation %.4f\n", *criterion, short, long, elongation)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	circle, err := planar.SmallestEnclosingCircle(points, rng)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Enclosing circle: center (%.4f, %.4f), radius %.4f\n",
		circle.Center.X, circle.Center.Y, circle.Radius)

	if *verbose {
		fmt.Print(dbg.Dump(&hull))
	}

	if *render != "" {
		scene := planar.Scene{
			Points:  points,
			Rings:   []planar.Ring{hull, boxRing(box)},
			Circles: []planar.Circle{circle},
		}
		if err := scene.Render(*render, *scale); err != nil {
			fatal(err)
		}
		fmt.Println("Rendered to", *render)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}

func boxRing(corners [4]planar.Point) planar.Ring {
	return planar.Ring{corners[0], corners[1], corners[2], corners[3], corners[0]}
}

func readPoints(in *os.File) []planar.Point {
	var points []planar.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) planar.Point {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		fatal(fmt.Errorf("malformed point line %q", line))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		fatal(err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fatal(err)
	}
	return planar.Point{X: x, Y: y}
}
