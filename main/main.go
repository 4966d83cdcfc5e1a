package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/exactgeom/exactgeom/geom"
	"github.com/exactgeom/exactgeom/io"
)

func main() {
	var (
		intersect, distance string
		exampleConfig       string
	)
	vars := map[string]*string{
		"Intersect":     &intersect,
		"Distance":      &distance,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&intersect, "Intersect", "",
		"Configuration file for [Intersect] mode.",
	)
	flag.StringVar(
		&distance, "Distance", "",
		"Configuration file for [Distance] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Intersect', 'Distance', and "+
			"'Points'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Intersect":
		wrap, err := io.ReadIntersectConfig(intersect)
		if err != nil {
			log.Fatal(err.Error())
		}
		intersectMain(wrap)
	case "Distance":
		wrap, err := io.ReadDistanceConfig(distance)
		if err != nil {
			log.Fatal(err.Error())
		}
		distanceMain(wrap)
	case "ExampleConfig":
		switch exampleConfig {
		case "Intersect":
			fmt.Println(io.ExampleIntersectFile)
		case "Distance":
			fmt.Println(io.ExampleDistanceFile)
		case "Points":
			fmt.Println(io.ExamplePointsFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Intersect', 'Distance', and 'Points'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but exactgeom only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func intersectMain(wrap *io.IntersectWrapper) {
	con := &wrap.Intersect

	a, err := io.BuildShape(wrap.Shape, con.A)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.PointsFile != "" {
		pts, err := io.ReadPoints(con.PointsFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		hits := 0
		for i, p := range pts {
			in := geom.IntersectionOf(p, a)
			if in.IntersectionKind() != geom.IntersectNone {
				hits++
			}
			fmt.Printf("%d %s %v\n", i, in.IntersectionKind(), p)
		}
		log.Printf("%d/%d points intersect '%s'.", hits, len(pts), con.A)
		return
	}

	b, err := io.BuildShape(wrap.Shape, con.B)
	if err != nil {
		log.Fatal(err.Error())
	}

	in := geom.IntersectionOf(a, b)
	fmt.Println(in.IntersectionKind())
	if in.IntersectionKind() != geom.IntersectNone {
		fmt.Println(in)
	}
}

func distanceMain(wrap *io.DistanceWrapper) {
	con := &wrap.Distance
	pol := con.RoundingPolicy()

	a, err := io.BuildShape(wrap.Shape, con.A)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.PointsFile != "" {
		pts, err := io.ReadPoints(con.PointsFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		for i, p := range pts {
			d, err := geom.Distance(a, p, con.OOM, pol)
			if err != nil {
				log.Fatalf("Point %d: %s", i, err.Error())
			}
			fmt.Printf("%d %s\n", i, d.FloatString(floatDigits(con.OOM)))
		}
		return
	}

	b, err := io.BuildShape(wrap.Shape, con.B)
	if err != nil {
		log.Fatal(err.Error())
	}

	dsq := geom.DistanceSquared(a, b)
	d, err := geom.Distance(a, b, con.OOM, pol)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf("distance^2 = %s\n", dsq.RatString())
	fmt.Printf("distance   = %s\n", d.FloatString(floatDigits(con.OOM)))
}

func floatDigits(oom int) int {
	if oom >= 0 {
		return 0
	}
	return -oom
}
