// shapeinfo is a CLI utility for inspecting primitive meshes without a GPU.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Faultbox/glprim/internal/config"
	"github.com/Faultbox/glprim/internal/engine/scene"
	"github.com/Faultbox/glprim/internal/logger"
	"github.com/Faultbox/glprim/pkg/geometry"
	"github.com/Faultbox/glprim/pkg/mesh"
	"github.com/Faultbox/glprim/pkg/shape"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "counts":
		err = cmdCounts(args)
	case "build":
		err = cmdBuild(args)
	case "scene":
		err = cmdScene(args)
	case "obj", "export":
		err = cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shapeinfo - primitive mesh inspector

Usage:
  shapeinfo <command> [options]

Commands:
  counts [resolution flags]               Vertex and index counts for every kind
  build [resolution flags] <kind>         Build one shape and print its stats
  scene <config.yaml>                     Build every scene entry of a config
  obj [resolution flags] [-o file] <kind> Export one shape as Wavefront OBJ

Resolution flags:
  -lon N -lat N -radial N -caps=false -v

Examples:
  shapeinfo counts -lon 8 -lat 4
  shapeinfo build -radial 6 cone
  shapeinfo obj -o sphere.obj sphere`)
}

type shapeFlags struct {
	fs      *flag.FlagSet
	params  geometry.Params
	verbose bool
}

func newShapeFlags(name string) *shapeFlags {
	sf := &shapeFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError), params: geometry.DefaultParams()}
	sf.fs.IntVar(&sf.params.Longitude, "lon", sf.params.Longitude, "Sphere longitude segments")
	sf.fs.IntVar(&sf.params.Latitude, "lat", sf.params.Latitude, "Sphere latitude bands")
	sf.fs.IntVar(&sf.params.Radial, "radial", sf.params.Radial, "Cylinder and cone segments")
	sf.fs.BoolVar(&sf.params.Caps, "caps", sf.params.Caps, "Cap cylinders and cones")
	sf.fs.BoolVar(&sf.verbose, "v", false, "Log builder activity")
	return sf
}

func (sf *shapeFlags) parse(args []string) error {
	if err := sf.fs.Parse(args); err != nil {
		return err
	}
	if sf.verbose {
		opts := logger.DefaultOptions()
		opts.Level = "debug"
		if err := logger.Init(opts); err != nil {
			return err
		}
		shape.SetLogger(logger.Log)
	}
	return nil
}

func (sf *shapeFlags) kind() (geometry.Kind, error) {
	if sf.fs.NArg() < 1 {
		return 0, fmt.Errorf("missing shape kind")
	}
	return geometry.ParseKind(sf.fs.Arg(0))
}

func (sf *shapeFlags) build() (geometry.Kind, *mesh.Mesh, error) {
	kind, err := sf.kind()
	if err != nil {
		return 0, nil, err
	}
	cfg := shape.DefaultConfig(kind)
	cfg.Params = sf.params
	b, err := shape.FromConfig(cfg)
	if err != nil {
		return 0, nil, err
	}
	m, err := b.Mesh()
	return kind, m, err
}

func cmdCounts(args []string) error {
	sf := newShapeFlags("counts")
	if err := sf.parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tVERTICES\tINDICES")
	for _, k := range geometry.Kinds() {
		v, i, err := geometry.Counts(k, sf.params)
		if err != nil {
			fmt.Fprintf(tw, "%s\t-\t%v\n", k, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", k, v, i)
	}
	return tw.Flush()
}

func cmdBuild(args []string) error {
	sf := newShapeFlags("build")
	if err := sf.parse(args); err != nil {
		return err
	}
	kind, m, err := sf.build()
	if err != nil {
		return err
	}

	printStats(kind.String(), m)
	return nil
}

func cmdScene(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: shapeinfo scene <config.yaml>")
	}
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}

	failed := 0
	for i, e := range cfg.Scene {
		m, err := scene.BuildMesh(e, cfg.Shapes)
		if err != nil {
			fmt.Printf("[%d] %s: %v\n", i, e.Label(), err)
			failed++
			continue
		}
		printStats(fmt.Sprintf("[%d] %s", i, e.Label()), m)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d shapes failed", failed, len(cfg.Scene))
	}
	return nil
}

func cmdOBJ(args []string) error {
	sf := newShapeFlags("obj")
	output := sf.fs.String("o", "", "Output file (default stdout)")
	if err := sf.parse(args); err != nil {
		return err
	}
	kind, m, err := sf.build()
	if err != nil {
		return err
	}

	if *output == "" {
		return m.WriteOBJ(os.Stdout, kind.String())
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f, kind.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printStats(label string, m *mesh.Mesh) {
	b := m.Bounds()
	fmt.Printf("%s\n", label)
	fmt.Printf("  Topology:   %s\n", m.Topology())
	fmt.Printf("  Vertices:   %d\n", m.VertexCount())
	fmt.Printf("  Indices:    %d\n", m.IndexCount())
	fmt.Printf("  Primitives: %d\n", m.PrimitiveCount())
	fmt.Printf("  Bounds:     (%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}
