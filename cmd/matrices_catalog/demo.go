package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/matrices/pkg/core/catalog"
	"github.com/gomlx/matrices/pkg/support/fsutil"
	"github.com/janpfeifer/must"
)

var flagDemoOutput = flag.String("demo_output", "", "File the -demo saves its product matrix to, \"~\" works. "+
	"It defaults to a temporary file that is removed afterwards.")

// Demo builds a few instances from the catalog types and runs them through
// the arithmetic, printing and serialization surfaces.
func Demo() {
	fmt.Println(titleStyle.Render("Demo"))

	a := catalog.Float64Mat2x2.FromValues([][]float64{{1, 2}, {3, 4}})
	b := catalog.Float64Mat2x2.New(5, 6, 7, 8)
	fmt.Printf("a = %s\n", a)
	fmt.Printf("b = %s\n", b)
	fmt.Printf("a+b = %s\n", a.Add(b))
	fmt.Printf("a-b = %s\n", a.Sub(b))
	fmt.Printf("2a = %s\n", a.Scale(2))
	fmt.Printf("dot(a, b) = %g\n", a.Dot(b))
	product := a.MatMul(b)
	fmt.Printf("a x b = %s\n\n", product)

	// 64-bit integers: mixed inputs, one exact coercion point.
	counts := catalog.Int64Mat2x2.FromValues([]any{"7", 8.9, -1, true})
	fmt.Printf("counts = %s\n", counts)
	fmt.Printf("counts tripled = %s\n", counts.Scale("3"))
	fmt.Printf("dot(counts, counts) = %d\n\n", counts.Dot(counts))

	// Generic elements: anything goes, operations are structural only.
	boxes := catalog.AnyMat2x2.New("tag", 3.5, nil, []int{1, 2})
	fmt.Printf("boxes = %s\n\n", boxes)

	// Save and re-load the product. The file carries the dimensions, so any
	// 2x2 float64 type reads it back.
	fileName := fsutil.MustReplaceTildeInDir(*flagDemoOutput)
	if fileName == "" {
		f := must.M1(os.CreateTemp("", "matrices_demo_*.bin"))
		fileName = f.Name()
		must.M(f.Close())
		defer func() { _ = os.Remove(fileName) }()
	}
	must.M(product.Save(fileName))
	loaded := must.M1(catalog.Float64Mat2x2.Load(fileName))
	fmt.Printf("a x b after save&load = %s\n", loaded)
	fmt.Printf("round-trip equal: %v\n", product.Equal(loaded))
	if *flagDemoOutput != "" {
		fmt.Printf("product saved to %s\n", fileName)
	}
}
