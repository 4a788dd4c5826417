// Command lssinfo inspects textual matrix files (MatrixMarket,
// Harwell-Boeing, CSR dumps; gzip/xz transparent). It reports format and
// extent, prints dense values, or lists coordinate triples. Strictly
// read-only: no command writes matrix data anywhere.
package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"

	"github.com/pmaciel/lssio/matfile"
)

const version = "0.1.0"

// CLI defines the command-line interface for lssinfo.
var CLI struct {
	Info    InfoCmd    `cmd:"" help:"Report format, extent and nonzero count of a matrix file"`
	Dense   DenseCmd   `cmd:"" help:"Print the matrix densely, one row per line"`
	Sparse  SparseCmd  `cmd:"" help:"Print coordinate triples (row col value)"`
	Pattern PatternCmd `cmd:"" help:"Print per-row (or per-column) sparsity patterns"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// InfoCmd reports on a matrix file without keeping its payload.
type InfoCmd struct {
	Path string `arg:"" help:"Path to matrix file" type:"existingfile"`
}

// Run detects the format, reads the file densely and summarizes it.
func (c *InfoCmd) Run() error {
	format, err := matfile.DetectFormat(c.Path)
	if err != nil {
		return err
	}
	d, err := matfile.ReadDense[float64](c.Path, true)
	if err != nil {
		return err
	}

	nnz := 0
	for _, row := range d.Data {
		for _, v := range row {
			if v != 0 {
				nnz++
			}
		}
	}

	fmt.Printf("file:     %s\n", c.Path)
	fmt.Printf("format:   %s\n", format)
	fmt.Printf("size:     %d x %d\n", d.Size.Row, d.Size.Col)
	fmt.Printf("square:   %v\n", d.Size.IsSquareSize())
	fmt.Printf("nonzeros: %d\n", nnz)

	return nil
}

// DenseCmd prints the matrix densely in the requested element type.
type DenseCmd struct {
	Path     string `arg:"" help:"Path to matrix file" type:"existingfile"`
	ColMajor bool   `name:"col-major" help:"Emit columns instead of rows"`
	Type     string `name:"type" default:"float64" help:"Element type: float64, float32 or int"`
}

// Run reads and prints the matrix, dispatching on the requested precision.
func (c *DenseCmd) Run() error {
	rowOriented := !c.ColMajor
	switch c.Type {
	case "float64":
		return printDense(matfile.ReadDense[float64](c.Path, rowOriented))
	case "float32":
		return printDense(matfile.ReadDense[float32](c.Path, rowOriented))
	case "int":
		return printDense(matfile.ReadDense[int](c.Path, rowOriented))
	default:
		return fmt.Errorf("lssinfo: element type %q: %w", c.Type, matfile.ErrPrecision)
	}
}

// printDense renders one line per stored sequence (row or column).
func printDense[T matfile.Scalar](d *matfile.Dense[T], err error) error {
	if err != nil {
		return err
	}
	for _, row := range d.Data {
		for j, v := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%v", v)
		}
		fmt.Println()
	}

	return nil
}

// SparseCmd prints coordinate triples in row-major or column-major order.
type SparseCmd struct {
	Path     string `arg:"" help:"Path to matrix file" type:"existingfile"`
	Base     int    `name:"base" default:"0" help:"Index base of the printed coordinates"`
	ColMajor bool   `name:"col-major" help:"Order triples column-major"`
}

// Run reads the file sparsely and lists its triples.
func (c *SparseCmd) Run() error {
	coo, err := matfile.ReadSparse[float64](c.Path, !c.ColMajor, c.Base)
	if err != nil {
		return err
	}

	fmt.Printf("%% %d x %d, %d entries, base %d\n", coo.Size.Row, coo.Size.Col, coo.Nnz(), coo.Base)
	for k := range coo.Values {
		fmt.Printf("%d %d %g\n", coo.RowIdx[k], coo.ColIdx[k], coo.Values[k])
	}

	return nil
}

// PatternCmd prints the sparsity pattern of each row or column.
type PatternCmd struct {
	Path      string `arg:"" help:"Path to matrix file" type:"existingfile"`
	ColMajor  bool   `name:"col-major" help:"Pattern per column instead of per row"`
	DiagFirst bool   `name:"diag-first" help:"Lead each pattern with its own row/column index"`
}

// Run reads the file sparsely and lists one pattern per line.
func (c *PatternCmd) Run() error {
	coo, err := matfile.ReadSparse[float64](c.Path, !c.ColMajor, 0)
	if err != nil {
		return err
	}

	for k, pat := range coo.Patterns(!c.ColMajor, c.DiagFirst) {
		fmt.Printf("%d:", k)
		for _, idx := range pat {
			fmt.Printf(" %d", idx)
		}
		fmt.Println()
	}

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run prints the tool version.
func (c *VersionCmd) Run() error {
	fmt.Printf("lssinfo %s\n", version)

	return nil
}

func main() {
	log.SetFlags(0) // terse CLI diagnostics, no timestamps

	ctx := kong.Parse(&CLI,
		kong.Name("lssinfo"),
		kong.Description("Inspect textual matrix exchange files (.mtx, .rua, .csr; gzip/xz aware)."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatalf("lssinfo: %v", err)
	}
}
