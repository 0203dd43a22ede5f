// Package main provides the matcalc command, a small calculator over
// the foldmat matrix engine. Matrices are written as semicolon-
// separated rows of comma-separated values, e.g. "1,2;3,4".
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/foldmat/foldmat/matrix"
	"github.com/foldmat/foldmat/render"
)

func usage() {
	fmt.Println("matcalc - dense matrix calculator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  matcalc det <m>          determinant")
	fmt.Println("  matcalc inv <m>          inverse (unchanged when singular)")
	fmt.Println("  matcalc t <m>            transpose")
	fmt.Println("  matcalc add <m> <m>...   elementwise sum")
	fmt.Println("  matcalc mul <m> <m>...   chain product (scalars allowed)")
	fmt.Println()
	fmt.Println("Matrix syntax: rows separated by ';', values by ','  e.g. \"1,2;3,4\"")
}

// parseMatrix parses the row;row literal syntax.
func parseMatrix(s string) (*matrix.Matrix, error) {
	var rows [][]float64
	for _, rowLit := range strings.Split(s, ";") {
		var row []float64
		for _, lit := range strings.Split(rowLit, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(lit), 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q in %q", lit, s)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return matrix.FromRows(rows)
}

// parseOperand accepts either a bare number (scalar operand) or a
// matrix literal.
func parseOperand(s string) (matrix.Operand, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return matrix.Scalar(v), nil
	}
	return parseMatrix(s)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "matcalc: %v\n", err)
	os.Exit(1)
}

func printMat(m *matrix.Matrix) {
	fmt.Println(render.LogString(m, render.DefaultOptions()))
}

func main() {
	if len(os.Args) < 3 {
		usage()
		if len(os.Args) > 1 {
			os.Exit(2)
		}
		return
	}
	cmd, args := os.Args[1], os.Args[2:]

	first, err := parseMatrix(args[0])
	if err != nil {
		fail(err)
	}

	switch cmd {
	case "det":
		det, ok := first.Determinant()
		if !ok {
			fail(fmt.Errorf("%dx%d matrix has no determinant", first.Rows(), first.Cols()))
		}
		fmt.Printf("%g\n", det)
	case "inv":
		printMat(first.Invert())
	case "t":
		printMat(first.Transpose())
	case "add":
		rest := make([]*matrix.Matrix, 0, len(args)-1)
		for _, a := range args[1:] {
			m, err := parseMatrix(a)
			if err != nil {
				fail(err)
			}
			rest = append(rest, m)
		}
		printMat(first.Add(rest...))
	case "mul":
		ops := make([]matrix.Operand, 0, len(args)-1)
		for _, a := range args[1:] {
			op, err := parseOperand(a)
			if err != nil {
				fail(err)
			}
			ops = append(ops, op)
		}
		printMat(first.Multiply(ops...))
	default:
		usage()
		os.Exit(2)
	}
}
