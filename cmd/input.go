package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"sigs.k8s.io/yaml"
)

// readInput decodes a JSON or YAML file into out. sigs.k8s.io/yaml accepts
// both encodings through the same path.
func readInput(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %v", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse input file: %v", err)
	}
	return nil
}

// writeOutput marshals the result as indented JSON to the given file, or to
// stdout when path is empty.
func writeOutput(path string, result interface{}) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %v", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("failed to write result file: %v", err)
	}
	return nil
}

// denseRows flattens a dense matrix into row slices for JSON output. Returns
// nil for a nil matrix.
func denseRows(a *mat.Dense) [][]float64 {
	if a == nil {
		return nil
	}
	r, c := a.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		copy(row, a.RawRowView(i))
		rows[i] = row
	}
	return rows
}
