package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"genepca/pkg/analyze"
	"genepca/pkg/dataset"
	"genepca/pkg/ui"
	"genepca/pkg/viz"
)

//
// ---------------------- CLI FLAGS ----------------------
//
// --input           : Path to input CSV file. When set, runs headless:
//                     loads the file, runs PCA, writes the scatter PNG.
//                     When omitted, the desktop UI starts instead.
// --output          : Path for the scatter plot PNG. Default = <input>_pca.png
// --variance-output : Optional path for the explained-variance bar chart PNG
// --standardize     : Scale features to unit variance before projection
// --preview         : Number of rows to print to the console before analysis
//
// Example:
//   go run ./cmd/genepca --input expression.csv --standardize --preview 5
//
// -------------------------------------------------------
//

func main() {
	inputPath := flag.String("input", "", "Path to input CSV file (headless mode)")
	outputPath := flag.String("output", "", "Path for the scatter plot PNG")
	variancePath := flag.String("variance-output", "", "Optional path for the variance chart PNG")
	standardize := flag.Bool("standardize", false, "Scale features to unit variance before projection")
	previewRows := flag.Int("preview", 5, "Number of rows to preview in console (headless mode)")
	flag.Parse()

	if *inputPath == "" {
		ui.NewMainWindow().Run()
		return
	}

	ds, err := dataset.LoadFile(*inputPath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %s: %d rows, %d columns\n", *inputPath, ds.NumRows(), ds.NumCols())

	if *previewRows > 0 {
		printPreview(ds.Preview(*previewRows))
	}

	res, err := analyze.Run(ds, analyze.Options{Standardize: *standardize})
	if err != nil {
		log.Fatal(err)
	}
	for i, r := range res.VarianceRatios {
		fmt.Printf("PC%d explains %.2f%% of variance\n", i+1, r*100)
	}

	out := *outputPath
	if out == "" {
		out = strings.TrimSuffix(*inputPath, ".csv") + "_pca.png"
	}
	scatterPNG, err := viz.Scatter(res, viz.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, scatterPNG, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved PCA plot to %s\n", out)

	if *variancePath != "" {
		variancePNG, err := viz.VarianceBars(res, viz.Config{})
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*variancePath, variancePNG, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Saved variance chart to %s\n", *variancePath)
	}
}

// printPreview prints the header and first rows in fixed-width columns.
func printPreview(records [][]string) {
	for _, row := range records {
		for _, cell := range row {
			fmt.Printf("%-15s", cell)
		}
		fmt.Println()
	}
}
