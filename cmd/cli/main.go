package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/edujbarrios/real-iop-estimator/app"
	"github.com/edujbarrios/real-iop-estimator/domain/core"
	"github.com/edujbarrios/real-iop-estimator/domain/estimate"
	"github.com/edujbarrios/real-iop-estimator/internal/config"
)

// One-shot estimation from the command line. Readings come from the
// arguments ("12, 14, 13") or, when none are given, from one line on
// stdin. Validation failures exit with status 2 so scripts can re-prompt.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	raw := strings.Join(os.Args[1:], " ")
	if strings.TrimSpace(raw) == "" {
		fmt.Print("Readings (mmHg, comma-separated): ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "no input")
			os.Exit(2)
		}
		raw = line
	}

	service := app.NewEstimationService(cfg)
	report, err := service.EvaluateText(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if core.IsValidationError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	printReport(report)
}

func printReport(r estimate.Report) {
	fmt.Printf("Safe IOP (primary):  %6.1f mmHg\n", r.SafeIOP)
	fmt.Printf("Possible IOP:        %6.1f mmHg\n", r.PossibleIOP)
	fmt.Printf("Clinical IOP:        %6.1f mmHg\n", r.ClinicalIOP)
	fmt.Printf("Mean IOP:            %6.1f mmHg\n", r.MeanIOP)
	fmt.Printf("Trimean IOP:         %6.1f mmHg\n", r.TrimeanIOP)
	fmt.Printf("IQM IOP:             %6.1f mmHg\n", r.IQMIOP)
	fmt.Printf("Winsorized IOP:      %6.1f mmHg\n", r.WinsorizedIOP)
	fmt.Printf("Weighted IOP:        %6.1f mmHg\n", r.WeightedIOP)
	fmt.Println()
	fmt.Printf("Readings:            %d (%.1f - %.1f mmHg)\n", r.NMeasurements, r.MinIOP, r.MaxIOP)
	fmt.Printf("Variability:         %6.1f mmHg\n", r.Variability)
	fmt.Printf("Std deviation:       %6.2f mmHg\n", r.StdDev)
	fmt.Println()
	fmt.Printf("Interpretation:      %s [%s]\n", r.Interpretation, r.Status)
	fmt.Printf("Confidence:          %s\n", r.ConfidenceNote)
}
