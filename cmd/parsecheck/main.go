package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/planparse"
)

const noMatch = "-"

type result struct {
	parser string
	value  string
	detail string
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	phrase := strings.Join(os.Args[1:], " ")
	fmt.Printf("phrase:     %q\n", phrase)
	fmt.Printf("normalized: %q\n\n", planparse.Normalize(phrase))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PARSER\tVALUE\tDETAIL")
	for _, r := range runAll(phrase) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.parser, r.value, r.detail)
	}
	_ = tw.Flush()
}

func runAll(phrase string) []result {
	var out []result

	for _, unit := range []domain.IntervalUnit{domain.IntervalDays, domain.IntervalMonths} {
		r := result{parser: "interval (" + string(unit) + ")", value: noMatch}
		if n, rule, ok := planparse.ParseIntervalWithRule(phrase, unit); ok {
			r.value = fmt.Sprintf("%d", n)
			r.detail = rule
		}
		out = append(out, r)
	}

	r := result{parser: "humidity", value: noMatch}
	if pct, ok := planparse.ParseHumidity(phrase); ok {
		r.value = fmt.Sprintf("%d%%", pct)
		r.detail = planparse.FormatHumidity(pct)
	}
	out = append(out, r)

	r = result{parser: "temperature", value: noMatch}
	if t, ok := planparse.ParseTemperatureRange(phrase); ok {
		r.value = fmt.Sprintf("%d-%d F", t.MinF, t.MaxF)
		r.detail = planparse.FormatTemperature(t)
	}
	out = append(out, r)

	r = result{parser: "light", value: noMatch}
	if l, ok := planparse.ParseLightLevel(phrase); ok {
		r.value = string(l)
		r.detail = planparse.FormatLight(l)
	}
	out = append(out, r)

	r = result{parser: "water amount", value: noMatch}
	if w, ok := planparse.ParseWaterAmount(phrase); ok {
		r.value = fmt.Sprintf("%.1f %s", w.Amount, w.Unit)
		r.detail = planparse.FormatWaterAmount(w)
	}
	out = append(out, r)

	return out
}

func printUsage() {
	fmt.Println("Usage: parsecheck <advice phrase...>")
	fmt.Println("Runs every advice parser over the phrase and prints what each one extracts.")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  parsecheck water every 5-7 days")
}
