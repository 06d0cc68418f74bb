package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/sharpeful/date"
)

// periodFlag is the -p flag shared by the period reports.
type periodFlag struct {
	value string
}

func (p *periodFlag) register(f *flag.FlagSet) {
	f.StringVar(&p.value, "p", date.OneYear.String(), "Period of the report: "+periodNames())
}

func (p *periodFlag) period() (date.Period, error) {
	return date.ParsePeriod(p.value)
}

func periodNames() string {
	names := make([]string, 0, len(date.Periods))
	for _, p := range date.Periods {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
