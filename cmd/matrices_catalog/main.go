// matrices_catalog reports on the stock matrix types registry and runs a
// small demonstration of the library.
//
// Usage:
//
//	matrices_catalog [-summary] [-list] [-kinds float32,int64] [-demo]
//
// Without flags it prints the summary report.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/matrices/pkg/support/sets"
	"github.com/gomlx/matrices/pkg/support/xslices"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

var (
	flagSummary = flag.Bool("summary", false, "Displays totals for the catalog: number of registered types, "+
		"elements and bytes, grouped by element kind.")
	flagList = flag.Bool("list", false, "Lists every registered type with its element kind, shape, size and memory.")
	flagKinds = flag.String("kinds", "", "Comma-separated list of element kinds to restrict the -summary and -list "+
		"reports to. Kinds are dtype names (\"float32\", \"Int64\", ...); use \"any\" for the generic types.")
	flagDemo = flag.Bool("demo", false, "Builds a few catalog instances, runs arithmetic on them and prints the "+
		"results, exercising the library end to end.")
)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'matrices_catalog -help'.", flag.Args())
		os.Exit(1)
	}
	if !*flagSummary && !*flagList && !*flagDemo {
		*flagSummary = true
	}

	// Degrade the table styling to whatever the terminal supports (this also
	// honors NO_COLOR and CLICOLOR).
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

	filter := kindsFilter()
	if *flagSummary {
		Summary(filter)
	}
	if *flagList {
		List(filter)
	}
	if *flagDemo {
		Demo()
	}
}

// kindsFilter resolves -kinds to the set of element kinds to report on. A nil
// result means no filtering. Unknown kind names abort with an error.
func kindsFilter() sets.Set[dtypes.DType] {
	if *flagKinds == "" {
		return nil
	}
	filter := sets.Make[dtypes.DType]()
	for _, name := range xslices.Map(strings.Split(*flagKinds, ","), strings.TrimSpace) {
		if strings.EqualFold(name, "any") {
			// The generic types report InvalidDType: no element dtype.
			filter.Insert(dtypes.InvalidDType)
			continue
		}
		dtype, found := dtypes.MapOfNames[name]
		if !found {
			dtype, found = dtypes.MapOfNames[strings.ToLower(name)]
		}
		if !found {
			klog.Errorf("Unknown element kind %q in -kinds. See 'matrices_catalog -help'.", name)
			os.Exit(1)
		}
		filter.Insert(dtype)
	}
	return filter
}
