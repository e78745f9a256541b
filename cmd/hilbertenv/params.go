package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/hilbert-envelope/dsp/param"
)

// ParamsCmd lists the processor parameters.
type ParamsCmd struct {
	Names []string `arg:"" optional:"" help:"Parameters to show (default all)."`
}

// Run executes the params command.
func (c *ParamsCmd) Run(app *appContext) error {
	ids := param.IDs()
	if len(c.Names) > 0 {
		ids = ids[:0]
		for _, name := range c.Names {
			id, err := param.ParseID(name)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
	}

	return printParams(app.out, ids)
}

func printParams(w io.Writer, ids []param.ID) error {
	defaults := param.Defaults()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tmin\tmax\tdefault\t")
	for _, id := range ids {
		info, ok := param.Describe(id)
		if !ok {
			return fmt.Errorf("unknown parameter %d", id)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", id,
			param.Format(id, info.Min), param.Format(id, info.Max), param.Format(id, defaults[id]))
	}

	return tw.Flush()
}
