package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/octologs/wheelpicker/internal/tui/components"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show usage documentation",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(components.RenderMarkdown(usageDocs, 78))
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

const usageDocs = `# wheelpicker

Multi-column wheel selectors for the terminal.

## Demo

Run ` + "`wheelpicker`" + ` to open the demo: a date-time picker, a linked
location picker and an independent option picker. Columns scroll with
j/k, h/l moves between columns, tab switches pickers.

## Layouts

The date-time picker's columns come from the ` + "`picker.layout`" + ` config
string, one character per column:

| Token | Column |
| ----- | ------ |
| y | year |
| m | month |
| d | day |
| H | hour (24h) |
| M | minute |
| S | second |
| a | am/pm |
| h | hour (12h) |

` + "`dmy`" + ` puts the day first; day counts still follow the selected month
and year, so scrolling into February re-ranges an already rendered day
column.

## Datasets

Linked pickers read their option trees from a local database:

    wheelpicker import locations locations.yaml
    wheelpicker datasets

The YAML may nest mappings to any depth; lists hold the leaf items:

    America:
      Mexico:
        Jalisco: [Guadalajara, Zapopan]

## Configuration

` + "`~/.config/wheelpicker/config.yaml`" + ` holds the theme and picker
defaults (layout, locale, year range, minute interval).
`
