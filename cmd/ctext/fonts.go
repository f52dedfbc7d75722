package main

import (
	"sort"
	"strconv"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/font/fontregistry"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type fontsOptions struct {
	dir string
}

func newFontsCmd() *cobra.Command {
	opts := &fontsOptions{}

	cmd := &cobra.Command{
		Use:   "fonts [key …]",
		Short: "Parse font keys or register font files and print the resulting face table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFonts(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory of font files to register")

	return cmd
}

func runFonts(cmd *cobra.Command, keys []string, opts *fontsOptions) error {
	var fr *fontregistry.Registry
	var table font.Table
	var err error
	switch {
	case opts.dir != "":
		fr, table, err = registerFonts(cmd.Context(), opts.dir)
		if err != nil {
			return err
		}
	case len(keys) > 0:
		fr = fontregistry.NewRegistry()
		for _, key := range keys {
			if _, err = fr.RegisterKey(key); err != nil {
				return err
			}
		}
		table = fr.Table()
	default:
		return core.Error(core.EINVALID, "no font keys and no font directory given")
	}
	fr.LogFontList()
	//
	data := pterm.TableData{{"Family", "Weight", "Normal", "Italic", "Font name"}}
	for _, family := range table.Families() {
		fam := table[family]
		weights := make([]int, 0, len(fam))
		for w := range fam {
			weights = append(weights, int(w))
		}
		sort.Ints(weights)
		for _, w := range weights {
			faces := fam[font.Weight(w)]
			name := ""
			if f, ok := fr.Font(faces.Normal); ok {
				name = f.Fontname
			}
			data = append(data, []string{family, strconv.Itoa(w), faces.Normal, faces.Italic, name})
		}
	}
	return renderTable(cmd, data)
}
