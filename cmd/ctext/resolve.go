package main

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/font/fontregistry"
	"github.com/npillmayer/ctext/core/locate/resources"
	"github.com/npillmayer/ctext/engine/dom/style/css"
	"github.com/npillmayer/ctext/engine/dom/styledtree"
	"github.com/npillmayer/ctext/engine/theme"
	"github.com/npillmayer/ctext/input/markup"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// fontTimeout limits the time to wait for font registration.
const fontTimeout = 30 * time.Second

type resolveOptions struct {
	selector string
	fontDir  string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve the text styles of a markup file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.selector, "select", markup.DefaultSelector, "CSS selector of the element to style")
	cmd.Flags().StringVar(&opts.fontDir, "fonts", "", "Directory of font files to register with the theme")

	return cmd
}

func runResolve(cmd *cobra.Command, path string, rootFlags *rootFlags, opts *resolveOptions) error {
	th, err := loadTheme(rootFlags.themeFile)
	if err != nil {
		return err
	}
	if opts.fontDir != "" {
		_, table, err := registerFonts(cmd.Context(), opts.fontDir)
		if err != nil {
			return err
		}
		if th, err = th.Extend(&theme.Theme{FontConfig: table}); err != nil {
			return err
		}
	}
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return core.WrapError(err, core.EMISSING, "cannot open markup file %s", path)
		}
		defer f.Close()
		r = f
	}
	root, err := markup.Parse(r, opts.selector)
	if err != nil {
		return err
	}
	if err = styledtree.Resolve(root, th); err != nil {
		return err
	}
	tracer().Debugf("styled tree:\n%s", styledtree.Dump(root))
	runs, err := styledtree.Flatten(root)
	if err != nil {
		return err
	}
	data := pterm.TableData{
		{"Text", "Family", "Weight", "Style", "Size", "Color", "Line height", "Letter spacing", "Decoration"},
	}
	for _, run := range runs {
		data = append(data, runRow(run))
	}
	return renderTable(cmd, data)
}

func runRow(run styledtree.Run) []string {
	ts := run.Style
	weight := ""
	if ts.FontWeight != 0 {
		weight = ts.FontWeight.String()
	}
	return []string{
		strconv.Quote(run.Text),
		ts.FontFamily,
		weight,
		string(ts.FontStyle),
		dimenCell(ts.FontSize),
		ts.Color,
		dimenCell(ts.LineHeight),
		dimenCell(ts.LetterSpacing),
		string(ts.Decoration),
	}
}

func dimenCell(d css.DimenT) string {
	if d.IsNone() {
		return ""
	}
	return d.String()
}

// registerFonts registers the font files of a directory and waits for the
// resulting face table.
func registerFonts(ctx context.Context, dir string) (*fontregistry.Registry, font.Table, error) {
	sources, err := resources.FSSources(os.DirFS(dir), ".")
	if err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, fontTimeout)
	defer cancel()
	fr := fontregistry.NewRegistry()
	promise := resources.ResolveFonts(fr, sources)
	table, err := promise.Await(ctx)
	if err != nil {
		return fr, table, err
	}
	tracer().Infof("registered %d fonts from %s", len(sources), dir)
	return fr, table, nil
}
