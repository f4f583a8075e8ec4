package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/pkg/pipeline"
	"github.com/pagesmith/pagesmith/pkg/treeviz"
)

// inspectCommand creates the inspect command for visualizing the
// presentation tree a page produces. DOT output goes to stdout by
// default; SVG and PNG are written next to the input file.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Visualize a page's presentation tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case pipeline.FormatDOT, pipeline.FormatSVG, pipeline.FormatPNG:
			default:
				return fmt.Errorf("invalid format: %q (must be 'dot', 'svg', or 'png')", format)
			}

			page, err := pipeline.ImportPage(args[0])
			if err != nil {
				return err
			}

			dot := treeviz.ToDOT(page.Compose(), treeviz.Options{Detailed: detailed})

			var data []byte
			switch format {
			case pipeline.FormatDOT:
				data = []byte(dot)
			case pipeline.FormatSVG:
				if data, err = treeviz.RenderSVG(dot); err != nil {
					return err
				}
			case pipeline.FormatPNG:
				if data, err = treeviz.RenderPNG(dot); err != nil {
					return err
				}
			}

			if output == "" && format == pipeline.FormatDOT {
				_, err = os.Stdout.Write(data)
				return err
			}

			path := output
			if path == "" {
				path = basePath("", args[0]) + "." + format
			}
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			printSuccess("Inspected %s", pageName(args[0]))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show attributes in node labels")

	return cmd
}
