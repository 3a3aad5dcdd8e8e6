package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docxwrap/docxwrap/pkg/errors"
	"github.com/docxwrap/docxwrap/pkg/pipeline"
)

// Fixed user-facing messages for the conversion failure modes. Everything
// else about an error stays in the logs; these are what the user sees.
const (
	msgIO        = "An error occurred during I/O."
	msgImage     = "Something went wrong while processing the images."
	msgExtractor = "Inkscape not found. Consider installing inkscape?"
	msgSource    = "Invalid PDF."
)

// convertCommand creates the root command that performs the conversion.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		noCache   bool
		extractor string
	)

	cmd := &cobra.Command{
		Use:   "docxwrap <source.pdf> <output.docx>",
		Short: "Convert a PDF into a DOCX with one page image per page",
		Long: `Docxwrap converts a PDF document into a DOCX package by embedding each
page as an image: a vector SVG for fidelity plus a PNG fallback for
consumers that cannot render SVG. Page extraction shells out to Inkscape,
which must be installed and on PATH.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], args[1], noCache, extractor)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page render cache")
	cmd.Flags().StringVar(&extractor, "extractor", "", "page extraction binary (default from config, then \"inkscape\")")

	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, source, output string, noCache bool, extractor string) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	runner := c.newRunner(noCache, extractor)
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Converting %s", source))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{Source: source, Output: output})
	if err != nil {
		spinner.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Logger.Error("conversion failed", "error", err)
		return stderrors.New(conversionMessage(err))
	}
	spinner.StopWithSuccess(fmt.Sprintf("Converted %d pages", result.Pages))

	printFile(result.Output)
	printDetail("page size: %.0f×%.0f px", result.PageSize.Width, result.PageSize.Height)
	prog.done(fmt.Sprintf("Converted %d pages", result.Pages))
	return nil
}

// conversionMessage maps an error to its fixed user-facing message.
func conversionMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.ErrCodeIO, errors.ErrCodeSkeleton:
		return msgIO
	case errors.ErrCodeImage:
		return msgImage
	case errors.ErrCodeExtractorNotFound:
		return msgExtractor
	case errors.ErrCodeSourceInvalid:
		return msgSource
	default:
		return errors.UserMessage(err)
	}
}
