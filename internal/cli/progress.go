package cli

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// NewImportProgress counts catalog rows as they are stored.
// The bar is erased once it completes so only the summary line remains.
func NewImportProgress(w io.Writer, rows int) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(WindowIcon + " storing products"),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: ".",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	}
	return progressbar.NewOptions(rows, opts...)
}
