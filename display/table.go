package display

import (
	"io"

	"github.com/pterm/pterm"
)

// Table renders rows under a header line to w.
func Table(w io.Writer, header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(false).
		WithWriter(w).
		WithData(data).
		Render()
}

// Success prints a confirmation line to w.
func Success(w io.Writer, format string, args ...interface{}) {
	pterm.Success.WithWriter(w).Printfln(format, args...)
}

// Error prints err with any hints attached to it.
func Error(w io.Writer, err error, hints []string) {
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, h := range hints {
		pterm.Info.WithWriter(w).Println(h)
	}
}
