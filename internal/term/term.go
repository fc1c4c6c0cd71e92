// Package term renders classified console-pixel buffers as ANSI escape
// streams for POSIX terminals. The 16-entry console palette maps onto the
// standard and bright SGR colors.
package term

import (
	"bufio"
	"fmt"
	"io"

	"consolegl"
)

// sgrFg maps a palette index to its SGR foreground code. The console
// palette orders colors blue-green-red; ANSI orders them red-green-blue,
// and the bright half uses the 90-series codes.
var sgrFg = [16]int{30, 34, 32, 36, 31, 35, 33, 37, 90, 94, 92, 96, 91, 95, 93, 97}

// sgrBg is the matching background series.
var sgrBg = [16]int{40, 44, 42, 46, 41, 45, 43, 47, 100, 104, 102, 106, 101, 105, 103, 107}

// WriteFrame writes a w×h cell buffer as one ANSI frame. SGR sequences
// are only emitted when the attribute changes between cells.
func WriteFrame(out io.Writer, cells []consolegl.ConsolePixel, w, h int) error {
	bw := bufio.NewWriterSize(out, w*h*4)

	last := -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := cells[x+y*w]
			if int(cell.Attr) != last {
				fg := sgrFg[cell.Attr&0x0F]
				bg := sgrBg[(cell.Attr>>4)&0x0F]
				if _, err := fmt.Fprintf(bw, "\x1b[%d;%dm", fg, bg); err != nil {
					return err
				}
				last = int(cell.Attr)
			}
			if _, err := bw.WriteRune(rune(cell.Char)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\x1b[0m\n"); err != nil {
			return err
		}
		last = -1
	}

	return bw.Flush()
}

// HomeCursor moves the cursor to the top-left corner.
func HomeCursor(out io.Writer) { fmt.Fprint(out, "\x1b[H") }

// HideCursor hides the terminal cursor.
func HideCursor(out io.Writer) { fmt.Fprint(out, "\x1b[?25l") }

// ShowCursor restores the terminal cursor.
func ShowCursor(out io.Writer) { fmt.Fprint(out, "\x1b[?25h") }
