package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const frameLine = "+---+---+---+"

// Presenter renders the board frame and plain messages to a terminal.
// Marks are colored when the terminal supports it; on dumb terminals the
// profile degrades to plain text on its own.
type Presenter struct {
	out     io.Writer
	profile termenv.Profile
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		profile: termenv.NewOutput(out).ColorProfile(),
	}
}

// ShowBoard prints the nine display symbols in the classic frame:
//
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	...
func (that *Presenter) ShowBoard(cells [9]string) {
	fmt.Fprintf(that.out, "\n%s\n", frameLine)

	for row := 0; row < 3; row++ {
		a := that.symbol(cells[row*3])
		b := that.symbol(cells[row*3+1])
		c := that.symbol(cells[row*3+2])

		fmt.Fprintf(that.out, "| %s | %s | %s |\n%s\n", a, b, c, frameLine)
	}

	fmt.Fprintln(that.out)
}

func (that *Presenter) ShowMessage(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Presenter) symbol(cell string) string {
	switch cell {
	case entity.MarkX:
		return that.profile.String(cell).Foreground(that.profile.Color("1")).String()
	case entity.MarkO:
		return that.profile.String(cell).Foreground(that.profile.Color("4")).String()
	default:
		return cell
	}
}
