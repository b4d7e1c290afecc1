package lineage

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/facette/natsort"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lineage/tree"
)

// Menu answers single-letter queries about a generated tree.
type Menu struct {
	tree *tree.Tree
	out  *message.Printer
	w    io.Writer
}

// NewMenu returns a Menu printing to w with English number formatting.
func NewMenu(t *tree.Tree, w io.Writer) *Menu {
	return &Menu{tree: t, out: message.NewPrinter(language.English), w: w}
}

const invalidInput = "Invalid input. Please enter T, D, A, G, N, or Q."

// Serve shows the menu and answers choices read line by line from in until
// Q, end of input, or ctx is done.
func (m *Menu) Serve(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		m.display()
		choice, ok := m.choose(sc)
		if !ok {
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		switch choice {
		case "T":
			m.showTotal()
		case "D":
			m.showCounts(m.tree.CountByDecade())
		case "A":
			m.showCounts(m.tree.AliveCountByDecade())
		case "G":
			if err := m.showGenerations(); err != nil {
				return err
			}
		case "N":
			m.showDuplicates()
		case "Q":
			m.out.Fprintln(m.w, "Exiting...")
			return nil
		}
		m.out.Fprintln(m.w)
	}
}

func (m *Menu) display() {
	m.out.Fprintln(m.w, "Are you interested in:")
	m.out.Fprintln(m.w, "(T)otal number of people in the tree")
	m.out.Fprintln(m.w, "Total number of people in the tree by (D)ecade")
	m.out.Fprintln(m.w, "Number of people (A)live in each decade")
	m.out.Fprintln(m.w, "Number of people in each (G)eneration")
	m.out.Fprintln(m.w, "(N)ames duplicated")
}

// choose prompts until a valid choice is read. ok is false at end of input.
func (m *Menu) choose(sc *bufio.Scanner) (choice string, ok bool) {
	for {
		m.out.Fprint(m.w, "> ")
		if !sc.Scan() {
			return "", false
		}
		choice = strings.ToUpper(strings.TrimSpace(sc.Text()))
		switch choice {
		case "T", "D", "A", "G", "N", "Q":
			return choice, true
		}
		m.out.Fprintln(m.w, invalidInput)
	}
}

func (m *Menu) showTotal() {
	m.out.Fprintf(m.w, "The tree contains %d people total\n", m.tree.TotalCount())
}

// showCounts prints decade counts in chronological order.
func (m *Menu) showCounts(counts map[string]int) {
	decades := make([]string, 0, len(counts))
	for d := range counts {
		decades = append(decades, d)
	}
	natsort.Sort(decades)
	for _, d := range decades {
		m.out.Fprintf(m.w, "%s: %d\n", d, counts[d])
	}
}

func (m *Menu) showGenerations() error {
	gens, err := m.tree.Generations()
	if err != nil {
		return err
	}
	for g := 0; g < len(gens); g++ {
		m.out.Fprintf(m.w, "Generation %d: %d\n", g, gens[g])
	}

	return nil
}

func (m *Menu) showDuplicates() {
	dup := m.tree.DuplicateNames()
	if len(dup) == 0 {
		m.out.Fprintln(m.w, "There are no duplicate names in the tree.")
		return
	}
	m.out.Fprintf(m.w, "There are %d duplicate names in the tree:\n", len(dup))
	for _, name := range dup {
		m.out.Fprintf(m.w, "* %s\n", name)
	}
}
