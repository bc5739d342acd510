// Package console implements the interactive menu loop: search movies,
// show detail for a selection, export the selection's graph document.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moviegraph/moviegraph/internal/apperr"
	"github.com/moviegraph/moviegraph/internal/export"
	"github.com/moviegraph/moviegraph/internal/movie"
)

const maxActorsShown = 5

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	ruleStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Console drives one interactive session. All state lives on a single
// goroutine: the last search results for index selection, and the session
// slot holding the last fetched detail record.
type Console struct {
	svc     *movie.Service
	session *movie.Session
	writer  *export.Writer
	logger  *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	lastResults []movie.MovieRef
}

func New(svc *movie.Service, session *movie.Session, writer *export.Writer, logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:     svc,
		session: session,
		writer:  writer,
		logger:  logger,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user quits or input ends. Every coded
// error is reported and control returns to the menu. The session selection
// does not outlive the loop.
func (c *Console) Run(ctx context.Context) error {
	defer c.session.Clear()
	for {
		c.printMenu()
		choice, ok := c.prompt("Choice (1-4): ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.doSearch(ctx)
		case "2":
			c.doDetail(ctx)
		case "3":
			c.doExport(ctx)
		case "4":
			fmt.Fprintln(c.out, "Bye.")
			return nil
		default:
			c.reportError(apperr.New(apperr.CodeValidation, "enter a number between 1 and 4"))
		}
	}
}

func (c *Console) printMenu() {
	rule := ruleStyle.Render(strings.Repeat("=", 50))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, headerStyle.Render("MovieGraph: Movies database browser"))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "1. Search movies")
	fmt.Fprintln(c.out, "2. Show movie detail")
	fmt.Fprintln(c.out, "3. Export graph for selected movie")
	fmt.Fprintln(c.out, "4. Quit")
	fmt.Fprintln(c.out, rule)
}

func (c *Console) doSearch(ctx context.Context) {
	term, ok := c.prompt("Title to search for: ")
	if !ok {
		return
	}

	movies, err := c.svc.Search(ctx, term)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(movies) == 0 {
		fmt.Fprintln(c.out, "No matches.")
		c.lastResults = nil
		return
	}

	fmt.Fprintf(c.out, "\n%d movie(s) found:\n\n", len(movies))
	for i, m := range movies {
		fmt.Fprintf(c.out, "%d) %s (%s)\n", i+1, m.Title, yearLabel(m.Released))
	}
	c.lastResults = movies
}

func (c *Console) doDetail(ctx context.Context) {
	idx, ok := c.pickIndex()
	if !ok {
		return
	}

	rec, err := c.svc.Detail(ctx, c.lastResults[idx].Title)
	if err != nil {
		c.reportError(err)
		return
	}

	c.session.Select(rec)
	c.printDetail(rec)
}

func (c *Console) doExport(ctx context.Context) {
	if _, err := c.session.Selected(); err != nil {
		// With search results on hand, offer an index pick instead of
		// failing outright.
		if len(c.lastResults) == 0 {
			c.reportError(err)
			return
		}
		fmt.Fprintln(c.out, "No movie selected; picking from the last search.")
		idx, ok := c.pickIndex()
		if !ok {
			return
		}
		rec, err := c.svc.Detail(ctx, c.lastResults[idx].Title)
		if err != nil {
			c.reportError(err)
			return
		}
		c.session.Select(rec)
	}

	rec, err := c.session.Selected()
	if err != nil {
		c.reportError(err)
		return
	}

	path, err := c.writer.Write(rec)
	if err != nil {
		c.reportError(err)
		return
	}

	c.logger.Info("graph exported", "title", rec.Movie.Title, "path", path)
	fmt.Fprintf(c.out, "Graph written to %s\n", path)
}

// pickIndex prompts for a 1-based index into the last search results.
func (c *Console) pickIndex() (int, bool) {
	if len(c.lastResults) == 0 {
		c.reportError(apperr.New(apperr.CodeState, "search for a movie first"))
		return 0, false
	}

	input, ok := c.prompt(fmt.Sprintf("Pick a movie (1-%d): ", len(c.lastResults)))
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(c.lastResults) {
		c.reportError(apperr.New(apperr.CodeValidation, "pick a number from the list"))
		return 0, false
	}
	return n - 1, true
}

func (c *Console) printDetail(rec *movie.DetailRecord) {
	rule := ruleStyle.Render(strings.Repeat("=", 50))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, headerStyle.Render("Movie detail"))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "Title: %s\n", rec.Movie.Title)
	fmt.Fprintf(c.out, "Year: %s\n", yearLabel(rec.Movie.Released))
	if rec.Movie.Tagline != "" {
		fmt.Fprintf(c.out, "Tagline: %s\n", rec.Movie.Tagline)
	}

	fmt.Fprintln(c.out, "\nDirector(s):")
	printNames(c.out, rec.Directors(), len(rec.Directors()))

	actors := rec.Actors()
	fmt.Fprintln(c.out, "\nCast:")
	printNames(c.out, actors, maxActorsShown)
	if len(actors) > maxActorsShown {
		fmt.Fprintf(c.out, "   ... and %d more\n", len(actors)-maxActorsShown)
	}
	fmt.Fprintln(c.out, rule)
}

func printNames(out io.Writer, names []string, limit int) {
	if len(names) == 0 {
		fmt.Fprintln(out, "   (none listed)")
		return
	}
	if limit > len(names) {
		limit = len(names)
	}
	for _, name := range names[:limit] {
		fmt.Fprintf(out, "   - %s\n", name)
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) reportError(err error) {
	c.logger.Debug("console action failed", "error", err)
	fmt.Fprintln(c.out, errorStyle.Render("Error: "+apperr.UserMessage(err)))
}

func yearLabel(released int) string {
	if released == 0 {
		return "unknown"
	}
	return strconv.Itoa(released)
}
