package browse

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/sentcomp/render"
	sent "github.com/revelaction/sentcomp/sentence"
	"github.com/revelaction/sentcomp/storage"
)

const (
	cmdNext      = "next"
	cmdPrev      = "prev"
	cmdStat      = "stat"
	cmdWord      = "word"
	cmdUnmatched = "unmatched"
	cmdQuit      = "quit"
)

var commands = []prompt.Suggest{
	{Text: cmdNext, Description: "show the next example"},
	{Text: cmdPrev, Description: "show the previous example"},
	{Text: cmdUnmatched, Description: "jump to the next example with unmatched compression tokens"},
	{Text: cmdWord, Description: "keep ratio of a word form"},
	{Text: cmdStat, Description: "label counts of the store"},
	{Text: cmdQuit, Description: "exit"},
}

var errQuit = errors.New("quit")

type Handler struct {
	Repo     storage.ExampleReader
	Renderer *render.Renderer
	Out      io.Writer

	// metadata of all examples, ordered by id
	list []sent.Example

	// position in list of the current example, -1 before the first
	current int
}

func NewHandler(repo storage.ExampleReader, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		Repo:     repo,
		Renderer: r,
		Out:      out,
		current:  -1,
	}
}

func (h *Handler) Run() error {
	if err := h.load(); err != nil {
		return err
	}

	fmt.Fprintf(h.Out, "🔑 %d examples. Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit\n", len(h.list))

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("sentcomp browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Out, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		history = append(history, in)

		err := h.Exec(in)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
		}
	}
}

func (h *Handler) load() error {
	if h.list != nil {
		return nil
	}

	list, err := h.Repo.List()
	if err != nil {
		return err
	}
	h.list = list
	return nil
}

// Exec runs a single browse command.
func (h *Handler) Exec(in string) error {
	if err := h.load(); err != nil {
		return err
	}

	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case cmdQuit:
		return errQuit
	case cmdNext:
		return h.show(h.current + 1)
	case cmdPrev:
		return h.show(h.current - 1)
	case cmdUnmatched:
		for i := h.current + 1; i < len(h.list); i++ {
			if h.list[i].Unmatched > 0 {
				return h.show(i)
			}
		}
		return errors.New("no more examples with unmatched tokens")
	case cmdStat:
		return h.stat()
	case cmdWord:
		if len(tokens) != 2 {
			return errors.New("usage: word <form>")
		}
		return h.word(tokens[1])
	}

	id, err := strconv.Atoi(tokens[0])
	if err != nil {
		return fmt.Errorf("unknown command: %s", tokens[0])
	}

	for i, ex := range h.list {
		if ex.Id == id {
			return h.show(i)
		}
	}

	return fmt.Errorf("example not found: %d", id)
}

func (h *Handler) show(pos int) error {
	if pos < 0 || pos >= len(h.list) {
		return errors.New("no more examples")
	}

	ex, err := h.Repo.Read(h.list[pos].Id)
	if err != nil {
		return err
	}

	h.current = pos
	h.Renderer.Example(ex)
	return nil
}

func (h *Handler) stat() error {
	stats, err := h.Repo.Stats()
	if err != nil {
		return err
	}

	ratio := 0.0
	if stats.NumTokens > 0 {
		ratio = float64(stats.NumKept) / float64(stats.NumTokens)
	}

	fmt.Fprintf(h.Out, "Num examples %d, num tokens %d, kept %d (%.2f), unmatched %d\n",
		stats.NumExamples, stats.NumTokens, stats.NumKept, ratio, stats.NumUnmatched)
	return nil
}

func (h *Handler) word(form string) error {
	fc, ok := h.Repo.(storage.FormCounter)
	if !ok {
		return errors.New("store can not count word forms")
	}

	kept, total, err := fc.FormStats(form)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.Out, "%q kept %d of %d\n", strings.ToLower(form), kept, total)
	return nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	befCursor := in.TextBeforeCursor()

	if befCursor == "" || strings.Contains(befCursor, " ") {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(commands, befCursor, true)
}
