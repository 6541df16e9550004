package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/lettergrid/config"
	"github.com/domino14/lettergrid/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	config   *config.Config
	execPath string

	session *game.Session
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController starts a session from the config and attaches it to
// a readline prompt.
func NewShellController(cfg *config.Config, execPath string) (*ShellController, error) {
	sc, err := newController(cfg, execPath, os.Stderr)
	if err != nil {
		return nil, err
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mlettergrid>\033[0m ",
		HistoryFile:     "/tmp/lettergrid-readline.tmp",
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc, nil
}

func newController(cfg *config.Config, execPath string, out io.Writer) (*ShellController, error) {
	rules, err := game.RulesFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	session, err := game.NewSession(rules)
	if err != nil {
		return nil, err
	}
	return &ShellController{out: out, config: cfg, execPath: execPath, session: session}, nil
}

// extractFields splits a line into a command, its positional arguments,
// and its -key value options. Quoting follows shell rules. A token like
// -3 is a negative number, not an option.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}

	for i := 1; i < len(fields); i++ {
		if !isOption(fields[i]) {
			args = append(args, fields[i])
			continue
		}
		if i == len(fields)-1 {
			return nil, errWrongOptionSyntax
		}
		key := fields[i][1:]
		options[key] = append(options[key], fields[i+1])
		i++
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isOption(field string) bool {
	if len(field) < 2 || field[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(field)
	return err != nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) error {
	cmd, err := extractFields(line)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil
		}
		return err
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		sig <- syscall.SIGINT
		return errQuit
	}
	resp, err := sc.dispatch(cmd)
	if err != nil {
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "new", "n":
		return sc.newSession(cmd)
	case "draw", "d":
		return sc.draw(cmd)
	case "discard":
		return sc.discard(cmd)
	case "hand", "h":
		return sc.hand(cmd)
	case "place", "pl", "p":
		return sc.place(cmd)
	case "lift":
		return sc.lift(cmd)
	case "move", "mv":
		return sc.move(cmd)
	case "set":
		return sc.set(cmd)
	case "clear":
		return sc.clear(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "words", "w":
		return sc.words(cmd)
	case "score":
		return sc.score(cmd)
	case "bag":
		return sc.bag(cmd)
	case "script":
		return sc.script(cmd)
	case "help":
		return sc.help(cmd)
	default:
		return nil, fmt.Errorf("command %v not found", strconv.Quote(cmd.cmd))
	}
}

// Execute runs a single command line, as given on the command line
// instead of at the prompt.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if err := sc.standardModeSwitch(line, sig); err != nil && !errors.Is(err, errQuit) {
		log.Error().Err(err).Str("line", line).Msg("execute")
		sc.showError(err)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.standardModeSwitch(line, sig)
		if errors.Is(err, errQuit) {
			break
		} else if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("command-failed")
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup releases the prompt. It is safe to call after Loop has exited.
func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
}
