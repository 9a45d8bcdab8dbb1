// pegsol is a terminal application to play peg solitaire.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pegsol/config"
	"pegsol/engine"
	"pegsol/types"
	"pegsol/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoard      = flag.String("board", "", "Board type (english or european)")
	flagDiagonal   = flag.Bool("diagonal", false, "Allow diagonal jumps")
	flagMoves      = flag.String("moves", "", "Comma-separated opening moves to play first, e.g. d2-d4,f3-d3")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.PegBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("pegsol %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log.Info().Str("version", Version).Msg("starting pegsol")

	gameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	quickStart := *flagQuickStart || *flagBoard != "" || *flagDiagonal || *flagMoves != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● pegsol ")
	rootPage.SetBorderColor(ui.MenuColors.Border)

	gameHint = tview.NewTextView()
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewPegBoard(cfg, gameHint)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyEnter:
			gameBoard.Activate()
		case tcell.KeyEsc:
			gameBoard.ClearSelection()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(0, -1)
			case 'j':
				gameBoard.MoveCursor(1, 0)
			case 'k':
				gameBoard.MoveCursor(-1, 0)
			case 'l':
				gameBoard.MoveCursor(0, 1)
			case ' ':
				gameBoard.Activate()
			case 'd':
				gameBoard.ToggleDiagonal()
			case 'r':
				gameBoard.Restart()
			case 'n':
				rootPage.SwitchToPage("setup")
			case 'q':
				if !gameBoard.ClearSelection() {
					rootPage.SwitchToPage("setup")
				}
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		gameCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg, nil)
		},
		func() {
			app.Stop()
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)

	if quickStart {
		if err := startGame(gameCfg, splitMoves(*flagMoves)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(2)
		}
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Error().Err(err).Msg("application exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// startGame starts a game with the given configuration, playing any
// opening moves before handing the board to the player.
func startGame(gameCfg engine.GameConfig, opening []string) error {
	session := engine.NewSession(gameCfg)
	for _, text := range opening {
		from, to, err := engine.ParseMove(text, session.Board().Size())
		if err != nil {
			return err
		}
		if _, err := session.Play(from, to); err != nil {
			return fmt.Errorf("opening move %s: %w", text, err)
		}
	}

	log.Info().
		Str("board", gameCfg.Shape.String()).
		Bool("diagonal", gameCfg.Diagonal).
		Int("opening_moves", len(opening)).
		Msg("new game")

	gameBoard.SetSession(session)
	rootPage.SwitchToPage("gameview")
	return nil
}

// buildGameConfigFromFlags creates a GameConfig from config defaults and
// command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := engine.GameConfig{
		Shape:    cfg.DefaultShape(),
		Diagonal: cfg.Game.AllowDiagonal,
	}

	if *flagBoard != "" {
		shape, err := types.ParseShape(*flagBoard)
		if err != nil {
			return gameCfg, err
		}
		gameCfg.Shape = shape
	}

	if *flagDiagonal {
		gameCfg.Diagonal = true
	}

	return gameCfg, nil
}

func splitMoves(list string) []string {
	var moves []string
	for _, m := range strings.Split(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			moves = append(moves, m)
		}
	}
	return moves
}

// setupLogging sends zerolog output to the configured log file, since the
// terminal belongs to the UI.
func setupLogging(c *config.Config) (func(), error) {
	path, err := c.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zerolog.SetGlobalLevel(c.LogLevel())
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}
