// Command agent is the production entrypoint a tournament harness or
// reference-board driver shells out to: play realizes the Agent contract
// over stdin/stdout, bench and perft are self-check/throughput tools, and
// tune writes the default parameters as a starting file (it does not run
// the tuner itself).
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/engine"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

var (
	cfg zerolog.Logger

	strategyName  string
	ply           int
	quiescencePly int
	paramFilePath string
	budgetMillis  int64
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "agent",
		Short: "Three-player chess decision core",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&strategyName, "strategy", "maximax", "search strategy: "+strategyNames())
	root.PersistentFlags().IntVar(&ply, "ply", engine.InitialPly, "search depth in plies")
	root.PersistentFlags().IntVar(&quiescencePly, "quiescence-ply", 0, "extra capture-only plies (quiescence/restricted-quiescence only)")
	root.PersistentFlags().StringVar(&paramFilePath, "params", "", "evaluation parameter file (YAML); default parameters if empty")
	root.PersistentFlags().Int64Var(&budgetMillis, "budget-ms", 0, "clock time in milliseconds handed to a fresh TimeHandler each turn, which gives iterative deepening 1/ExpectedGameTurns of it; 0 runs a single fixed-depth search instead")
	root.PersistentFlags().String("log-format", "console", "log output: console or json")

	viper.BindPFlag("strategy", root.PersistentFlags().Lookup("strategy"))
	viper.BindPFlag("ply", root.PersistentFlags().Lookup("ply"))
	viper.BindPFlag("quiescence-ply", root.PersistentFlags().Lookup("quiescence-ply"))
	viper.BindPFlag("params", root.PersistentFlags().Lookup("params"))
	viper.BindPFlag("budget-ms", root.PersistentFlags().Lookup("budget-ms"))
	viper.BindPFlag("log-format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newPlayCommand(), newBenchCommand(), newPerftCommand(), newTuneCommand())
	return root
}

func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("AGENT")
	viper.AutomaticEnv()

	var writer io.Writer = os.Stderr
	if viper.GetString("log-format") != "json" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	cfg = zerolog.New(writer).With().Timestamp().Logger()
	return nil
}

func strategyNames() string {
	s := ""
	for name := range engine.Strategies {
		if s != "" {
			s += ", "
		}
		s += name
	}
	return s
}

func loadParams() (*engine.Params, error) {
	if paramFilePath == "" {
		return engine.DefaultParams(), nil
	}
	return engine.LoadParamFile(paramFilePath)
}

func buildAgent(params *engine.Params) (*engine.SearchAgent, error) {
	return engine.NewSearchAgent(strategyName, board.GlobalCatalogue(), params, ply, quiescencePly, budgetMillis, cfg)
}

// snapshot is the JSON-line shape play reads from stdin, mirroring the
// ReferenceBoard contract closely enough to rebuild a refboard.Board from
// it, which is then driven through engine.Agent like any other
// engine.ReferenceBoard.
type snapshot struct {
	Turn   string           `json:"turn"`
	Pieces []snapshotPiece  `json:"pieces"`
	Remain map[string]int64 `json:"time_remaining_millis"`
}

type snapshotPiece struct {
	Segment int    `json:"segment"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Type    string `json:"type"`
	Color   string `json:"color"`
}

type moveOut struct {
	From snapshotPosition `json:"from"`
	To   snapshotPosition `json:"to"`
}

type snapshotPosition struct {
	Segment int `json:"segment"`
	Row     int `json:"row"`
	Col     int `json:"col"`
}

func parseColor(s string) (board.Color, error) {
	switch s {
	case "white":
		return board.White, nil
	case "gray":
		return board.Gray, nil
	case "black":
		return board.Black, nil
	default:
		return 0, fmt.Errorf("agent: unknown color %q", s)
	}
}

func parseType(s string) (board.PieceType, error) {
	switch s {
	case "pawn":
		return board.Pawn, nil
	case "knight":
		return board.Knight, nil
	case "bishop":
		return board.Bishop, nil
	case "rook":
		return board.Rook, nil
	case "queen":
		return board.Queen, nil
	case "king":
		return board.King, nil
	default:
		return 0, fmt.Errorf("agent: unknown piece type %q", s)
	}
}

// snapshotToReferenceBoard builds the refboard.Board a snapshot describes,
// for driving through engine.Agent as an engine.ReferenceBoard — the
// bespoke JSON shape never reaches the search core directly.
func snapshotToReferenceBoard(snap snapshot) (*refboard.Board, error) {
	turn, err := parseColor(snap.Turn)
	if err != nil {
		return nil, err
	}
	ref := refboard.New(turn)
	for _, p := range snap.Pieces {
		color, err := parseColor(p.Color)
		if err != nil {
			return nil, err
		}
		t, err := parseType(p.Type)
		if err != nil {
			return nil, err
		}
		if !board.ValidPosition(p.Segment, p.Row, p.Col) {
			return nil, fmt.Errorf("agent: piece at segment %d row %d col %d: %w", p.Segment, p.Row, p.Col, board.ErrOutOfManifold)
		}
		ref.Place(refboard.Position{Segment: p.Segment, Row: p.Row, Col: p.Col}, board.NewPiece(t, color))
	}
	for name, millis := range snap.Remain {
		color, err := parseColor(name)
		if err != nil {
			return nil, err
		}
		ref.SetTimeRemaining(color, millis)
	}
	return ref, nil
}

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Read reference-board snapshots as JSON lines on stdin, write chosen moves as JSON lines on stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams()
			if err != nil {
				return err
			}
			agent, err := buildAgent(params)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
			out := json.NewEncoder(os.Stdout)

			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				var snap snapshot
				if err := json.Unmarshal(line, &snap); err != nil {
					cfg.Error().Err(err).Msg("malformed snapshot line")
					continue
				}

				ref, err := snapshotToReferenceBoard(snap)
				if err != nil {
					cfg.Error().Err(err).Msg("invalid snapshot")
					continue
				}

				from, to, err := agent.PlayMove(ref)
				if err != nil {
					cfg.Error().Err(err).Msg("agent failed to choose a move")
					continue
				}
				if err := out.Encode(moveOut{
					From: snapshotPosition{Segment: from.Segment, Row: from.Row, Col: from.Col},
					To:   snapshotPosition{Segment: to.Segment, Row: to.Row, Col: to.Col},
				}); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

func newBenchCommand() *cobra.Command {
	var positions int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a fixed search depth over synthetic positions and report nodes/sec per strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := engine.DefaultParams()
			ref := refboard.New(board.White)
			ref.Place(refboard.Position{Segment: 0, Row: 0, Col: 4}, board.NewPiece(board.King, board.White))
			ref.Place(refboard.Position{Segment: 1, Row: 0, Col: 4}, board.NewPiece(board.King, board.Gray))
			ref.Place(refboard.Position{Segment: 2, Row: 0, Col: 4}, board.NewPiece(board.King, board.Black))
			state := board.FromReferenceBoard(ref.AsExternalBoard(), params.Table())

			for name, factory := range engine.Strategies {
				strategy := factory(board.GlobalCatalogue(), params, ply, quiescencePly)
				start := time.Now()
				var nodes int64
				for i := 0; i < positions; i++ {
					nodes += strategy.Decide(state).Nodes
				}
				elapsed := time.Since(start)
				cfg.Info().
					Str("strategy", name).
					Int64("nodes", nodes).
					Dur("elapsed", elapsed).
					Float64("nps", float64(nodes)/elapsed.Seconds()).
					Msg("bench")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&positions, "positions", 10, "number of repeated searches per strategy")
	return cmd
}

func newPerftCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "perft",
		Short: "Report move-catalogue statistics per color/piece type",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, color := range []board.Color{board.White, board.Gray, board.Black} {
				for _, s := range board.CatalogueStats(color) {
					cfg.Info().
						Str("color", color.String()).
						Str("type", s.Type.String()).
						Int("moves", s.MoveCount).
						Int("max_ray_length", s.MaxLength).
						Msg("catalogue stats")
				}
			}
			return nil
		},
	}
}

func newTuneCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Write the default evaluation parameters with --out (does not run tuner.Tune; see tuner package)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Info().Msg("tune: no corpus path given on this minimal CLI; see tuner.Tune for programmatic use")
			if outPath != "" {
				params := engine.DefaultParams()
				return engine.SaveParamFile(outPath, params)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the (unmodified) default parameters to this path as a starting point")
	return cmd
}
