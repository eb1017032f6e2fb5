package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/config"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/events"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/processor"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/scenario"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/heuristic"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/monitoring"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/search"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml next to the config file)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	turns := flag.Int("turns", -1, "Number of turns to simulate (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Scenario seed (-1 to use config default, 0 for time based)")
	watch := flag.Bool("watch", false, "Reload heuristic settings when the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *turns == -1 {
		*turns = cfg.Demo.Turns
	}
	if *seed == -1 {
		*seed = cfg.Scenario.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Search expands candidates on a silent model; the game itself is
	// replayed on one that publishes events.
	fm := processor.NewTurnModel(log.Logger)
	bus := events.NewEventBus(log.Logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-log", log.Logger, zerolog.DebugLevel))
	combatLog := subscribers.NewLoggerSubscriber("combat-log", log.Logger, zerolog.InfoLevel)
	combatLog.SetEventFilter([]string{events.TypeEntityDestroyed, events.TypeGameEnded})
	bus.Subscribe(combatLog)
	gameModel := processor.NewTurnModel(log.Logger, processor.WithPublisher(bus))

	if cfg.Monitoring.Enabled {
		monitor := monitoring.NewGoroutineMonitor(log.Logger, cfg.Monitoring.Interval, cfg.Monitoring.AlertThreshold)
		monitor.RegisterComponent("batch_evaluator", cfg.Search.Workers)
		monitor.Start(ctx)
		defer func() {
			monitor.Stop()
			m := monitor.GetMetrics()
			log.Info().Int("peak", m.Peak).Int("baseline", m.Baseline).Msg("Goroutine usage")
		}()
	}

	var agent atomic.Pointer[demoAgent]
	initial, err := newDemoAgent(cfg, fm)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build heuristic")
	}
	agent.Store(initial)

	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(func(next *config.Config, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			rebuilt, err := newDemoAgent(next, fm)
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring config change")
				return
			}
			agent.Store(rebuilt)
			log.Info().Str("heuristic", rebuilt.h.Name()).Msg("Heuristic reloaded")
		})
		log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config for changes")
	}

	log.Info().Int64("seed", *seed).Msg("Generating scenario")
	gen := scenario.NewGenerator(scenario.ConfigFromSettings(cfg.Scenario), rand.New(rand.NewSource(*seed)))
	snapshot, err := gen.Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate scenario")
	}

	log.Info().
		Int("width", snapshot.BoardWidth()).
		Int("height", snapshot.BoardHeight()).
		Int("players", snapshot.NumPlayers()).
		Int("entities", len(snapshot.Entities())).
		Str("heuristic", initial.h.Name()).
		Msg("Starting greedy self-play")

	var state game.GameState = snapshot
	for turn := 0; turn < *turns && !state.IsGameOver(); turn++ {
		if ctx.Err() != nil {
			log.Info().Msg("Interrupted")
			break
		}

		a := agent.Load()
		player := state.CurrentPlayerID()
		before := heuristic.SafeEvaluate(log.Logger, a.h, fm, state, player)

		decision, err := a.greedy.Decide(ctx, state, player)
		if errors.Is(err, search.ErrNoLegalActions) {
			log.Info().Int("turn", turn+1).Int("player_id", player).Msg("No legal actions, passing")
			if state, err = gameModel.Advance(ctx, state, nil); err != nil {
				log.Fatal().Err(err).Msg("Failed to pass turn")
			}
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("Interrupted")
				break
			}
			log.Fatal().Err(err).Msg("Search failed")
		}

		log.Info().
			Int("turn", turn+1).
			Int("player_id", player).
			Interface("action", decision.Action).
			Int("candidates", decision.Candidates).
			Float64("score_before", before).
			Float64("score_after", decision.Score).
			Msg("Turn played")

		next, err := gameModel.Advance(ctx, state, []game.Action{decision.Action})
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("Interrupted")
				break
			}
			log.Fatal().Err(err).Msg("Failed to apply chosen action")
		}
		logBreakdown(a.h, next, player)
		state = next
	}

	if state.IsGameOver() {
		if winner := state.WinnerID(); winner != game.NoWinner {
			log.Info().Int("winner_player_id", winner).Int("turns", state.Turn()).Msg("Game over")
		} else {
			log.Info().Int("turns", state.Turn()).Msg("Game over without a winner")
		}
	} else {
		log.Info().Int("turns", state.Turn()).Msg("Turn limit reached")
	}
}

// demoAgent bundles the heuristic with the search built on it so a config
// reload can swap both at once.
type demoAgent struct {
	h      heuristic.Heuristic
	greedy *search.GreedyAgent
}

func newDemoAgent(cfg *config.Config, fm game.ForwardModel) (*demoAgent, error) {
	h, err := heuristic.FromConfig(cfg.Heuristic)
	if err != nil {
		return nil, err
	}
	evaluator := search.NewBatchEvaluator(h, fm, cfg.Search.Workers, log.Logger)
	return &demoAgent{
		h:      h,
		greedy: search.NewGreedyAgent(fm, evaluator, cfg.Search.MaxCandidates, log.Logger),
	}, nil
}

func logBreakdown(h heuristic.Heuristic, state game.GameState, playerID int) {
	explainer, ok := h.(*heuristic.AimToKing)
	if !ok || zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}
	b, err := explainer.Explain(state, playerID)
	if err != nil {
		log.Debug().Err(err).Msg("Cannot explain score")
		return
	}
	log.Debug().
		Bool("terminal", b.Terminal).
		Float64("proximity", b.Proximity).
		Float64("king_damage", b.KingDamage).
		Float64("threat", b.Threat).
		Float64("reachability", b.Reachability).
		Float64("material", b.Material).
		Float64("raw", b.Raw).
		Msg("Score breakdown")
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})
}
