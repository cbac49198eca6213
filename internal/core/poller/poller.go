// Package poller runs the poll cycle: fetch the feeds, resolve per-game
// state, score the slate, and publish the assembled dashboard on the bus.
package poller

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/espn"
	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/openmeteo"
	"github.com/kwhalen/nfl-edge/internal/core/ballpos"
	"github.com/kwhalen/nfl-edge/internal/core/display"
	"github.com/kwhalen/nfl-edge/internal/core/state/game"
	"github.com/kwhalen/nfl-edge/internal/core/state/store"
	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/core/stress"
	"github.com/kwhalen/nfl-edge/internal/core/ticker"
	"github.com/kwhalen/nfl-edge/internal/core/tracking"
	"github.com/kwhalen/nfl-edge/internal/events"
	"github.com/kwhalen/nfl-edge/internal/nfl"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

const recentPlayCount = 5

// Poller drives the fetch → resolve → score → publish loop.
type Poller struct {
	interval time.Duration

	feeds     *espn.Client
	season    *espn.SeasonCache
	weather   *openmeteo.Client
	memories  *store.MemoryStore
	positions *tracking.Store
	engine    *moneyline.Engine
	bus       *events.Bus

	// Previous cycle's snapshots, for score-change and final-edge detection.
	prev       map[string]*game.Snapshot
	finalsSeen map[string]bool

	busy atomic.Bool

	mu     sync.RWMutex
	latest *display.Dashboard
}

func New(interval time.Duration, feeds *espn.Client, season *espn.SeasonCache,
	weather *openmeteo.Client, memories *store.MemoryStore,
	positions *tracking.Store, engine *moneyline.Engine, bus *events.Bus) *Poller {
	return &Poller{
		interval:   interval,
		feeds:      feeds,
		season:     season,
		weather:    weather,
		memories:   memories,
		positions:  positions,
		engine:     engine,
		bus:        bus,
		prev:       map[string]*game.Snapshot{},
		finalsSeen: map[string]bool{},
	}
}

// Latest returns the most recently assembled dashboard, or nil before the
// first cycle completes.
func (p *Poller) Latest() *display.Dashboard {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest
}

// Run executes cycles at the configured interval until ctx is cancelled.
// A tick that fires while the previous cycle is still in flight is dropped
// rather than overlapped, so slow feeds never stack cycles.
func (p *Poller) Run(ctx context.Context) {
	p.tryCycle(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.tryCycle(ctx)
		}
	}
}

func (p *Poller) tryCycle(ctx context.Context) {
	if !p.busy.CompareAndSwap(false, true) {
		telemetry.Debugf("poller: cycle still in flight, skipping tick")
		return
	}
	defer p.busy.Store(false)

	start := time.Now()
	p.cycle(ctx)
	telemetry.Metrics.PollCycles.Inc()
	telemetry.Metrics.CycleLatency.Record(time.Since(start))
}

func (p *Poller) cycle(ctx context.Context) {
	// Scoreboard first: everything downstream keys off the slate.
	games := p.feeds.FetchScoreboard(ctx)

	// Injuries and season data move slowly; fetch them alongside each other.
	var (
		wg       sync.WaitGroup
		injuries map[string][]moneyline.Injury
		season   *espn.SeasonData
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		injuries = p.feeds.FetchInjuries(ctx)
	}()
	go func() {
		defer wg.Done()
		season = p.season.Get(ctx)
	}()
	wg.Wait()

	dash := &display.Dashboard{GeneratedAt: time.Now()}

	keys := make([]string, 0, len(games))
	active := make(map[string]bool, len(games))
	liveCount := 0
	for k := range games {
		keys = append(keys, k)
		active[k] = true
	}
	sort.Strings(keys)

	for _, key := range keys {
		snap := games[key]
		p.detectTransitions(snap)

		switch {
		case snap.IsLive():
			liveCount++
			dash.Live = append(dash.Live, p.liveCard(ctx, snap))
		case snap.IsFinal():
			dash.Final = append(dash.Final, finalCard(snap))
		default:
			dash.Picks = append(dash.Picks, p.pickCard(ctx, snap, injuries, season))
		}
	}

	// Highest-conviction picks first; ties stay in slate order.
	sort.SliceStable(dash.Picks, func(i, j int) bool {
		return dash.Picks[i].Score > dash.Picks[j].Score
	})

	dash.Positions = p.positionCards(games)
	dash.Injuries = display.KeyInjuries(injuries)
	dash.HotTeams, dash.ColdTeams = display.FormLists(season.LastFive)

	// Drop per-game state for games no longer on the slate, but only when
	// the feed returned something: an empty slate usually means a fetch
	// error, and wiping memory on a transient failure loses drive state.
	if len(games) > 0 {
		if n := p.memories.Prune(active); n > 0 {
			telemetry.Debugf("poller: pruned %d stale game memories", n)
		}
		for k := range p.finalsSeen {
			if !active[k] {
				delete(p.finalsSeen, k)
			}
		}
		p.prev = games
	}

	telemetry.Metrics.ActiveGames.Set(int64(liveCount))

	p.mu.Lock()
	p.latest = dash
	p.mu.Unlock()

	p.bus.Publish(events.Event{
		Type:      events.EventCycleComplete,
		Timestamp: dash.GeneratedAt,
		Payload:   dash,
	})
}

// detectTransitions compares snap against the previous cycle and publishes
// score-change and first-final events.
func (p *Poller) detectTransitions(snap *game.Snapshot) {
	old, seen := p.prev[snap.GameKey]

	if seen && (old.HomeScore != snap.HomeScore || old.AwayScore != snap.AwayScore) {
		telemetry.Metrics.ScoreChanges.Inc()
		p.bus.Publish(events.Event{
			Type:      events.EventScoreChange,
			GameKey:   snap.GameKey,
			Timestamp: time.Now(),
			Payload: events.ScoreChangeEvent{
				GameKey:   snap.GameKey,
				HomeTeam:  snap.HomeTeam,
				AwayTeam:  snap.AwayTeam,
				HomeScore: snap.HomeScore,
				AwayScore: snap.AwayScore,
				PrevHome:  old.HomeScore,
				PrevAway:  old.AwayScore,
				Quarter:   snap.Quarter,
				Clock:     snap.Clock,
			},
		})
	}

	if snap.IsFinal() && !p.finalsSeen[snap.GameKey] {
		p.finalsSeen[snap.GameKey] = true
		winner := snap.HomeTeam
		if snap.AwayScore > snap.HomeScore {
			winner = snap.AwayTeam
		}
		p.bus.Publish(events.Event{
			Type:      events.EventGameFinal,
			GameKey:   snap.GameKey,
			Timestamp: time.Now(),
			Payload: events.GameFinalEvent{
				GameKey:   snap.GameKey,
				HomeTeam:  snap.HomeTeam,
				AwayTeam:  snap.AwayTeam,
				HomeScore: snap.HomeScore,
				AwayScore: snap.AwayScore,
				Winner:    winner,
			},
		})
	}
}

func (p *Poller) liveCard(ctx context.Context, snap *game.Snapshot) display.LiveCard {
	prev := p.memories.Get(snap.GameKey)
	res, mem := ballpos.Resolve(snap, prev)

	st := stress.Evaluate(stress.Input{
		Down:         snap.Down,
		Distance:     snap.Distance,
		FieldPos:     res.Yard,
		Quarter:      snap.Quarter,
		ClockSeconds: snap.ClockSeconds(),
		ScoreDiff:    snap.ScoreDiff(),
		HadTurnover:  snap.HadTurnover,
		PrevBucket:   prevBucket(prev),
	})

	// The resolver only yields memory on a clean parse; the pressure
	// bucket still advances every cycle so compression fires exactly once.
	// Before the first clean parse there is no record at all, so seed a
	// midfield one; the compression edge must not wait for possession text.
	if mem == nil {
		mem = prev
	}
	if mem == nil {
		mem = &game.Memory{BallYard: 50}
	}
	mem.PressureBucket = st.Bucket
	p.memories.Put(snap.GameKey, mem)

	card := display.LiveCard{
		GameKey:    snap.GameKey,
		HomeTeam:   snap.HomeTeam,
		AwayTeam:   snap.AwayTeam,
		HomeScore:  snap.HomeScore,
		AwayScore:  snap.AwayScore,
		Quarter:    display.QuarterLabel(snap.Quarter),
		Clock:      snap.Clock,
		State:      string(st.Level),
		StateColor: display.StateColor(st.Level),
		Move:       st.Move,
		Pressure:   st.Bucket,
		RedZone:    snap.RedZone,
		Triggers:   st.Triggers,
		Ball:       display.BallFor(res, nfl.Code(res.PossTeam), res.PossTeam == snap.HomeTeam),
		TradeURL:   ticker.MoneylineURL(snap.AwayTeam, snap.HomeTeam, snap.GameDate),
	}

	for _, pl := range p.feeds.FetchRecentPlays(ctx, snap.EventID) {
		card.Plays = append(card.Plays, display.Play(pl))
	}
	if len(card.Plays) > recentPlayCount {
		card.Plays = card.Plays[:recentPlayCount]
	}
	return card
}

func finalCard(snap *game.Snapshot) display.FinalCard {
	winner := snap.HomeTeam
	if snap.AwayScore > snap.HomeScore {
		winner = snap.AwayTeam
	}
	return display.FinalCard{
		GameKey:    snap.GameKey,
		HomeTeam:   snap.HomeTeam,
		AwayTeam:   snap.AwayTeam,
		HomeScore:  snap.HomeScore,
		AwayScore:  snap.AwayScore,
		WinnerCode: nfl.Code(winner),
	}
}

func (p *Poller) pickCard(ctx context.Context, snap *game.Snapshot,
	injuries map[string][]moneyline.Injury, season *espn.SeasonData) display.PickCard {

	reading := p.weather.ForGame(ctx, snap.HomeTeam)

	restKnown := len(season.LastGame) > 0
	res := p.engine.Score(moneyline.Matchup{
		HomeTeam: snap.HomeTeam,
		AwayTeam: snap.AwayTeam,
		Injuries: injuries,
		Weather:  reading.Model(),
		Form:     season.LastFive,
		Rest: moneyline.Rest{
			HomeDays: season.RestDays(snap.HomeTeam, snap.GameDate),
			AwayDays: season.RestDays(snap.AwayTeam, snap.GameDate),
			Known:    restKnown,
		},
	})

	opponent := snap.AwayTeam
	pickDVOA, oppDVOA := res.HomeDVOA, res.AwayDVOA
	if res.Pick == snap.AwayTeam {
		opponent = snap.HomeTeam
		pickDVOA, oppDVOA = res.AwayDVOA, res.HomeDVOA
	}

	return display.PickCard{
		GameKey:      snap.GameKey,
		Pick:         res.Pick,
		PickCode:     nfl.Code(res.Pick),
		Opponent:     opponent,
		Score:        res.PickScore,
		HomeScore:    res.HomeScore,
		AwayScore:    res.AwayScore,
		Tier:         res.Tier,
		TierColor:    display.TierColor(res.Tier),
		Reasons:      res.Reasons,
		PickDVOA:     pickDVOA,
		OppDVOA:      oppDVOA,
		WeatherBadge: display.WeatherBadge(reading.Dome, reading.Impact, reading.WindMPH, reading.TempF),
		HomeOut:      res.HomeOut,
		AwayOut:      res.AwayOut,
		TradeURL:     ticker.MoneylineURL(snap.AwayTeam, snap.HomeTeam, snap.GameDate),
	}
}

func (p *Poller) positionCards(games map[string]*game.Snapshot) []display.PositionCard {
	list, err := p.positions.List()
	if err != nil {
		telemetry.Warnf("poller: position list: %v", err)
		return nil
	}
	cards := make([]display.PositionCard, 0, len(list))
	for _, pos := range list {
		snap := games[pos.GameKey] // nil off-slate renders as scheduled
		card := display.PositionCard{
			Position:   pos,
			Annotation: tracking.Annotate(pos, snap),
		}
		if snap != nil {
			card.TradeURL = ticker.MoneylineURL(snap.AwayTeam, snap.HomeTeam, snap.GameDate)
		}
		cards = append(cards, card)
	}
	return cards
}

func prevBucket(m *game.Memory) string {
	if m == nil {
		return ""
	}
	return m.PressureBucket
}
