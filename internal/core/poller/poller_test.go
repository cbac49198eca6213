package poller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/espn"
	"github.com/kwhalen/nfl-edge/internal/adapters/outbound/openmeteo"
	"github.com/kwhalen/nfl-edge/internal/core/state/store"
	"github.com/kwhalen/nfl-edge/internal/core/strategy/moneyline"
	"github.com/kwhalen/nfl-edge/internal/core/tracking"
	"github.com/kwhalen/nfl-edge/internal/events"
)

// slateFixture holds the mutable scoreboard the fake feed serves, so tests
// can change scores and slate membership between cycles.
type slateFixture struct {
	liveHomeScore int
	liveStatus    string
	blankPoss     bool // serve the live situation without possession fields
	dropFinal     bool // drop the Miami final from the slate
}

func (f *slateFixture) scoreboard() string {
	situation := `{
	          "down": 2, "distance": 6, "yardsToEndzone": 75,
	          "possession": "2", "possessionText": "BUF 25"
	        }`
	if f.blankPoss {
		situation = `{"yardsToEndzone": 75}`
	}
	finalEvent := `,
	    {
	      "id": "102", "date": "2025-09-21T13:00Z",
	      "status": {"displayClock": "0:00", "period": 4, "type": {"name": "STATUS_FINAL"}},
	      "competitions": [{
	        "competitors": [
	          {"homeAway": "home", "score": "27", "winner": true, "team": {"id": "15", "displayName": "Miami Dolphins", "abbreviation": "MIA"}},
	          {"homeAway": "away", "score": "13", "team": {"id": "17", "displayName": "New England Patriots", "abbreviation": "NE"}}
	        ]
	      }]
	    }`
	if f.dropFinal {
		finalEvent = ""
	}
	return fmt.Sprintf(`{
	  "events": [
	    {
	      "id": "100", "date": "2025-09-21T17:00Z",
	      "status": {"displayClock": "8:43", "period": 2, "type": {"name": "%s"}},
	      "competitions": [{
	        "competitors": [
	          {"homeAway": "home", "score": "%d", "team": {"id": "12", "displayName": "Kansas City Chiefs", "abbreviation": "KC"}},
	          {"homeAway": "away", "score": "10", "team": {"id": "2", "displayName": "Buffalo Bills", "abbreviation": "BUF"}}
	        ],
	        "situation": %s
	      }]
	    },
	    {
	      "id": "101", "date": "2025-09-21T20:25Z",
	      "status": {"displayClock": "0:00", "period": 0, "type": {"name": "STATUS_SCHEDULED"}},
	      "competitions": [{
	        "competitors": [
	          {"homeAway": "home", "score": "0", "team": {"id": "8", "displayName": "Detroit Lions", "abbreviation": "DET"}},
	          {"homeAway": "away", "score": "0", "team": {"id": "29", "displayName": "Carolina Panthers", "abbreviation": "CAR"}}
	        ]
	      }]
	    }%s
	  ]
	}`, f.liveStatus, f.liveHomeScore, situation, finalEvent)
}

func newTestPoller(t *testing.T, fixture *slateFixture) (*Poller, *events.Bus) {
	t.Helper()

	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/scoreboard":
			if r.URL.Query().Get("dates") != "" {
				w.Write([]byte(`{"events": []}`)) // season results
				return
			}
			w.Write([]byte(fixture.scoreboard()))
		case "/injuries":
			w.Write([]byte(`{"injuries": [
			  {"displayName": "Carolina Panthers", "injuries": [
			    {"status": "Out", "athlete": {"displayName": "Bryce Young", "position": {"abbreviation": "QB"}}}
			  ]}
			]}`))
		case "/standings":
			w.Write([]byte(`{}`))
		case "/summary":
			w.Write([]byte(`{"plays": [
			  {"text": "J.Allen pass short left for 8 yards", "period": {"number": 2}, "clock": {"displayValue": "8:50"}}
			]}`))
		default:
			t.Errorf("unexpected feed path %s", r.URL.Path)
		}
	}))
	t.Cleanup(feedSrv.Close)

	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"current": {"temperature_2m": 45, "wind_speed_10m": 8, "precipitation": 0, "weather_code": 1}}`))
	}))
	t.Cleanup(weatherSrv.Close)

	positions, err := tracking.OpenStore(filepath.Join(t.TempDir(), "positions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { positions.Close() })

	feeds := espn.NewClient(feedSrv.URL, 2*time.Second, 2025)
	bus := events.NewBus()
	p := New(
		time.Second,
		feeds,
		espn.NewSeasonCache(feeds, time.Hour),
		openmeteo.NewClient(weatherSrv.URL, 2*time.Second, time.Hour),
		store.New(),
		positions,
		moneyline.NewEngine(moneyline.DefaultConfig()),
		bus,
	)
	return p, bus
}

func TestCycleAssemblesDashboard(t *testing.T) {
	fixture := &slateFixture{liveHomeScore: 14, liveStatus: "STATUS_IN_PROGRESS"}
	p, bus := newTestPoller(t, fixture)

	var published int
	bus.Subscribe(events.EventCycleComplete, func(events.Event) error {
		published++
		return nil
	})

	require.Nil(t, p.Latest())
	p.cycle(context.Background())

	dash := p.Latest()
	require.NotNil(t, dash)
	assert.Equal(t, 1, published)

	require.Len(t, dash.Live, 1)
	live := dash.Live[0]
	assert.Equal(t, "Buffalo@Kansas City", live.GameKey)
	assert.Equal(t, "Q2", live.Quarter)
	assert.Equal(t, 25, live.Ball.Yard)
	assert.Equal(t, "BUF", live.Ball.PossCode)
	assert.Equal(t, "right", live.Ball.Direction)
	assert.NotEmpty(t, live.State)
	assert.Contains(t, live.TradeURL, "KXNFLGAME-25SEP21BUFKC")
	require.Len(t, live.Plays, 1)

	require.Len(t, dash.Picks, 1)
	pick := dash.Picks[0]
	assert.Equal(t, "Carolina@Detroit", pick.GameKey)
	assert.Equal(t, "Detroit", pick.Pick, "elite hosts with the visiting QB out")
	assert.NotEmpty(t, pick.Tier)
	assert.Equal(t, "Dome", pick.WeatherBadge)
	assert.Contains(t, pick.AwayOut, "Bryce Young (QB)")

	require.Len(t, dash.Final, 1)
	assert.Equal(t, "MIA", dash.Final[0].WinnerCode)

	require.Len(t, dash.Injuries, 1)
	assert.Equal(t, "Bryce Young", dash.Injuries[0].Name)
}

func TestCyclePublishesScoreChangeAndFinal(t *testing.T) {
	fixture := &slateFixture{liveHomeScore: 14, liveStatus: "STATUS_IN_PROGRESS"}
	p, bus := newTestPoller(t, fixture)

	var scoreEvents []events.ScoreChangeEvent
	bus.Subscribe(events.EventScoreChange, func(e events.Event) error {
		scoreEvents = append(scoreEvents, e.Payload.(events.ScoreChangeEvent))
		return nil
	})
	var finals []events.GameFinalEvent
	bus.Subscribe(events.EventGameFinal, func(e events.Event) error {
		finals = append(finals, e.Payload.(events.GameFinalEvent))
		return nil
	})

	p.cycle(context.Background())
	assert.Empty(t, scoreEvents, "first sighting is not a change")
	require.Len(t, finals, 1, "final game is announced on first sighting")
	assert.Equal(t, "Miami", finals[0].Winner)

	fixture.liveHomeScore = 21
	p.cycle(context.Background())

	require.Len(t, scoreEvents, 1)
	assert.Equal(t, "Buffalo@Kansas City", scoreEvents[0].GameKey)
	assert.Equal(t, 14, scoreEvents[0].PrevHome)
	assert.Equal(t, 21, scoreEvents[0].HomeScore)

	assert.Len(t, finals, 1, "final fires exactly once")
}

func TestCyclePersistsBallMemory(t *testing.T) {
	fixture := &slateFixture{liveHomeScore: 14, liveStatus: "STATUS_IN_PROGRESS"}
	p, _ := newTestPoller(t, fixture)

	p.cycle(context.Background())

	mem := p.memories.Get("Buffalo@Kansas City")
	require.NotNil(t, mem)
	assert.Equal(t, 25, mem.BallYard)
	assert.Equal(t, "Buffalo", mem.PossTeam)
	assert.Equal(t, "One Poss", mem.PressureBucket)
}

func TestCompressionFiresWithoutPriorMemory(t *testing.T) {
	// Possession text never parses, so the resolver yields no memory of its
	// own. The pressure bucket still has to carry across cycles or the
	// Two Poss → One Poss edge is silently lost.
	fixture := &slateFixture{liveHomeScore: 20, liveStatus: "STATUS_IN_PROGRESS", blankPoss: true}
	p, _ := newTestPoller(t, fixture)

	p.cycle(context.Background())

	mem := p.memories.Get("Buffalo@Kansas City")
	require.NotNil(t, mem, "bucket is persisted even when nothing parsed")
	assert.Equal(t, "Two Poss", mem.PressureBucket)
	assert.Equal(t, 50, mem.BallYard)

	fixture.liveHomeScore = 17
	p.cycle(context.Background())

	dash := p.Latest()
	require.Len(t, dash.Live, 1)
	assert.Contains(t, dash.Live[0].Triggers, "Score Compression")
	assert.Equal(t, "One Poss", p.memories.Get("Buffalo@Kansas City").PressureBucket)
}

func TestCyclePrunesDepartedFinals(t *testing.T) {
	fixture := &slateFixture{liveHomeScore: 14, liveStatus: "STATUS_IN_PROGRESS"}
	p, bus := newTestPoller(t, fixture)

	var finals int
	bus.Subscribe(events.EventGameFinal, func(events.Event) error {
		finals++
		return nil
	})

	p.cycle(context.Background())
	require.Equal(t, 1, finals)
	assert.True(t, p.finalsSeen["New England@Miami"])

	// Next day's slate no longer carries yesterday's final.
	fixture.dropFinal = true
	p.cycle(context.Background())
	assert.NotContains(t, p.finalsSeen, "New England@Miami")
}

func TestCycleAnnotatesPositions(t *testing.T) {
	fixture := &slateFixture{liveHomeScore: 24, liveStatus: "STATUS_IN_PROGRESS"}
	p, _ := newTestPoller(t, fixture)

	pos := tracking.Position{GameKey: "Buffalo@Kansas City", Pick: "Kansas City", PriceCents: 60, Contracts: 10}
	require.NoError(t, p.positions.Add(&pos))

	p.cycle(context.Background())

	dash := p.Latest()
	require.Len(t, dash.Positions, 1)
	card := dash.Positions[0]
	assert.Equal(t, tracking.StatusCruising, card.Annotation.Status)
	assert.Equal(t, "Q2 8:43", card.Annotation.GameStatus)
	assert.Contains(t, card.TradeURL, "KXNFLGAME-25SEP21BUFKC")
}
