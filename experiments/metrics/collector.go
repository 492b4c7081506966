package metrics

import (
	"sync"
	"time"
)

type GameMetric struct {
	StartingPlayer int
	Winner         int // 0 when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	Turns          int
	Points         [2]int
	DiceEvents     map[string]int
	CardEvents     map[string]int
	Builds         [2]int
	Refusals       int
}

type Collector interface {
	Start(startingPlayer int)
	AddTurn()
	AddDiceEvent(name string)
	AddCardEvent(name string)
	AddBuild(player int)
	AddRefusal()
	Complete(winner int, points [2]int) GameMetric
}

type collector struct {
	mu         sync.Mutex
	starting   int
	startTime  time.Time
	turns      int
	diceEvents map[string]int
	cardEvents map[string]int
	builds     [2]int
	refusals   int
}

func NewCollector() Collector {
	return &collector{
		diceEvents: map[string]int{},
		cardEvents: map[string]int{},
	}
}

func (m *collector) Start(startingPlayer int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starting = startingPlayer
	m.startTime = time.Now()
}

func (m *collector) AddTurn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns++
}

func (m *collector) AddDiceEvent(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diceEvents[name]++
}

func (m *collector) AddCardEvent(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cardEvents[name]++
}

func (m *collector) AddBuild(player int) {
	if player < 1 || player > 2 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds[player-1]++
}

func (m *collector) AddRefusal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refusals++
}

func (m *collector) Complete(winner int, points [2]int) GameMetric {
	m.mu.Lock()
	defer m.mu.Unlock()
	end := time.Now()
	dice := make(map[string]int, len(m.diceEvents))
	for k, v := range m.diceEvents {
		dice[k] = v
	}
	cards := make(map[string]int, len(m.cardEvents))
	for k, v := range m.cardEvents {
		cards[k] = v
	}
	return GameMetric{
		StartingPlayer: m.starting,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		Turns:          m.turns,
		Points:         points,
		DiceEvents:     dice,
		CardEvents:     cards,
		Builds:         m.builds,
		Refusals:       m.refusals,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(int)           {}
func (m *dummyCollector) AddTurn()            {}
func (m *dummyCollector) AddDiceEvent(string) {}
func (m *dummyCollector) AddCardEvent(string) {}
func (m *dummyCollector) AddBuild(int)        {}
func (m *dummyCollector) AddRefusal()         {}
func (m *dummyCollector) Complete(winner int, points [2]int) GameMetric {
	return GameMetric{Winner: winner, Points: points}
}
