package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFinalScoreNoState(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0.0, SampleFinalScore(nil, []float64{10, 20, 30}, rng))
		assert.Equal(t, 0.0, SampleFinalScore(&LiveState{HasGameToday: false, PointsSoFar: 12}, []float64{10}, rng))
	}
}

func TestSampleFinalScoreGameOver(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	state := &LiveState{HasGameToday: true, FractionDone: 1, PointsSoFar: 37.5}

	for _, pop := range [][]float64{nil, {}, {1}, {10, 90, 400}} {
		for i := 0; i < 50; i++ {
			assert.Equal(t, 37.5, SampleFinalScore(state, pop, rng))
		}
	}
}

func TestSampleFinalScoreWithoutHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	state := &LiveState{HasGameToday: true, FractionDone: 0.4, PointsSoFar: 8}
	assert.Equal(t, 8.0, SampleFinalScore(state, nil, rng))
}

func TestSampleFinalScoreIdenticalPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	state := &LiveState{HasGameToday: true}
	pop := []float64{27.25, 27.25, 27.25, 27.25}

	for i := 0; i < 200; i++ {
		assert.Equal(t, 27.25, SampleFinalScore(state, pop, rng))
	}
}

func TestSampleFinalScoreScalesRemainder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	state := &LiveState{HasGameToday: true, FractionDone: 0.75, PointsSoFar: 40}
	pop := []float64{20, 40, 60}

	const n = 30000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := SampleFinalScore(state, pop, rng)
		assert.Contains(t, []float64{45, 50, 55}, v)
		sum += v
	}
	assert.InDelta(t, 50, sum/n, 0.25)
}

func TestSampleTeamScore(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	entries := []PlayerEntry{
		{PlayerID: "a", State: &LiveState{HasGameToday: true, FractionDone: 1, PointsSoFar: 10}},
		{PlayerID: "b", State: &LiveState{HasGameToday: true}, Population: []float64{7}},
		{PlayerID: "c"},
	}

	assert.Equal(t, 17.0, SampleTeamScore(entries, nil, rng))
	assert.Equal(t, 0.0, SampleTeamScore(nil, nil, rng))

	calls := 0
	constant := func(*LiveState, []float64, *rand.Rand) float64 {
		calls++
		return 2
	}
	assert.Equal(t, 6.0, SampleTeamScore(entries, constant, rng))
	assert.Equal(t, 3, calls)
}
