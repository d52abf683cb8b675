package fitness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/fitness"
)

func TestTimeRisk(t *testing.T) {
	cost := fitness.TimeRisk(20)

	assert.Equal(t, 100.0, cost(core.Attrs{Time: 20, Risk: 4}))
	assert.Equal(t, 55.0, cost(core.Attrs{Time: 35, Risk: 1}))
	assert.Equal(t, fitness.Blocked, cost(core.Attrs{Time: 1, Blocked: true}))
}

func TestTimeDistanceConstant(t *testing.T) {
	assert.Equal(t, 7.0, fitness.Time()(core.Attrs{Time: 7, Risk: 100}))
	assert.Equal(t, 3.5, fitness.Distance()(core.Attrs{Distance: 3.5}))
	assert.Equal(t, fitness.Blocked, fitness.Distance()(core.Attrs{Distance: 3.5, Blocked: true}))
	assert.Equal(t, 1.0, fitness.Constant[core.Attrs](1)(core.Attrs{Time: 99}))
}

func TestPenalize(t *testing.T) {
	slow := func(a core.Attrs) bool { return a.Time > 30 }
	cost := fitness.Penalize(fitness.Time(), slow)

	assert.Equal(t, 10.0, cost(core.Attrs{Time: 10}))
	assert.Equal(t, fitness.Blocked, cost(core.Attrs{Time: 35}))
}
