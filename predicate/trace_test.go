package predicate

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type TraceTestSuite struct {
	suite.Suite
}

func (suite *TraceTestSuite) TestTraceLogsEachEvaluation() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	p := Predicate[int](isEven).Trace("even", logger)
	suite.True(p(2))
	suite.False(p(3))

	entries := hook.AllEntries()
	if suite.Len(entries, 2) {
		suite.Equal(log.DebugLevel, entries[0].Level)
		suite.Equal("even", entries[0].Data["predicate"])
		suite.Equal(2, entries[0].Data["value"])
		suite.Equal(true, entries[0].Data["result"])
		suite.Equal(3, entries[1].Data["value"])
		suite.Equal(false, entries[1].Data["result"])
	}
}

func (suite *TraceTestSuite) TestTraceIsSilentAboveDebug() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.InfoLevel)

	p := Predicate[int](isEven).Trace("even", logger)
	suite.True(p(2))
	suite.Empty(hook.AllEntries())
}

func (suite *TraceTestSuite) TestTracedPredicatesStillCombine() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	even := Predicate[int](isEven).Trace("even", logger)
	positive := Predicate[int](isPositive).Trace("positive", logger)
	suite.False(even.And(positive)(1))
	// positive was short-circuited
	if suite.Len(hook.AllEntries(), 1) {
		suite.Equal("even", hook.LastEntry().Data["predicate"])
	}
}

func TestTrace(t *testing.T) {
	suite.Run(t, new(TraceTestSuite))
}
