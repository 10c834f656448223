package predicate

import (
	log "github.com/sirupsen/logrus"
)

// Trace returns a predicate that behaves like p1 and logs every evaluation
// at debug level. Each entry carries the predicate's name, the value and
// the result.
func (p1 Predicate[T]) Trace(name string, logger log.FieldLogger) Predicate[T] {
	return func(x T) bool {
		result := p1(x)
		logger.WithFields(log.Fields{
			"predicate": name,
			"value":     x,
			"result":    result,
		}).Debug("evaluated predicate")
		return result
	}
}
