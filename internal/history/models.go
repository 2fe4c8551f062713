// Package history persists a record of each match run so a later session
// can review what a pattern matched without re-running it. Each run is a
// single flat row: no Stage/Apply/Session relationships, since a match
// run has nothing else to relate to.
package history

import (
	"time"

	"gorm.io/datatypes"
)

// MatchRun records one FindAll invocation: the pattern and source that
// were matched, how many PatternMatch results it produced, and the
// flattened key -> raw-signature bindings of each, serialized as JSON
// since the binding shape varies per pattern.
type MatchRun struct {
	ID          uint      `gorm:"primaryKey"`
	Language    string    `gorm:"type:varchar(20);not null;index"`
	SourceFile  string    `gorm:"type:text;not null"`
	PatternText string    `gorm:"type:text;not null"`
	MatchCount  int       `gorm:"not null"`
	Bindings    datatypes.JSON
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}
