package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/matcher"
)

// Store wraps a gorm connection dedicated to match-run history.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at dsn, creating the parent
// directory for a file DSN if needed and running migrations once
// connected. Match history is always local; no remote connector is
// negotiated.
func Open(dsn string, debug bool) (*Store, error) {
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("history: creating database directory: %w", err)
			}
		}
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("history: connecting to %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&MatchRun{}); err != nil {
		return nil, fmt.Errorf("history: migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record saves one match run: the pattern/source that were matched and the
// flattened raw-signature bindings of every resulting PatternMatch.
func (s *Store) Record(language, sourceFile, patternText string, matches []*matcher.PatternMatch) (*MatchRun, error) {
	bindings := make([]map[string][]string, 0, len(matches))
	for _, m := range matches {
		entry := make(map[string][]string)
		for key, nodes := range m.GetDict() {
			entry[key] = rawSignatures(nodes)
		}
		bindings = append(bindings, entry)
	}

	payload, err := json.Marshal(bindings)
	if err != nil {
		return nil, fmt.Errorf("history: encoding bindings: %w", err)
	}

	run := &MatchRun{
		Language:    language,
		SourceFile:  sourceFile,
		PatternText: patternText,
		MatchCount:  len(matches),
		Bindings:    payload,
	}
	if err := s.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("history: recording match run: %w", err)
	}
	return run, nil
}

// Recent returns the last limit match runs, newest first.
func (s *Store) Recent(limit int) ([]MatchRun, error) {
	var runs []MatchRun
	err := s.db.Order("created_at desc").Limit(limit).Find(&runs).Error
	return runs, err
}

// Close releases the underlying sql.DB connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func rawSignatures(nodes []ast.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.RawSignature()
	}
	return out
}
