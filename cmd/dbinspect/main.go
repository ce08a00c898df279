// Command dbinspect prints a summary of the session database. Read-only,
// safe to run against a live server's data directory.
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/writermorphosis/writermorphosis-server/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dbPath = filepath.Join(home, "WriterMorphosis", "data", "db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Session Database Inspection ===")
	fmt.Println()

	prefixes := []struct {
		name   string
		prefix string
	}{
		{"sessions", "sess:"},
		{"quiz attempts", "attempt:"},
		{"libraries", "lib:"},
		{"reading logs", "read:"},
		{"notification states", "notif:"},
	}

	for _, p := range prefixes {
		count, err := countPrefix(db, p.prefix)
		if err != nil {
			log.Fatalf("Failed to count %s: %v", p.name, err)
		}
		fmt.Printf("%-20s %d\n", p.name+":", count)
	}

	sessions, err := loadSessions(db)
	if err != nil {
		log.Fatalf("Failed to load sessions: %v", err)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastSeenAt.After(sessions[j].LastSeenAt)
	})

	fmt.Println()
	fmt.Println("Most recent sessions:")
	for i, s := range sessions {
		if i == 10 {
			fmt.Printf("  ... and %d more\n", len(sessions)-10)
			break
		}
		fmt.Printf("  %-24s page=%-16s logged_in=%-5t last_seen=%s\n",
			s.ID, s.View.Page, s.View.LoggedIn, s.LastSeenAt.Format("2006-01-02 15:04:05"))
	}
}

func countPrefix(db *badger.DB, prefix string) (int, error) {
	count := 0
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func loadSessions(db *badger.DB) ([]store.Session, error) {
	var sessions []store.Session
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("sess:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte("sess:")); it.ValidForPrefix([]byte("sess:")); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var session store.Session
				if err := json.Unmarshal(val, &session); err != nil {
					return err
				}
				sessions = append(sessions, session)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sessions, err
}
