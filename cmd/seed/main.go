// Command seed loads sample Hungarian vocabulary into the portal
// database: three thematic groups, fifteen words, and one quiz
// activity per group.
// Usage: go run cmd/seed/main.go [-db path/to/lang_portal.db]
package main

import (
	"flag"
	"log"

	"github.com/hunlearn/lang-portal/internal/config"
	"github.com/hunlearn/lang-portal/internal/database"
	"github.com/hunlearn/lang-portal/internal/database/groups"
	"github.com/hunlearn/lang-portal/internal/database/study"
	"github.com/hunlearn/lang-portal/internal/database/words"
)

type seedWord struct {
	hungarian string
	english   string
	parts     map[string]any
}

var seedGroups = []struct {
	name  string
	words []seedWord
}{
	{
		name: "Basic Greetings",
		words: []seedWord{
			{"szia", "hello", map[string]any{"type": "greeting", "formality": "informal"}},
			{"jó reggelt", "good morning", map[string]any{"type": "greeting", "time": "morning"}},
			{"jó napot", "good day", map[string]any{"type": "greeting", "time": "day"}},
			{"jó estét", "good evening", map[string]any{"type": "greeting", "time": "evening"}},
			{"viszlát", "goodbye", map[string]any{"type": "farewell", "formality": "informal"}},
		},
	},
	{
		name: "Numbers",
		words: []seedWord{
			{"egy", "one", map[string]any{"type": "number", "value": 1}},
			{"kettő", "two", map[string]any{"type": "number", "value": 2}},
			{"három", "three", map[string]any{"type": "number", "value": 3}},
			{"négy", "four", map[string]any{"type": "number", "value": 4}},
			{"öt", "five", map[string]any{"type": "number", "value": 5}},
		},
	},
	{
		name: "Common Verbs",
		words: []seedWord{
			{"lenni", "to be", map[string]any{"type": "verb", "category": "essential"}},
			{"menni", "to go", map[string]any{"type": "verb", "category": "motion"}},
			{"enni", "to eat", map[string]any{"type": "verb", "category": "action"}},
			{"inni", "to drink", map[string]any{"type": "verb", "category": "action"}},
			{"aludni", "to sleep", map[string]any{"type": "verb", "category": "state"}},
		},
	},
}

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "path to the portal database file")
	flag.Parse()

	log.Printf("Seeding sample vocabulary into %s...", *dbPath)

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	groupsRepo := groups.NewRepository(db.DB)
	wordsRepo := words.NewRepository(db.DB)
	studyRepo := study.NewRepository(db.DB)

	for _, seed := range seedGroups {
		group, err := groupsRepo.Create(seed.name)
		if err != nil {
			log.Printf("Skipping group %q: %v", seed.name, err)
			continue
		}

		for _, w := range seed.words {
			_, err := wordsRepo.Create(words.CreateParams{
				Hungarian: w.hungarian,
				English:   w.english,
				Parts:     w.parts,
				GroupIDs:  []uint{group.ID},
			})
			if err != nil {
				log.Printf("Skipping word %q: %v", w.hungarian, err)
			}
		}

		_, err = studyRepo.CreateActivity(
			"Vocabulary Quiz",
			"",
			"Practice your vocabulary with flashcards",
			group.ID,
		)
		if err != nil {
			log.Printf("Failed to create activity for %q: %v", seed.name, err)
		}

		log.Printf("Seeded group %q with %d words", seed.name, len(seed.words))
	}

	log.Printf("Done")
}
