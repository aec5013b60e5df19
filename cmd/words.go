package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanmayb/wordgym/internal/store"
	"github.com/tanmayb/wordgym/internal/word"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage your word collection",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word> <definition>",
	Short: "Add a word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("language")
		pos, _ := cmd.Flags().GetString("pos")
		shared, _ := cmd.Flags().GetBool("shared")
		owner, _ := cmd.Flags().GetString("user")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		w, err := st.WordRepo().Add(context.Background(), word.Word{
			Text:         args[0],
			Definition:   args[1],
			Language:     lang,
			PartOfSpeech: pos,
			Shared:       shared,
			OwnerID:      owner,
		})
		if err != nil {
			return fmt.Errorf("add word: %w", err)
		}

		fmt.Printf("Added %q (%s)\n", w.Text, w.ID)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored words",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("language")
		review, _ := cmd.Flags().GetBool("review")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		var words []word.Word
		if review {
			words, err = st.WordRepo().NeedsReview(ctx)
		} else {
			words, err = st.WordRepo().All(ctx, word.Filter{Language: lang, IncludeShared: true})
		}
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}

		if len(words) == 0 {
			fmt.Println("No words yet. Add some with `wordgym words add`.")
			return nil
		}

		fmt.Printf("%-18s  %-8s  %-10s  %-5s  %s\n", "Word", "Lang", "Part", "Diff", "Definition")
		fmt.Println(strings.Repeat("─", 80))
		for _, w := range words {
			def := w.Definition
			if len(def) > 40 {
				def = def[:40] + "..."
			}
			fmt.Printf("%-18s  %-8s  %-10s  %-5d  %s\n", w.Text, w.Language, w.PartOfSpeech, w.Difficulty, def)
		}
		return nil
	},
}

var wordsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a small starter word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := context.Background()

		added := 0
		for _, w := range starterWords {
			if _, err := st.WordRepo().Add(ctx, w); err != nil {
				// Seeding is re-runnable; duplicates just skip.
				continue
			}
			added++
		}

		fmt.Printf("Seeded %d words.\n", added)
		return nil
	},
}

var starterWords = []word.Word{
	{Text: "luminous", Definition: "giving off light; bright or shining", PartOfSpeech: "adjective", Language: "en"},
	{Text: "ephemeral", Definition: "lasting for a very short time", PartOfSpeech: "adjective", Language: "en"},
	{Text: "ubiquitous", Definition: "present or found everywhere", PartOfSpeech: "adjective", Language: "en"},
	{Text: "candor", Definition: "the quality of being open and honest", PartOfSpeech: "noun", Language: "en"},
	{Text: "placate", Definition: "to make someone less angry or hostile", PartOfSpeech: "verb", Language: "en"},
	{Text: "austere", Definition: "severe or strict in manner or appearance", PartOfSpeech: "adjective", Language: "en"},
	{Text: "reticent", Definition: "not revealing one's thoughts readily", PartOfSpeech: "adjective", Language: "en"},
	{Text: "gregarious", Definition: "fond of company; sociable", PartOfSpeech: "adjective", Language: "en"},
	{Text: "pragmatic", Definition: "dealing with things sensibly and realistically", PartOfSpeech: "adjective", Language: "en"},
	{Text: "capitulate", Definition: "to cease resisting; to surrender", PartOfSpeech: "verb", Language: "en"},
	{Text: "venerate", Definition: "to regard with great respect", PartOfSpeech: "verb", Language: "en"},
	{Text: "tenacious", Definition: "holding firmly to something; persistent", PartOfSpeech: "adjective", Language: "en"},
}

func init() {
	wordsAddCmd.Flags().String("language", "en", "Language tag")
	wordsAddCmd.Flags().String("pos", "", "Part of speech")
	wordsAddCmd.Flags().Bool("shared", false, "Add to the shared list")
	wordsAddCmd.Flags().String("user", "", "Owner user id for shared words")

	wordsListCmd.Flags().String("language", "", "Filter by language")
	wordsListCmd.Flags().Bool("review", false, "Show only words flagged for review")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsSeedCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
