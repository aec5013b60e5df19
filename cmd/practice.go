package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tanmayb/wordgym/internal/app"
	"github.com/tanmayb/wordgym/internal/llm"
	"github.com/tanmayb/wordgym/internal/store"
	"github.com/tanmayb/wordgym/internal/word"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	practiceCmd.Flags().IntP("count", "c", 10, "Number of words in the session")
	practiceCmd.Flags().Bool("hard", false, "Practice only words you struggle with")
	practiceCmd.Flags().String("variant", string(word.VariantContextChoice), "Quiz variant: context_choice or spelling")
	practiceCmd.Flags().Bool("ai", false, "Generate questions with the configured LLM provider")
	practiceCmd.Flags().String("language", "", "Restrict the pool to one language")
	practiceCmd.Flags().String("user", "", "User id for shared-word attribution")

	// The bare root command starts a default session, so it needs the
	// same flags.
	rootCmd.Flags().AddFlagSet(practiceCmd.Flags())
}

func runPractice(cmd *cobra.Command) error {
	ctx := context.Background()

	count, _ := cmd.Flags().GetInt("count")
	hard, _ := cmd.Flags().GetBool("hard")
	variant, _ := cmd.Flags().GetString("variant")
	useAI, _ := cmd.Flags().GetBool("ai")
	language, _ := cmd.Flags().GetString("language")
	userID, _ := cmd.Flags().GetString("user")

	preset, err := buildPreset(count, hard, variant, useAI)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	// The TUI owns the terminal, so diagnostics go to a file next to the
	// database instead of stderr.
	log, closeLog := openLogger(dbPath)
	defer closeLog()

	opts := app.Options{
		Preset:   preset,
		Words:    st.WordRepo(),
		Recorder: app.NewRecorder(st),
		UserID:   userID,
		Language: language,
		Log:      log,
	}

	if useAI {
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to local questions.")
			opts.Preset.Source = word.SourceLocal
		} else {
			opts.Provider = provider
		}
	}

	err = app.Run(opts)
	if errors.Is(err, word.ErrInsufficientWords) {
		return fmt.Errorf("not enough words for a %d-question session; add some with `wordgym words add`", count)
	}
	return err
}

func openLogger(dbPath string) (zerolog.Logger, func()) {
	logPath := dbPath + ".log"
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.ErrorLevel), func() {}
	}
	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { f.Close() }
}

func buildPreset(count int, hard bool, variant string, useAI bool) (word.Preset, error) {
	if count < 1 {
		return word.Preset{}, fmt.Errorf("--count must be at least 1, got %d", count)
	}
	v := word.Variant(variant)
	if v != word.VariantContextChoice && v != word.VariantSpelling {
		return word.Preset{}, fmt.Errorf("unknown variant %q", variant)
	}

	src := word.SourceLocal
	if useAI {
		src = word.SourceAI
	}

	return word.Preset{
		Count:    count,
		HardOnly: hard,
		Variant:  v,
		Source:   src,
	}, nil
}
