package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/words"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		snap, err := st.ProgressRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if snap == nil {
			fmt.Println("No progress yet. Run lingua to start learning!")
			return nil
		}

		rec := snap.Record
		fmt.Printf("Language:                %s\n", words.LanguageName(rec.CurrentLanguage))
		fmt.Printf("Level:                   %d (%d/%d XP)\n", rec.Level, rec.XP, progress.NextLevelXP(rec.Level))
		fmt.Printf("Streak:                  %d days\n", rec.Streak)
		fmt.Printf("Words learned:           %d\n", rec.Stats.WordsLearned)
		fmt.Printf("Quizzes completed:       %d\n", rec.Stats.QuizzesCompleted)
		fmt.Printf("Pronunciation accuracy:  %d%%\n", rec.Stats.PronunciationAccuracy)
		fmt.Printf("Total study time:        %dm\n", rec.Stats.TotalStudyTime/60)

		summary, err := st.EventRepo().QuizHistory(ctx, time.Time{})
		if err == nil && summary.Quizzes > 0 {
			fmt.Printf("Quiz history:            %d quizzes, avg %d%%, best %d%%\n",
				summary.Quizzes, summary.AverageAccuracy, summary.BestAccuracy)
		}

		if len(rec.Achievements) > 0 {
			fmt.Println("Achievements:")
			for _, id := range rec.Achievements {
				fmt.Printf("  🏆 %s\n", progress.AchievementName(id))
			}
		}
		return nil
	},
}
