package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

var (
	statHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	statValue   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	statDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, streaks and topic mastery for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		user, err := localUser(cmd.Context(), s.Users(), email, false)
		if err != nil {
			return err
		}
		snap := user.Progress

		fmt.Println(statHeading.Render(user.DisplayName))
		fmt.Printf("Total XP:       %s\n", statValue.Render(fmt.Sprintf("%d", snap.TotalXP)))
		fmt.Printf("Problems solved: %d\n", snap.SolvedCount())
		fmt.Printf("Streak:         %d (longest %d)\n", snap.Streak.Current, snap.Streak.Longest)
		if snap.Streak.LastActivityDate != nil {
			fmt.Printf("Last active:    %s\n", statDim.Render(snap.Streak.LastActivityDate.Format("2006-01-02")))
		}

		if len(snap.Badges) > 0 {
			badges := make([]string, len(snap.Badges))
			for i, b := range snap.Badges {
				badges[i] = string(b)
			}
			fmt.Printf("Badges:         %s\n", strings.Join(badges, ", "))
		}

		if len(snap.TopicMastery) > 0 {
			fmt.Println()
			fmt.Println(statHeading.Render("Topic Mastery"))
			fmt.Printf("%-24s  %-13s  %7s  %6s  %s\n", "Topic", "Level", "Solved", "XP", "Progress")
			fmt.Println(statDim.Render(strings.Repeat("─", 72)))

			topics := make([]string, 0, len(snap.TopicMastery))
			for topic := range snap.TopicMastery {
				topics = append(topics, topic)
			}
			sort.Strings(topics)

			problems := catalog.Default()
			for _, topic := range topics {
				tm := snap.TopicMastery[topic]
				frac := progress.MasteryProgressFraction(tm.SolvedCount, problems.CountInTopic(topic))
				fmt.Printf("%-24s  %-13s  %7d  %6d  %s\n",
					topic, tm.Level, tm.SolvedCount, tm.XPEarned, progressBar(frac, 20))
			}
		}
		return nil
	},
}

func progressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	return statValue.Render(strings.Repeat("█", filled)) +
		statDim.Render(strings.Repeat("░", width-filled))
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "Account email to show stats for")
}
