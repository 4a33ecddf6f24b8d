package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/db"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/theme"
)

var (
	modeHistoryLimit int
	modeHistorySince time.Duration
	modeHistoryKinds []string
)

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeStatusCmd)
	modeCmd.AddCommand(modeSetCmd)
	modeCmd.AddCommand(modeFollowCmd)
	modeCmd.AddCommand(modeUnfollowCmd)
	modeCmd.AddCommand(modeHistoryCmd)
	modeCmd.AddCommand(modeResetCmd)

	modeHistoryCmd.Flags().IntVarP(&modeHistoryLimit, "limit", "n", 20, "number of transitions to show")
	modeHistoryCmd.Flags().DurationVar(&modeHistorySince, "since", 0, "only show transitions newer than this (e.g. 24h)")
	modeHistoryCmd.Flags().StringSliceVar(&modeHistoryKinds, "kind", nil, "only show these kinds (mode_set, follow_enabled, follow_disabled, system_changed)")
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Show or change the active theme mode",
	Long: `Show or change the active theme mode. The choice is saved per profile and
restored on the next run.`,
}

var modeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active mode and where it comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		return writeModeStatus(cmd, session)
	},
}

var modeSetCmd = &cobra.Command{
	Use:       "set MODE",
	Short:     "Choose a mode manually (light, dark or high-contrast)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "high-contrast"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseMode(args[0])
		if err != nil {
			return err
		}

		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		if err := theme.MustCurrent().SetMode(mode); err != nil {
			return err
		}
		return writeModeStatus(cmd, session)
	},
}

var modeFollowCmd = &cobra.Command{
	Use:   "follow",
	Short: "Follow the host's light/dark preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		theme.MustCurrent().EnableSystemFollow()
		return writeModeStatus(cmd, session)
	},
}

var modeUnfollowCmd = &cobra.Command{
	Use:   "unfollow",
	Short: "Stop following the host preference",
	Long: `Stop following the host preference. The mode falls back to light unless
theme.remember_manual_mode is set, in which case the last manual mode is restored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		theme.MustCurrent().DisableSystemFollow()
		return writeModeStatus(cmd, session)
	},
}

var modeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent mode transitions",
	Long: `List recent mode transitions, newest first. With --since or --kind the
matching transitions are listed oldest first, capped at --limit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		transitions, err := loadHistory(cmd.Context(), session.history, session.cfg.Profile)
		if err != nil {
			return err
		}

		entries := make([]historyEntry, 0, len(transitions))
		for _, t := range transitions {
			entries = append(entries, historyEntry{
				Time:            t.At,
				Kind:            t.Kind,
				From:            t.From,
				To:              t.To,
				FollowingSystem: t.FollowingSystem,
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, entries)
		}
		if len(entries) == 0 {
			_, err := fmt.Fprintln(out, "No mode changes recorded.")
			return err
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.Time.Local().Format(time.DateTime),
				string(e.Kind),
				fmt.Sprintf("%s -> %s", e.From, e.To),
				formatYesNo(e.FollowingSystem),
			})
		}
		return writeTable(out, []string{"TIME", "CHANGE", "MODE", "FOLLOWING"}, rows)
	},
}

var modeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved mode for the profile",
	Long: `Forget the saved mode for the profile. The next run starts from the
theme settings in the config file. The transition history is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openThemeSession(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		profile := session.cfg.Profile
		cleared := true
		if err := session.prefs.Delete(cmd.Context(), profile); err != nil {
			if !errors.Is(err, db.ErrPreferenceNotFound) {
				return err
			}
			cleared = false
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, resetResult{Profile: profile, Cleared: cleared})
		}
		if !cleared {
			_, err := fmt.Fprintf(out, "No saved mode for profile %q.\n", profile)
			return err
		}
		_, err = fmt.Fprintf(out, "Cleared the saved mode for profile %q.\n", profile)
		return err
	},
}

type resetResult struct {
	Profile string `json:"profile"`
	Cleared bool   `json:"cleared"`
}

// loadHistory returns the newest transitions, or with --since/--kind the
// matching ones oldest first.
func loadHistory(ctx context.Context, repo *db.TransitionRepository, profile string) ([]*models.Transition, error) {
	if modeHistorySince <= 0 && len(modeHistoryKinds) == 0 {
		return repo.Recent(ctx, profile, modeHistoryLimit)
	}

	query := db.TransitionQuery{Profile: profile}
	for _, raw := range modeHistoryKinds {
		kind := models.TransitionKind(raw)
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown transition kind %q", raw)
		}
		query.Kinds = append(query.Kinds, kind)
	}
	if modeHistorySince > 0 {
		since := time.Now().Add(-modeHistorySince)
		query.Since = &since
	}

	var transitions []*models.Transition
	for {
		page, err := repo.History(ctx, query)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, page.Transitions...)
		if page.NextAfter == "" {
			break
		}
		query.After = page.NextAfter
	}

	if modeHistoryLimit > 0 && len(transitions) > modeHistoryLimit {
		transitions = transitions[len(transitions)-modeHistoryLimit:]
	}
	return transitions, nil
}

type historyEntry struct {
	Time            time.Time             `json:"time"`
	Kind            models.TransitionKind `json:"kind"`
	From            models.Mode           `json:"from"`
	To              models.Mode           `json:"to"`
	FollowingSystem bool                  `json:"following_system"`
}

type modeStatus struct {
	Profile         string      `json:"profile"`
	Mode            models.Mode `json:"mode"`
	FollowingSystem bool        `json:"following_system"`
	HostPrefersDark bool        `json:"host_prefers_dark"`
	HostSource      string      `json:"host_source"`
	SavedAt         *time.Time  `json:"saved_at,omitempty"`
}

func writeModeStatus(cmd *cobra.Command, session *themeSession) error {
	manager, err := theme.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	snap := manager.Snapshot()
	host := session.resolver.Resolve()
	status := modeStatus{
		Profile:         session.cfg.Profile,
		Mode:            snap.Mode,
		FollowingSystem: snap.FollowingSystem,
		HostPrefersDark: host.PrefersDark,
		HostSource:      host.Source,
	}
	if pref, err := session.prefs.Get(cmd.Context(), session.cfg.Profile); err == nil {
		status.SavedAt = &pref.UpdatedAt
	}

	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return WriteOutput(out, status)
	}

	hostScheme := "light"
	if status.HostPrefersDark {
		hostScheme = "dark"
	}
	rows := [][]string{
		{"Profile", status.Profile},
		{"Mode", status.Mode.String()},
		{"Source", formatFollowing(status.FollowingSystem)},
		{"Host", fmt.Sprintf("%s (%s)", hostScheme, status.HostSource)},
	}
	if status.SavedAt != nil {
		rows = append(rows, []string{"Saved", status.SavedAt.Local().Format(time.DateTime)})
	}
	return writeTable(out, nil, rows)
}
