package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"github.com/ldnexus/match-engine/internal/logger"
	"github.com/ldnexus/match-engine/internal/matching"
	"github.com/ldnexus/match-engine/internal/matching/uae"
	"github.com/ldnexus/match-engine/internal/ranking"
	"github.com/ldnexus/match-engine/internal/talent"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile (or a pool of profiles) against a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("profile", "p", "", "JSON file with a profile or an array of profiles")
	scoreCmd.Flags().StringP("job", "J", "", "JSON file with the job posting")
	scoreCmd.Flags().Bool("uae", false, "use the UAE regional matcher")
	scoreCmd.Flags().Bool("rank", false, "rank all profiles in the file against the job")
	scoreCmd.Flags().Float64("min-score", 0, "drop ranked candidates below this score")
	scoreCmd.Flags().Int("limit", 0, "keep only the top N ranked candidates")
	scoreCmd.Flags().Int("index", -1, "profile index to score when the file holds several")
	scoreCmd.Flags().Int64("seed", 0, "seed for the heuristic jitter; makes output deterministic")

	scoreCmd.MarkFlagRequired("profile")
	scoreCmd.MarkFlagRequired("job")
}

func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	profilePath, _ := cmd.Flags().GetString("profile")
	jobPath, _ := cmd.Flags().GetString("job")

	profiles, err := talent.LoadProfiles(profilePath)
	if err != nil {
		logger.Fatal("loading profiles", zap.Error(err))
	}
	if len(profiles) == 0 {
		logger.Fatal("profile file is empty", zap.String("file", profilePath))
	}

	job, err := talent.LoadJob(jobPath)
	if err != nil {
		logger.Fatal("loading job", zap.Error(err))
	}

	heuristic := heuristicFor(cmd)
	provider := buildProvider(ctx, config, logger)
	matcher := matching.NewMatcher(provider, heuristic, logger)

	if useRank, _ := cmd.Flags().GetBool("rank"); useRank {
		minScore, _ := cmd.Flags().GetFloat64("min-score")
		limit, _ := cmd.Flags().GetInt("limit")

		candidates, err := ranking.New(matcher, logger).Rank(ctx, job, profiles,
			ranking.NewMinScore(minScore),
			ranking.NewLimit(limit),
		)
		if err != nil {
			logger.Fatal("ranking profiles", zap.Error(err))
		}

		printJSON(candidates)
		return
	}

	profile, err := selectProfile(cmd, profiles)
	if err != nil {
		logger.Fatal("selecting a profile", zap.Error(err))
	}

	if useUAE, _ := cmd.Flags().GetBool("uae"); useUAE {
		result := uae.NewMatcher(logger).Score(profile, job, uaeOverrides(config))
		printJSON(result)
		return
	}

	printJSON(map[string]float64{"score": matcher.Score(ctx, profile, job)})
}

// selectProfile resolves which profile to score: the only one, the indexed
// one, or an interactive pick.
func selectProfile(cmd *cobra.Command, profiles []*talent.Profile) (*talent.Profile, error) {
	if len(profiles) == 1 {
		return profiles[0], nil
	}

	index, _ := cmd.Flags().GetInt("index")
	if index >= 0 {
		if index >= len(profiles) {
			return nil, fmt.Errorf("profile index %d out of range (%d profiles)", index, len(profiles))
		}
		return profiles[index], nil
	}

	items := make([]string, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, p.Display())
	}

	prompt := promptui.Select{
		Label: "Choose a profile and press ENTER",
		Items: items,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return profiles[i], nil
}

// heuristicFor seeds the jitter source when --seed is set, keeping one-shot
// runs reproducible.
func heuristicFor(cmd *cobra.Command) *matching.Heuristic {
	if !cmd.Flags().Changed("seed") {
		return matching.NewHeuristic(nil)
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	return matching.NewHeuristic(rand.New(rand.NewSource(seed)))
}

func uaeOverrides(config *Config) *uae.BusinessContext {
	if config == nil || config.UAE == nil {
		return nil
	}

	return &uae.BusinessContext{
		Emirate:             config.UAE.Emirate,
		CompanyType:         config.UAE.CompanyType,
		CulturalSensitivity: config.UAE.CulturalSensitivity,
		Compliance:          config.UAE.Compliance,
	}
}

func printJSON(v any) {
	pretty, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(pretty))
}
