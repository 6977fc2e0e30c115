// ABOUTME: CLI commands for setting and showing the onboarding profile.
// ABOUTME: Setting a profile restarts progress from the computed score.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fbwogus456-hub/levelup/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileAge      int
	profileSleep    float64
	profileHeight   float64
	profileWeight   float64
	profileExercise int
	profileStudy    int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the onboarding profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the profile and compute a starting score",
	Long: `Set the onboarding profile. The starting score is computed from BMI,
sleep, weekly exercise, daily study and age. Setting a new profile clears
the activity log and restarts progress from the new score.

Example:
  levelup profile set --age 25 --sleep 7.5 --height 175 --weight 70 --exercise 3 --study 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := trk.SetProfile(models.Profile{
			Age:              profileAge,
			SleepHours:       profileSleep,
			HeightCm:         profileHeight,
			WeightKg:         profileWeight,
			ExercisePerWeek:  profileExercise,
			StudyHoursPerDay: profileStudy,
		})
		if err != nil {
			return err
		}

		color.Green("✓ Profile saved")
		fmt.Printf("  Starting score: %s (%s)\n",
			color.New(color.Bold).Sprintf("%d", st.Score), st.Level)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := trk.Profile()
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No profile yet. Run 'levelup profile set' first.")
			return nil
		}

		fmt.Printf("Age:       %d\n", p.Age)
		fmt.Printf("Sleep:     %.1f h/night\n", p.SleepHours)
		fmt.Printf("Height:    %.1f cm\n", p.HeightCm)
		fmt.Printf("Weight:    %.1f kg\n", p.WeightKg)
		fmt.Printf("Exercise:  %d sessions/week\n", p.ExercisePerWeek)
		fmt.Printf("Study:     %d h/day\n", p.StudyHoursPerDay)
		return nil
	},
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileSleep, "sleep", 0, "average sleep per night in hours")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().IntVar(&profileExercise, "exercise", 0, "exercise sessions per week")
	profileSetCmd.Flags().IntVar(&profileStudy, "study", 0, "study hours per day")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("sleep")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
