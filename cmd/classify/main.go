// Command classify runs the learning-profile classifier on a saved survey
// without touching the database.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"edu-perfil/internal/catalog"
	"edu-perfil/internal/classifier"
	"edu-perfil/internal/domain"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classify [answers.json]",
	Short: "Classify a survey answers file and print the learning profile",
	Long: `Reads a JSON object of question id to option letter, e.g. {"P1":"A","P2":"C"},
from the given file or stdin and prints the resulting profile as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student := flagString(cmd, "student")
		grade := domain.Grade(flagString(cmd, "grade"))
		if !grade.Valid() {
			return fmt.Errorf("unknown grade %q, expected one of %v", grade, domain.Grades)
		}

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		answers, err := readAnswers(in)
		if err != nil {
			return err
		}

		forms, err := catalog.Load()
		if err != nil {
			return err
		}
		if missing := forms.Missing(grade, answers); len(missing) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: unanswered questions %v use default traits\n", missing)
		}

		profile := classifier.Classify(student, grade, answers)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

func init() {
	rootCmd.Flags().String("student", "CLI", "estudiante_id recorded on the profile")
	rootCmd.Flags().String("grade", string(domain.Grade34), "grado band (1-2, 3-4 or 5-6)")
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func readAnswers(r io.Reader) (domain.SurveyAnswers, error) {
	var answers domain.SurveyAnswers
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if answers == nil {
		answers = domain.SurveyAnswers{}
	}
	return answers, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
