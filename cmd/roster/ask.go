package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rusenback/roster/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and print the answer with matching cards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.Ask(cfg.User.ID, question)
		if err != nil {
			logger.Warn("ask failed", zap.Error(err))
			return fmt.Errorf("failed to ask: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderAnswer(resp.Answer))
		for _, c := range resp.CardResult.Cards(cfg.User.ID) {
			fmt.Fprintln(out, formatCard(c))
		}
		return nil
	},
}

func renderAnswer(text string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func formatCard(c model.Card) string {
	kind := "user"
	if c.Kind == model.KindTeam {
		kind = "team"
	}
	tags := make([]string, len(c.Hashtags))
	for i, t := range c.Hashtags {
		tags[i] = t.Display()
	}
	line := fmt.Sprintf("- [%s] %s", kind, c.Title)
	if c.Subtitle != "" {
		line += " (" + c.Subtitle + ")"
	}
	if len(tags) > 0 {
		line += " " + strings.Join(tags, " ")
	}
	return line
}
