package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/ocrfields/consensus"
	"github.com/tsawler/ocrfields/model"
)

func newVoteCmd(a *app) *cobra.Command {
	var tie string

	cmd := &cobra.Command{
		Use:   "vote [--tie-break RULE] TEXT...",
		Short: "Reconcile several readings of one field",
		Long: "Vote on the readings given as arguments. Argument order is the tie-break order\n" +
			"when characters have to be voted position by position.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := model.ParseTieBreak(tie)
			if err != nil {
				return err
			}

			candidates := make([]consensus.Candidate, len(args))
			for i, text := range args {
				candidates[i] = consensus.Candidate{Model: strconv.Itoa(i + 1), Text: text}
			}
			return writeJSON(cmd.OutOrStdout(), consensus.Vote(candidates, rule))
		},
	}
	cmd.Flags().StringVar(&tie, "tie-break", "first", "Character tie-break: first, alpha or digit")

	return cmd
}
