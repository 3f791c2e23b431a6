package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/pkg"
)

type claimableOutput struct {
	ParticipantID string         `json:"participant_id"`
	Ordinal       ledger.Ordinal `json:"ordinal"`
	Claimable     string         `json:"claimable"`
}

func ClaimableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claimable <participant> [ordinal]",
		Short: "Prints the rewards a participant could claim at an ordinal, the current tick by default",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  claimable,
	}

	return cmd
}

func claimable(cmd *cobra.Command, args []string) error {
	participant := args[0]
	if err := pkg.ValidateParticipantID(participant); err != nil {
		return err
	}

	service, closeDb, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDb()

	now := service.Now()
	if len(args) == 2 {
		ordinal, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ordinal %q: %w", args[1], err)
		}
		now = ledger.Ordinal(ordinal)
	}

	return printJSON(cmd.OutOrStdout(), claimableOutput{
		ParticipantID: participant,
		Ordinal:       now,
		Claimable:     service.Claimable(participant, now).String(),
	})
}
