package cli

import (
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/pkg"
)

type historyEvent struct {
	Ordinal ledger.Ordinal `json:"ordinal"`
	Amount  string         `json:"amount"`
}

type historyOutput struct {
	ParticipantID   string          `json:"participant_id"`
	Events          []historyEvent  `json:"events"`
	ClaimCheckpoint *ledger.Ordinal `json:"claim_checkpoint,omitempty"`
	TotalClaimed    string          `json:"total_claimed"`
}

func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <participant>",
		Short: "Prints the stake history and claim checkpoint of a participant",
		Args:  cobra.ExactArgs(1),
		RunE:  history,
	}

	return cmd
}

func history(cmd *cobra.Command, args []string) error {
	participant := args[0]
	if err := pkg.ValidateParticipantID(participant); err != nil {
		return err
	}

	service, closeDb, err := loadLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDb()

	h, _ := service.History(participant)
	out := historyOutput{
		ParticipantID:   participant,
		Events:          make([]historyEvent, 0, len(h.Events)),
		ClaimCheckpoint: h.ClaimCheckpoint,
		TotalClaimed:    h.TotalClaimed.String(),
	}
	for _, ev := range h.Events {
		out.Events = append(out.Events, historyEvent{Ordinal: ev.Time, Amount: ev.Amount.String()})
	}

	return printJSON(cmd.OutOrStdout(), out)
}
