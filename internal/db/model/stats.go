package model

const OverallStatsCollection = "overall_stats"

// OverallStatsDocument represents the aggregated ledger statistics
type OverallStatsDocument struct {
	ID                 string `bson:"_id"`                 // Always "overall_stats"
	Ordinal            uint64 `bson:"ordinal"`             // Ordinal the stats were computed at
	TotalStaked        string `bson:"total_staked"`        // Current total stake
	Participants       uint64 `bson:"participants"`        // Participants that ever deposited
	ActiveParticipants uint64 `bson:"active_participants"` // Participants with non zero stake
	PendingRewards     string `bson:"pending_rewards"`     // Sum of claimable rewards
	TotalClaimed       string `bson:"total_claimed"`       // Sum of paid out rewards
	LastUpdated        int64  `bson:"last_updated"`        // Unix timestamp of last update
}
