package domain

// AwardAction is a domain action that earns points. The point value of every
// action lives in Points; adding an action means adding a case there.
type AwardAction string

const (
	AwardTaskCreated            AwardAction = "task_created"
	AwardTaskCompleted          AwardAction = "task_completed"
	AwardGoalCreated            AwardAction = "goal_created"
	AwardHabitCreated           AwardAction = "habit_created"
	AwardHabitStreakIncremented AwardAction = "habit_streak_incremented"
	AwardJournalEntryCreated    AwardAction = "journal_entry_created"
	AwardEventCreated           AwardAction = "event_created"
	AwardTransactionLogged      AwardAction = "transaction_logged"
	AwardPostSubmitted          AwardAction = "post_submitted"
	AwardVoteCast               AwardAction = "vote_cast"
)

// AllAwardActions lists every action in table order.
func AllAwardActions() []AwardAction {
	return []AwardAction{
		AwardTaskCreated,
		AwardTaskCompleted,
		AwardGoalCreated,
		AwardHabitCreated,
		AwardHabitStreakIncremented,
		AwardJournalEntryCreated,
		AwardEventCreated,
		AwardTransactionLogged,
		AwardPostSubmitted,
		AwardVoteCast,
	}
}

func (a AwardAction) String() string { return string(a) }

func (a AwardAction) IsValid() bool {
	return a.Points() > 0
}

// Points returns the fixed value of the action, or 0 for an unknown action.
func (a AwardAction) Points() int {
	switch a {
	case AwardTaskCreated:
		return 10
	case AwardTaskCompleted:
		return 20
	case AwardGoalCreated:
		return 15
	case AwardHabitCreated:
		return 10
	case AwardHabitStreakIncremented:
		return 5
	case AwardJournalEntryCreated:
		return 10
	case AwardEventCreated:
		return 10
	case AwardTransactionLogged:
		return 5
	case AwardPostSubmitted:
		return 10
	case AwardVoteCast:
		return 2
	}
	return 0
}

// Description is the human-readable cause stored on the ledger entry.
func (a AwardAction) Description() string {
	switch a {
	case AwardTaskCreated:
		return "Task created"
	case AwardTaskCompleted:
		return "Task completed"
	case AwardGoalCreated:
		return "Goal created"
	case AwardHabitCreated:
		return "Habit created"
	case AwardHabitStreakIncremented:
		return "Habit streak incremented"
	case AwardJournalEntryCreated:
		return "Journal entry written"
	case AwardEventCreated:
		return "Event created"
	case AwardTransactionLogged:
		return "Transaction logged"
	case AwardPostSubmitted:
		return "Post submitted"
	case AwardVoteCast:
		return "Vote cast"
	}
	return string(a)
}
