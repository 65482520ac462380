package event

// EventType represents the type of game event
type EventType int

const (
	// EventNotification requests a transient on-screen message
	// Trigger: Any system | Consumer: FeedbackSystem | Payload: *NotificationPayload
	EventNotification EventType = iota

	// EventSoundRequest requests a one-shot sound effect
	// Trigger: Combat, pickups, quiz | Consumer: FeedbackSystem | Payload: *SoundPayload
	EventSoundRequest

	// EventHeroDamaged signals health or shield loss
	// Trigger: ApplyHeroDamage | Consumer: FeedbackSystem | Payload: *HeroDamagedPayload
	EventHeroDamaged

	// EventShieldDepleted signals the shield crossing to zero
	// Trigger: ApplyHeroDamage | Consumer: QuizGate | Payload: nil
	EventShieldDepleted

	// EventBoltsDepleted signals the last bolt being fired while minions remain
	// Trigger: CombatSystem | Consumer: QuizGate | Payload: nil
	EventBoltsDepleted

	// EventOutOfBolts signals an attack attempt with an empty bolt count
	// Trigger: CombatSystem | Consumer: FeedbackSystem | Payload: nil
	EventOutOfBolts

	// EventBoltFired signals a bolt leaving the hero
	// Trigger: CombatSystem | Consumer: FeedbackSystem | Payload: *MinionPayload
	EventBoltFired

	// EventMinionDefeated signals a minion health crossing zero, emitted once per minion
	// Trigger: DefeatMinion | Consumer: FeedbackSystem | Payload: *MinionPayload
	EventMinionDefeated

	// EventProjectileFired signals a minion projectile launch
	// Trigger: MinionSystem | Consumer: FeedbackSystem | Payload: *MinionPayload
	EventProjectileFired

	// EventPickupCollected signals a bolt pickup being taken
	// Trigger: CollectibleSystem | Consumer: FeedbackSystem | Payload: nil
	EventPickupCollected

	// EventQuizRequest asks for a quiz gate
	// Trigger: Progression, quiz follow-ups | Consumer: QuizGate | Payload: *QuizRequestPayload
	EventQuizRequest

	// EventQuizStarted signals a quiz gate opening
	// Trigger: QuizGate | Consumer: FeedbackSystem | Payload: *QuizRequestPayload
	EventQuizStarted

	// EventQuizCompleted signals a quiz gate closing with its score
	// Trigger: QuizGate | Consumer: ProgressionSystem, FeedbackSystem | Payload: *QuizCompletedPayload
	EventQuizCompleted

	// EventLevelChanged signals a level transition
	// Trigger: ProgressionSystem | Consumer: FeedbackSystem | Payload: *ProgressPayload
	EventLevelChanged

	// EventStageChanged signals a Level 3 stage transition
	// Trigger: ProgressionSystem | Consumer: FeedbackSystem | Payload: *ProgressPayload
	EventStageChanged

	// EventHeroFell signals the hero dropping off the world, emitted once per session
	// Trigger: physics step | Consumer: LifecycleSystem | Payload: nil
	EventHeroFell

	// EventHeroDied signals health reaching zero, emitted once per session
	// Trigger: ApplyHeroDamage | Consumer: LifecycleSystem | Payload: nil
	EventHeroDied
)

var eventNames = map[EventType]string{
	EventNotification:    "notification",
	EventSoundRequest:    "sound_request",
	EventHeroDamaged:     "hero_damaged",
	EventShieldDepleted:  "shield_depleted",
	EventBoltsDepleted:   "bolts_depleted",
	EventOutOfBolts:      "out_of_bolts",
	EventBoltFired:       "bolt_fired",
	EventMinionDefeated:  "minion_defeated",
	EventProjectileFired: "projectile_fired",
	EventPickupCollected: "pickup_collected",
	EventQuizRequest:     "quiz_request",
	EventQuizStarted:     "quiz_started",
	EventQuizCompleted:   "quiz_completed",
	EventLevelChanged:    "level_changed",
	EventStageChanged:    "stage_changed",
	EventHeroFell:        "hero_fell",
	EventHeroDied:        "hero_died",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
}
