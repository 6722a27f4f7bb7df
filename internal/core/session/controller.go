// Package session coordinates the countdown and the reward game.
package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"pomodoro/internal/core/game"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/core/timekeeper"
)

const notificationTitle = "🌸 Pomodoro"

// Store persists durations, theme and completed cycles.
type Store interface {
	Load() (model.Durations, model.Theme)
	SaveDurations(durations model.Durations) error
	SaveTheme(theme model.Theme) error
	LoadCycles() int
	SaveCycles(cycles int) error
}

// Alarm plays the end-of-period sound.
type Alarm interface {
	Play()
}

// Notifier shows the end-of-period message and returns once it is dismissed.
type Notifier interface {
	Notify(title, message string)
}

// Confirmer asks the user a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(title, message string) bool
}

// Options contains collaborators and runtime options for the Controller.
type Options struct {
	Scheduler    schedule.Scheduler
	Alarm        Alarm
	Notifier     Notifier
	Confirmer    Confirmer
	Logger       *zap.Logger
	Area         game.Area
	Rand         *rand.Rand
	TickInterval time.Duration
}

// Controller owns the whole application state.
// The countdown and the game never run together: starting the timer stops the
// game and pausing the timer restarts it.
type Controller struct {
	mu        sync.Mutex
	store     Store
	options   Options
	logger    *zap.Logger
	countdown *timekeeper.Countdown
	game      *game.Game
	phase     Phase
	cycles    int
	theme     model.Theme
	opened    bool
	closed    bool

	// completing is set while the end-of-period alarm and notification run.
	completing bool

	tickTask  schedule.Task
	tickGen   uint64
	spawnTask schedule.Task
	spawnGen  uint64

	events []chan Event
}

// New creates a Controller from the persisted state in store.
// The session stays idle until Open is called.
func New(store Store, options Options) *Controller {
	if options.Scheduler == nil {
		options.Scheduler = schedule.NewClock()
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Area == (game.Area{}) {
		options.Area = game.DefaultArea()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	durations, theme := store.Load()
	return &Controller{
		store:     store,
		options:   options,
		logger:    options.Logger,
		countdown: timekeeper.New(durations),
		game:      game.New(options.Area, options.Rand),
		phase:     PhaseIdle,
		cycles:    store.LoadCycles(),
		theme:     theme,
	}
}

// Subscribe registers a new observer channel.
// Events are dropped for observers whose buffer is full.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// Open begins the session. The timer starts paused, so the game starts too.
func (controller *Controller) Open() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.opened || controller.closed {
		return
	}
	controller.opened = true
	controller.activateGameLocked()
	controller.emitLocked(EventModeChange, "")
}

// Close stops every scheduled task and closes observer channels.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.stopTickLocked()
	controller.deactivateGameLocked()
	controller.phase = PhaseIdle
	controller.closed = true
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start runs the countdown. It is a no-op while already running and while a
// finished period is waiting for its notification to be dismissed.
func (controller *Controller) Start() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || controller.completing || controller.runningLocked() {
		return
	}

	controller.deactivateGameLocked()
	controller.phase = PhaseTimerRunning
	controller.tickGen++
	generation := controller.tickGen
	controller.tickTask = controller.options.Scheduler.Every(controller.options.TickInterval, func() {
		controller.tick(generation, true)
	})

	controller.logger.Debug("timer started",
		zap.String("mode", string(controller.countdown.Mode())),
		zap.Int("remaining", controller.countdown.Remaining()))
	controller.emitLocked(EventRunning, "")
}

// Pause stops the countdown and resumes the game. It is a no-op while paused.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || !controller.runningLocked() {
		return
	}
	controller.pauseLocked()
	controller.logger.Debug("timer paused", zap.Int("remaining", controller.countdown.Remaining()))
	controller.emitLocked(EventRunning, "")
}

// Toggle starts a paused timer or pauses a running one.
func (controller *Controller) Toggle() {
	controller.mu.Lock()
	running := controller.runningLocked()
	controller.mu.Unlock()

	if running {
		controller.Pause()
		return
	}
	controller.Start()
}

// Tick removes one second from the countdown and handles the end of a period.
// The scheduler calls it every second while running; it can also be driven directly.
func (controller *Controller) Tick() {
	controller.tick(0, false)
}

// SwitchMode pauses the timer, activates mode and refills its time.
func (controller *Controller) SwitchMode(mode model.Mode) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.switchModeLocked(mode)
}

// Reset refills the current mode. Completed cycles are kept.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.switchModeLocked(controller.countdown.Mode())
}

// ResetCycles sets the completed cycle count to zero.
func (controller *Controller) ResetCycles() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.cycles = 0
	controller.persistCyclesLocked()
	controller.emitLocked(EventCycles, "")
}

// ResetWithPrompt refills the current mode and, when the timer was paused,
// asks whether the completed cycles should be zeroed as well.
// It blocks while the question is shown.
func (controller *Controller) ResetWithPrompt() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	wasRunning := controller.runningLocked()
	controller.switchModeLocked(controller.countdown.Mode())
	controller.mu.Unlock()

	if wasRunning || controller.options.Confirmer == nil {
		return
	}
	if controller.options.Confirmer.Confirm(notificationTitle, "Reset completed cycles to zero?") {
		controller.ResetCycles()
	}
}

// SaveSettings validates the form input and applies it.
// Invalid input returns model.ErrInvalidDurations and changes nothing.
func (controller *Controller) SaveSettings(input model.DurationInput) error {
	durations, err := model.ParseDurations(input)
	if err != nil {
		controller.logger.Debug("rejected durations",
			zap.String("pomodoro", input.Pomodoro),
			zap.String("shortBreak", input.ShortBreak),
			zap.String("longBreak", input.LongBreak))
		return err
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return nil
	}
	controller.countdown.SetDurations(durations)
	if err := controller.store.SaveDurations(durations); err != nil {
		controller.logger.Error("persist durations", zap.Error(err))
	}
	controller.switchModeLocked(controller.countdown.Mode())
	controller.emitLocked(EventSettings, "")
	return nil
}

// ToggleTheme flips and persists the theme.
func (controller *Controller) ToggleTheme() model.Theme {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return controller.theme
	}
	controller.theme = controller.theme.Toggle()
	if err := controller.store.SaveTheme(controller.theme); err != nil {
		controller.logger.Error("persist theme", zap.Error(err))
	}
	controller.emitLocked(EventTheme, "")
	return controller.theme
}

// ReloadSettings re-reads the store and applies whatever changed.
func (controller *Controller) ReloadSettings() {
	durations, theme := controller.store.Load()
	cycles := controller.store.LoadCycles()

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	if durations != controller.countdown.Durations() {
		controller.logger.Info("durations changed on disk")
		controller.countdown.SetDurations(durations)
		controller.switchModeLocked(controller.countdown.Mode())
		controller.emitLocked(EventSettings, "")
	}
	if theme != controller.theme {
		controller.theme = theme
		controller.emitLocked(EventTheme, "")
	}
	if cycles != controller.cycles {
		controller.cycles = cycles
		controller.emitLocked(EventCycles, "")
	}
}

// Catch scores the target currently shown by the game.
func (controller *Controller) Catch() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || !controller.game.Catch() {
		return false
	}
	controller.scheduleSpawnLocked(game.RespawnDelay, controller.respawn)
	controller.emitLocked(EventGame, "")
	return true
}

func (controller *Controller) tick(generation uint64, scheduled bool) {
	controller.mu.Lock()
	if controller.closed || controller.completing {
		controller.mu.Unlock()
		return
	}
	if scheduled && (generation != controller.tickGen || !controller.runningLocked()) {
		controller.mu.Unlock()
		return
	}
	if !controller.countdown.Decrement() {
		controller.emitLocked(EventTick, "")
		controller.mu.Unlock()
		return
	}

	completed := controller.countdown.Mode()
	message := fmt.Sprintf("%s finished! Time to switch modes.", completed.Label())
	controller.pauseLocked()
	controller.completing = true
	controller.emitLocked(EventPeriodComplete, message)
	controller.mu.Unlock()

	controller.logger.Info("period complete", zap.String("mode", string(completed)))
	if controller.options.Alarm != nil {
		controller.options.Alarm.Play()
	}
	if controller.options.Notifier != nil {
		controller.options.Notifier.Notify(notificationTitle, message)
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.completing = false
	if controller.closed {
		return
	}
	if completed == model.ModePomodoro {
		controller.cycles++
		controller.persistCyclesLocked()
		controller.logger.Info("cycle completed", zap.Int("cycles", controller.cycles))
		controller.emitLocked(EventCycles, "")
	}
	controller.switchModeLocked(completed.Next())
}

func (controller *Controller) respawn(generation uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if generation != controller.spawnGen || !controller.game.Active() {
		return
	}
	controller.spawnLocked()
	controller.emitLocked(EventGame, "")
}

func (controller *Controller) dwellExpired(generation uint64) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if generation != controller.spawnGen || !controller.game.Active() {
		return
	}
	controller.game.Despawn()
	controller.spawnLocked()
	controller.emitLocked(EventGame, "")
}

func (controller *Controller) runningLocked() bool {
	return controller.phase == PhaseTimerRunning
}

func (controller *Controller) pauseLocked() {
	if controller.runningLocked() {
		controller.stopTickLocked()
		controller.phase = PhaseIdle
	}
	controller.activateGameLocked()
}

func (controller *Controller) switchModeLocked(mode model.Mode) {
	if !mode.Valid() {
		return
	}
	if controller.runningLocked() {
		controller.stopTickLocked()
		controller.phase = PhaseIdle
	}
	controller.countdown.SwitchMode(mode)
	controller.deactivateGameLocked()
	controller.activateGameLocked()
	controller.emitLocked(EventModeChange, "")
}

func (controller *Controller) stopTickLocked() {
	if controller.tickTask != nil {
		controller.tickTask.Stop()
		controller.tickTask = nil
	}
	controller.tickGen++
}

func (controller *Controller) activateGameLocked() {
	if !controller.opened || controller.closed || controller.runningLocked() {
		return
	}
	if !controller.game.Activate() {
		return
	}
	controller.phase = PhaseGameActive
	controller.spawnLocked()
}

func (controller *Controller) deactivateGameLocked() {
	controller.stopSpawnLocked()
	controller.game.Deactivate()
	if controller.phase == PhaseGameActive {
		controller.phase = PhaseIdle
	}
}

func (controller *Controller) spawnLocked() {
	if _, ok := controller.game.Spawn(); !ok {
		return
	}
	controller.scheduleSpawnLocked(game.DwellTime, controller.dwellExpired)
}

// scheduleSpawnLocked replaces the single pending game task.
func (controller *Controller) scheduleSpawnLocked(delay time.Duration, fn func(uint64)) {
	controller.stopSpawnLocked()
	generation := controller.spawnGen
	controller.spawnTask = controller.options.Scheduler.After(delay, func() {
		fn(generation)
	})
}

func (controller *Controller) stopSpawnLocked() {
	if controller.spawnTask != nil {
		controller.spawnTask.Stop()
		controller.spawnTask = nil
	}
	controller.spawnGen++
}

func (controller *Controller) persistCyclesLocked() {
	if err := controller.store.SaveCycles(controller.cycles); err != nil {
		controller.logger.Error("persist cycles", zap.Error(err))
	}
}

func (controller *Controller) snapshotLocked() Snapshot {
	target, visible := controller.game.Target()
	remaining := controller.countdown.Remaining()
	return Snapshot{
		Phase:     controller.phase,
		Mode:      controller.countdown.Mode(),
		Remaining: remaining,
		Clock:     timekeeper.FormatClock(remaining),
		Progress:  controller.countdown.Progress(),
		Running:   controller.runningLocked(),
		Cycles:    controller.cycles,
		Durations: controller.countdown.Durations(),
		Theme:     controller.theme,
		Game: GameState{
			Active:        controller.game.Active(),
			Score:         controller.game.Score(),
			Target:        target,
			TargetVisible: visible,
			Area:          controller.game.Area(),
		},
	}
}

func (controller *Controller) emitLocked(eventType EventType, message string) {
	event := Event{
		Type:    eventType,
		State:   controller.snapshotLocked(),
		Message: message,
		At:      time.Now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
