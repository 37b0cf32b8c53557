package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"insurancebot/dispatch"
	"insurancebot/model"
	"insurancebot/render"
	"insurancebot/repo"
)

const (
	msgNoSession = "Пожалуйста, начните с команды /start"
	msgCancelled = "Заявка отменена."
	msgApology   = "Произошла непредвиденная ошибка. Пожалуйста, попробуйте позже."

	welcomeTemplate = "Добро пожаловать, %s!\nЯ помогу собрать информацию для страховки."
)

// Reply is one outbound prompt: text plus the reply keyboard to show.
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
}

// Engine is the single authority for step sequencing. It loads the
// session for the message's identity, consults the transition table and
// writes the session back; on confirmation it assembles and dispatches
// the application and purges the session.
type Engine struct {
	store      repo.SessionStore
	dispatcher *dispatch.Dispatcher
	log        zerolog.Logger
	now        func() time.Time

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewEngine(store repo.SessionStore, dispatcher *dispatch.Dispatcher, log zerolog.Logger) *Engine {
	return &Engine{
		store:      store,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
		locks:      make(map[int64]*sync.Mutex),
	}
}

// userLock serializes message processing per identity; distinct
// identities proceed concurrently.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[userID] = l
	}
	return l
}

// Start begins a fresh dialogue for the identity, overwriting any
// session already in progress.
func (e *Engine) Start(ctx context.Context, userID int64, firstName string) (Reply, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	app := &model.Application{
		UserID:        userID,
		CorrelationID: uuid.NewString(),
		CreatedAt:     e.now(),
		CurrentStep:   model.StepSamePerson,
	}
	if err := e.store.Put(ctx, app); err != nil {
		return Reply{}, fmt.Errorf("error storing session: %w", err)
	}

	e.log.Info().
		Int64("user_id", userID).
		Str("application_id", app.CorrelationID).
		Msg("application started")

	return e.welcomeReply(firstName), nil
}

// Cancel purges the session without assembly or delivery.
func (e *Engine) Cancel(ctx context.Context, userID int64) (Reply, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := e.store.Delete(ctx, userID); err != nil {
		return Reply{}, fmt.Errorf("error deleting session: %w", err)
	}
	e.log.Info().Int64("user_id", userID).Msg("application cancelled")
	return Reply{Text: msgCancelled, RemoveKeyboard: true}, nil
}

// Handle processes one plain-text message for the identity. An empty
// returned Reply.Text means every user-visible message was already sent
// through the dispatcher.
func (e *Engine) Handle(ctx context.Context, userID int64, firstName, text string) (Reply, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()

	app, err := e.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return Reply{Text: msgNoSession, RemoveKeyboard: true}, nil
		}
		return Reply{}, fmt.Errorf("error loading session: %w", err)
	}

	// Navigation tokens are recognised at every step and never reach
	// the validator.
	switch text {
	case model.LabelHome:
		return e.restart(ctx, app, firstName)
	case model.LabelBack:
		return e.goBack(ctx, app, firstName)
	}

	switch app.CurrentStep {
	case model.StepDriversMenu:
		return e.handleDriversMenu(ctx, app, text)
	case model.StepConfirm:
		return e.finalize(ctx, app)
	default:
		return e.advance(ctx, app, text)
	}
}

// restart moves to the first step without freeing the session; the
// answer to the first question resets the collected data.
func (e *Engine) restart(ctx context.Context, app *model.Application, firstName string) (Reply, error) {
	app.CurrentStep = model.StepSamePerson
	if err := e.store.Put(ctx, app); err != nil {
		return Reply{}, fmt.Errorf("error storing session: %w", err)
	}
	return e.welcomeReply(firstName), nil
}

func (e *Engine) goBack(ctx context.Context, app *model.Application, firstName string) (Reply, error) {
	prev := transitions[app.CurrentStep].Back(app)
	if prev == model.StepSamePerson {
		return e.restart(ctx, app, firstName)
	}
	app.CurrentStep = prev
	if err := e.store.Put(ctx, app); err != nil {
		return Reply{}, fmt.Errorf("error storing session: %w", err)
	}
	return e.promptReply(prev, false, ""), nil
}

// advance validates the input for the current step, writes the value and
// moves to the fixed successor. Rejected input re-prompts the same step.
func (e *Engine) advance(ctx context.Context, app *model.Application, text string) (Reply, error) {
	t := transitions[app.CurrentStep]

	res := Validate(t.Kind, text)
	if !res.Ok {
		reply := e.promptReply(app.CurrentStep, false, "")
		reply.Text = res.Reason
		return reply, nil
	}

	t.Apply(app, res.Value)
	next := t.Next(app)
	app.CurrentStep = next
	if err := e.store.Put(ctx, app); err != nil {
		return Reply{}, fmt.Errorf("error storing session: %w", err)
	}

	return e.promptReply(next, true, t.Ack), nil
}

func (e *Engine) handleDriversMenu(ctx context.Context, app *model.Application, text string) (Reply, error) {
	switch text {
	case model.LabelCopyInsured:
		app.Drivers = append(app.Drivers, model.Driver{
			Name:          app.Insured.Name,
			License:       app.Insured.License,
			LicenseIssued: app.Insured.LicenseIssued,
			LicenseExpiry: app.Insured.LicenseExpiry,
		})
		if err := e.store.Put(ctx, app); err != nil {
			return Reply{}, fmt.Errorf("error storing session: %w", err)
		}
		return e.promptReply(model.StepDriversMenu, false, "✅ Данные страхователя добавлены как водитель!"), nil
	case model.LabelAddDriver:
		app.Draft = &model.Driver{}
		app.CurrentStep = model.StepDriverName
		if err := e.store.Put(ctx, app); err != nil {
			return Reply{}, fmt.Errorf("error storing session: %w", err)
		}
		return e.promptReply(model.StepDriverName, true, ""), nil
	case model.LabelFinishDrivers:
		app.CurrentStep = model.StepPhone
		if err := e.store.Put(ctx, app); err != nil {
			return Reply{}, fmt.Errorf("error storing session: %w", err)
		}
		return e.promptReply(model.StepPhone, true, ""), nil
	default:
		return e.promptReply(model.StepDriversMenu, false, ""), nil
	}
}

// finalize assembles the application, delivers it and purges the
// session. Success or failure, the dialogue is over for this identity.
func (e *Engine) finalize(ctx context.Context, app *model.Application) (Reply, error) {
	log := e.log.With().
		Int64("user_id", app.UserID).
		Str("application_id", app.CorrelationID).
		Logger()

	now := e.now()
	doc := render.Assemble(app, now)
	transcript := render.Text(doc)

	docBytes, err := render.Docx(doc)
	if err != nil {
		log.Error().Err(err).Msg("error assembling application document")
		e.purge(ctx, app.UserID)
		return Reply{Text: msgApology, RemoveKeyboard: true}, nil
	}

	e.dispatcher.Deliver(ctx, dispatch.Delivery{
		UserChatID:  app.UserID,
		InsuredName: app.Insured.Name,
		Transcript:  transcript,
		Document:    docBytes,
		Filename:    render.Filename(app.Insured.Name, now),
	})

	e.purge(ctx, app.UserID)
	log.Info().Int("drivers", len(app.Drivers)).Msg("application submitted")
	return Reply{}, nil
}

func (e *Engine) purge(ctx context.Context, userID int64) {
	if err := e.store.Delete(ctx, userID); err != nil {
		e.log.Error().Err(err).Int64("user_id", userID).Msg("error purging session")
	}
}

func (e *Engine) welcomeReply(firstName string) Reply {
	t := transitions[model.StepSamePerson]
	return Reply{
		Text:     fmt.Sprintf(welcomeTemplate, firstName) + "\n\n" + t.Prompt,
		Keyboard: t.Choices,
	}
}

// promptReply renders the prompt for a step. Intro lines are shown only
// on forward arrival; back navigation re-asks the bare question.
func (e *Engine) promptReply(step model.Step, forward bool, ack string) Reply {
	t := transitions[step]

	var b strings.Builder
	if ack != "" {
		b.WriteString(ack)
		b.WriteString("\n\n")
	}
	if forward && t.Intro != "" {
		b.WriteString(t.Intro)
		b.WriteString("\n\n")
	}
	b.WriteString(t.Prompt)
	if t.Example != "" {
		b.WriteString("\n")
		b.WriteString(t.Example)
	}

	return Reply{Text: b.String(), Keyboard: keyboardFor(step)}
}

// keyboardFor returns the step's choices plus the navigation row. The
// first question shows only its two choices, as the source dialogue does.
func keyboardFor(step model.Step) [][]string {
	t := transitions[step]
	if step == model.StepSamePerson {
		return t.Choices
	}
	rows := make([][]string, 0, len(t.Choices)+1)
	rows = append(rows, t.Choices...)
	rows = append(rows, []string{model.LabelBack, model.LabelHome})
	return rows
}
