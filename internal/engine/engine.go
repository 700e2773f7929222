// Package engine orchestrates the full message pipeline: persist the user
// turn, analyze it, pick a response, then persist the bot turn and the
// updated dialogue state.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"support-chatbot/internal/common/errors"
	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/common/metrics"
	"support-chatbot/internal/common/observability"
	"support-chatbot/internal/models"
	"support-chatbot/internal/nlp"
	"support-chatbot/internal/response"
	"support-chatbot/internal/store"
	"support-chatbot/internal/ticket"
)

const fallbackResponse = "I apologize, but I'm experiencing some technical difficulties. Please try again or contact our support team."

// Engine ties the NLP pipeline, the response manager and the stores
// together. History, search index, tickets and observability are optional;
// a nil component is skipped.
type Engine struct {
	processor *nlp.Processor
	manager   *response.Manager
	store     store.ConversationStore
	history   *store.History
	index     *store.TurnIndex
	tickets   *ticket.Repository
	notifier  *ticket.Notifier
	obs       *observability.Observability
	errs      *errors.Handler
	log       logger.Logger

	contextLength int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Options carries the optional engine components.
type Options struct {
	History       *store.History
	Index         *store.TurnIndex
	Tickets       *ticket.Repository
	Notifier      *ticket.Notifier
	Observability *observability.Observability
	ContextLength int
}

// New assembles an engine. Processor, manager, store and log are required.
func New(processor *nlp.Processor, manager *response.Manager, conversations store.ConversationStore, opts Options, log logger.Logger) *Engine {
	contextLength := opts.ContextLength
	if contextLength <= 0 {
		contextLength = store.DefaultWindow
	}
	return &Engine{
		processor:     processor,
		manager:       manager,
		store:         conversations,
		history:       opts.History,
		index:         opts.Index,
		tickets:       opts.Tickets,
		notifier:      opts.Notifier,
		obs:           opts.Observability,
		errs:          errors.NewHandler(log),
		log:           log,
		contextLength: contextLength,
		locks:         make(map[string]*sync.Mutex),
	}
}

// userLock serializes processing per user so concurrent messages from the
// same user observe a consistent state and context window.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}

// ProcessMessage runs one user message through the full pipeline. It never
// returns an error to the caller: internal failures degrade to a fallback
// result with intent "error" and zero confidence.
func (e *Engine) ProcessMessage(ctx context.Context, userID, sessionID, message string) (result models.Result) {
	start := time.Now()

	if sessionID == "" {
		sessionID = fmt.Sprintf("%s_%d", userID, start.Unix())
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Message processing panicked", map[string]interface{}{
				"userId":    userID,
				"sessionId": sessionID,
				"panic":     fmt.Sprintf("%v", r),
			})
			metrics.PipelineErrors.WithLabelValues("pipeline").Inc()
			result = e.fallbackResult(sessionID, start)
		}
		metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}()

	if e.obs != nil {
		spanCtx, span := e.obs.StartSpan(ctx, "engine.process_message")
		defer span.End()
		ctx = spanCtx
	}

	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	userTurn := models.ConversationTurn{
		ID:        uuid.New().String(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Sender:    models.SenderUser,
		Timestamp: start.UTC(),
	}
	if err := e.store.AppendTurn(ctx, userTurn); err != nil {
		e.errs.Report("store_user_turn", err)
		metrics.PipelineErrors.WithLabelValues("store_user_turn").Inc()
		return e.fallbackResult(sessionID, start)
	}

	analysis := e.processor.Process(message)

	window, err := e.store.RecentTurns(ctx, userID, sessionID, e.contextLength)
	if err != nil {
		e.errs.Report("load_context", err)
		metrics.PipelineErrors.WithLabelValues("load_context").Inc()
		window = []models.ConversationTurn{userTurn}
	}

	state, _, err := e.store.State(ctx, userID)
	if err != nil {
		e.errs.Report("load_state", err)
		state = models.ConversationState{}
	}
	state.UserID = userID

	now := time.Now()
	reply := e.manager.Respond(analysis, window, &state, now)

	userTurn.Intent = analysis.Intent

	botTurn := models.ConversationTurn{
		ID:        uuid.New().String(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   reply.Response,
		Sender:    models.SenderBot,
		Intent:    analysis.Intent,
		Timestamp: now.UTC(),
	}
	if err := e.store.AppendTurn(ctx, botTurn); err != nil {
		e.errs.Report("store_bot_turn", err)
	}

	if err := e.store.SaveState(ctx, state); err != nil {
		e.errs.Report("save_state", err)
	}

	e.archive(ctx, userTurn, botTurn)

	if reply.Escalated {
		e.openTicket(ctx, userID, message, analysis)
	}

	metrics.MessagesProcessed.WithLabelValues(analysis.Intent).Inc()
	if e.obs != nil {
		e.obs.RecordMessageProcessed(ctx, analysis.Intent)
		e.obs.RecordStageDuration(ctx, "pipeline", time.Since(start))
	}

	return models.Result{
		Response:       reply.Response,
		Confidence:     reply.Confidence,
		Intent:         reply.Intent,
		Entities:       reply.Entities,
		Sentiment:      reply.Sentiment,
		Suggestions:    reply.Suggestions,
		RequiresHuman:  reply.RequiresHuman,
		SessionID:      sessionID,
		ProcessingTime: time.Since(start).Seconds(),
		Timestamp:      now.UTC(),
	}
}

// archive mirrors turns into the durable history and the search index,
// best effort.
func (e *Engine) archive(ctx context.Context, turns ...models.ConversationTurn) {
	for _, turn := range turns {
		if e.history != nil {
			if err := e.history.StoreTurn(ctx, turn); err != nil {
				e.errs.Report("archive_history", err)
			}
		}
		if e.index != nil {
			if err := e.index.IndexTurn(ctx, turn); err != nil {
				e.errs.Report("archive_index", err)
			}
		}
	}
}

// openTicket records an escalation as a support ticket and notifies the
// team. Ticket problems never change the user-facing response.
func (e *Engine) openTicket(ctx context.Context, userID, message string, analysis models.Analysis) {
	if e.tickets == nil {
		return
	}

	priority := models.TicketPriorityMedium
	if analysis.IsUrgent || analysis.Sentiment.Compound < -0.7 {
		priority = models.TicketPriorityHigh
	}

	created, err := e.tickets.Create(ctx, userID, "Escalated conversation", message, priority)
	if err != nil {
		e.errs.Report("create_ticket", err)
		return
	}
	if e.notifier != nil {
		if err := e.notifier.NotifyCreated(ctx, created); err != nil {
			e.errs.Report("notify_ticket", err)
		}
	}
}

func (e *Engine) fallbackResult(sessionID string, start time.Time) models.Result {
	return models.Result{
		Response:       fallbackResponse,
		Confidence:     0.0,
		Intent:         "error",
		SessionID:      sessionID,
		ProcessingTime: time.Since(start).Seconds(),
		Timestamp:      time.Now().UTC(),
	}
}

// History returns archived turns for a conversation, preferring the
// durable store and falling back to the rolling window.
func (e *Engine) History(ctx context.Context, userID, sessionID string, limit int) ([]models.ConversationTurn, error) {
	if e.history != nil {
		return e.history.Turns(ctx, userID, sessionID, limit)
	}
	return e.store.RecentTurns(ctx, userID, sessionID, limit)
}

// HumanAgentIntro produces the handoff message shown when a human agent
// joins an escalated conversation.
func (e *Engine) HumanAgentIntro(ctx context.Context, userID, sessionID string) (string, error) {
	window, err := e.store.RecentTurns(ctx, userID, sessionID, e.contextLength)
	if err != nil {
		return "", err
	}
	return e.manager.HumanAgentIntro(window), nil
}

// Health reports the status of each pipeline component.
func (e *Engine) Health() map[string]interface{} {
	health := e.processor.Health()
	health["history"] = e.history != nil
	health["searchIndex"] = e.index != nil
	health["tickets"] = e.tickets != nil
	return health
}
