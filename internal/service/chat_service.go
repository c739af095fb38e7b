package service

import (
	"context"
	"strings"
	"sync"

	"lira-support-be/internal/catalog"
	"lira-support-be/internal/dto"
	"lira-support-be/internal/pkg/logger"
	"lira-support-be/internal/repository/contract"
	"lira-support-be/pkg/language"
	"lira-support-be/pkg/llm"
	"lira-support-be/pkg/prompt"
	"lira-support-be/pkg/store"
)

const (
	replyMaxTokens = 200

	emptyInputReply = "Please ask a question."
	apologyBangla   = "এই মুহূর্তে উত্তর দিতে সমস্যা হচ্ছে।"
	apologyEnglish  = "I'm having trouble answering right now."
)

// IChatService handles one inbound chat message per call
type IChatService interface {
	HandleMessage(ctx context.Context, sessionID, message string) (*dto.SendChatResponse, error)
}

type chatService struct {
	sessionRepo  contract.SessionRepository
	llmProvider  llm.LLMProvider
	buildPrompt  func() string
	rulesVariant string
	log          logger.ILogger

	// Session stores give no read-modify-write isolation, so the
	// load-mutate-save cycle is a critical section per session id
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewChatService creates the chat service. Catalog and article are loaded
// once at startup and injected read-only; the grounding prompt built from
// them is memoized per session on first use.
func NewChatService(
	sessionRepo contract.SessionRepository,
	llmProvider llm.LLMProvider,
	cat *catalog.Catalog,
	article string,
	rulesVariant string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		llmProvider: llmProvider,
		buildPrompt: func() string {
			return prompt.BuildSystemPrompt(article, prompt.FormatProducts(cat.Flatten()))
		},
		rulesVariant: rulesVariant,
		log:          log,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (s *chatService) HandleMessage(ctx context.Context, sessionID, message string) (*dto.SendChatResponse, error) {
	userText := strings.TrimSpace(message)
	if userText == "" {
		// Prompt for input without touching session state
		return &dto.SendChatResponse{Reply: emptyInputReply, Lang: language.English}, nil
	}

	lang := language.Detect(userText)

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, found := s.sessionRepo.Get(sessionID)
	if !found {
		session = &store.SessionState{ID: sessionID}
	}
	if session.SystemPrompt == "" {
		session.SystemPrompt = s.buildPrompt()
		// Persist immediately so the prompt survives a failed first turn
		s.sessionRepo.Save(session)
	}

	messages := make([]llm.Message, 0, len(session.History)+3)
	messages = append(messages,
		llm.Message{Role: store.RoleSystem, Content: session.SystemPrompt},
		llm.Message{Role: store.RoleSystem, Content: prompt.StyleRules(lang, s.rulesVariant)},
	)
	for _, m := range session.History {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: store.RoleUser, Content: userText})

	reply, err := s.llmProvider.Chat(ctx, messages, llm.WithMaxTokens(replyMaxTokens))
	if err != nil {
		s.log.Error("chat", "LLM call failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		// The failed turn is not recorded, so a retry starts from the
		// same history
		return &dto.SendChatResponse{Reply: apology(lang), Lang: lang}, nil
	}

	session.AppendTurn(userText, reply)
	s.sessionRepo.Save(session)

	return &dto.SendChatResponse{Reply: reply, Lang: lang}, nil
}

func (s *chatService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func apology(lang string) string {
	if lang == language.Bangla {
		return apologyBangla
	}
	return apologyEnglish
}
