package service

import (
	"context"
	"fmt"
	"log"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/databricks"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
)

const (
	noMessagesReply    = "Keine Nachrichten vorhanden."
	emptyAnswerReply   = "Der Agent hat keine Antwort generiert (leere Rückgabe)."
	csvPathAnnotation  = " (SYSTEM-INFO: Die zu analysierende Datei liegt hier: %s)"
	internalErrorReply = "Interner Server-Fehler: %v"
)

type ResultKind int

const (
	ResultAnswered ResultKind = iota
	ResultEmpty
	ResultNoMessages
	ResultEndpointFailure
	ResultInternalFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultAnswered:
		return "answered"
	case ResultEmpty:
		return "empty"
	case ResultNoMessages:
		return "no_messages"
	case ResultEndpointFailure:
		return "endpoint_failure"
	case ResultInternalFailure:
		return "internal_failure"
	}
	return "unknown"
}

// AgentResult is the outcome of one chat turn. Every kind, failures
// included, renders to an assistant message.
type AgentResult struct {
	Kind    ResultKind
	Content string
	Err     error
}

func (r AgentResult) Message() models.ChatMessage {
	return models.ChatMessage{Role: models.RoleAssistant, Content: r.Content}
}

// agentInput is one dataframe record sent to the agent endpoint.
type agentInput struct {
	Input       string               `json:"input"`
	ChatHistory []models.ChatMessage `json:"chat_history"`
}

// AgentService forwards chat turns to a model-serving endpoint.
type AgentService struct {
	workspace Workspace
	endpoint  string
}

func NewAgentService(workspace Workspace, endpoint string) *AgentService {
	return &AgentService{
		workspace: workspace,
		endpoint:  endpoint,
	}
}

func (s *AgentService) Endpoint() string {
	return s.endpoint
}

// Chat sends the last message as the question and everything before it as
// history. It never fails; errors are reported in the result content.
func (s *AgentService) Chat(ctx context.Context, req models.ChatRequest) (result AgentResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[AGENT] Panic while handling chat: %v", r)
			result = AgentResult{
				Kind:    ResultInternalFailure,
				Content: fmt.Sprintf(internalErrorReply, r),
				Err:     fmt.Errorf("panic: %v", r),
			}
		}
	}()

	if len(req.Messages) == 0 {
		return AgentResult{Kind: ResultNoMessages, Content: noMessagesReply}
	}

	question, history := splitConversation(req.Messages)
	if req.CSVPath != "" {
		question += fmt.Sprintf(csvPathAnnotation, req.CSVPath)
	}

	resp, err := s.workspace.QueryServingEndpoint(ctx, s.endpoint, databricks.ServingRequest{
		DataframeRecords: []interface{}{agentInput{Input: question, ChatHistory: history}},
	})
	if err != nil {
		invocationErr := &AgentInvocationError{Endpoint: s.endpoint, Err: err}
		log.Printf("[AGENT] Endpoint error: %v", err)
		return AgentResult{Kind: ResultEndpointFailure, Content: invocationErr.Error(), Err: invocationErr}
	}

	if resp == nil || len(resp.Predictions) == 0 {
		return AgentResult{Kind: ResultEmpty, Content: emptyAnswerReply}
	}

	answer := DecodePrediction(resp.Predictions[0]).Text()
	return AgentResult{Kind: ResultAnswered, Content: RepairMojibake(answer)}
}

// splitConversation returns the last message as the question and the
// preceding turns as history, re-tagged to user or assistant.
func splitConversation(messages []models.ChatMessage) (string, []models.ChatMessage) {
	last := len(messages) - 1
	history := make([]models.ChatMessage, 0, last)
	for _, m := range messages[:last] {
		role := models.RoleAssistant
		if m.Role == models.RoleUser {
			role = models.RoleUser
		}
		history = append(history, models.ChatMessage{Role: role, Content: m.Content})
	}
	return messages[last].Content, history
}
