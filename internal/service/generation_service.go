package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pretty_exam_backend/internal/config"
	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"strings"
	"time"
)

// GenerationService drafts questions from source text through an
// OpenAI-compatible chat-completions endpoint and imports the reviewed
// drafts through the regular question pipeline.
type GenerationService struct {
	config     config.AIConfig
	client     *http.Client
	questions  *QuestionService
	categories *CategoryService
}

func NewGenerationService(cfg config.AIConfig, questions *QuestionService, categories *CategoryService) *GenerationService {
	return &GenerationService{
		config:     cfg,
		client:     &http.Client{Timeout: 90 * time.Second},
		questions:  questions,
		categories: categories,
	}
}

type GenerateConfig struct {
	MultipleChoice int `json:"multipleChoice"`
	TrueFalse      int `json:"trueFalse"`
}

type GenerateRequest struct {
	Text   string         `json:"text" binding:"required"`
	Config GenerateConfig `json:"config"`
}

type ImportRequest struct {
	Questions    []validation.QuestionInput `json:"questions" binding:"required"`
	CategoryName string                     `json:"categoryName"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func buildPrompt(text string, cfg GenerateConfig) string {
	var b strings.Builder
	b.WriteString("A partir del siguiente texto, genera preguntas de examen en español.\n")
	if cfg.MultipleChoice > 0 {
		fmt.Fprintf(&b, "Genera %d preguntas de opción múltiple (tipo \"multiple_choice\") con 4 opciones cada una y al menos una correcta.\n", cfg.MultipleChoice)
	}
	if cfg.TrueFalse > 0 {
		fmt.Fprintf(&b, "Genera %d preguntas de verdadero/falso (tipo \"true_false\") con exactamente 2 opciones (\"Verdadero\" y \"Falso\") y exactamente una correcta.\n", cfg.TrueFalse)
	}
	b.WriteString("Responde únicamente con un arreglo JSON, sin texto adicional, con esta forma exacta:\n")
	b.WriteString(`[{"text":"...","type":"multiple_choice","options":[{"text":"...","isCorrect":true}]}]`)
	b.WriteString("\nCada pregunta debe tener un texto de entre 10 y 1000 caracteres.\n\nTexto fuente:\n")
	b.WriteString(text)
	return b.String()
}

// GenerateQuestions returns validated drafts; nothing is persisted until the
// client reviews them and calls Import.
func (s *GenerationService) GenerateQuestions(req GenerateRequest) ([]validation.QuestionInput, error) {
	if s.config.APIKey == "" {
		return nil, util.NewExternalError("Falta la clave de API del servicio de IA", nil)
	}
	if req.Config.MultipleChoice <= 0 && req.Config.TrueFalse <= 0 {
		return nil, util.NewValidationError([]string{"Debe solicitar al menos una pregunta"})
	}

	content, err := s.chat(buildPrompt(req.Text, req.Config))
	if err != nil {
		return nil, err
	}

	drafts, err := parseGeneratedQuestions(content)
	if err != nil {
		return nil, err
	}

	var problems []string
	for i, draft := range drafts {
		if res := validation.Question(draft); !res.IsValid {
			problems = append(problems, fmt.Sprintf("Pregunta %d: %s", i+1, strings.Join(res.Errors, "; ")))
		}
	}
	if len(problems) > 0 {
		return nil, util.NewExternalError("El servicio de IA devolvió preguntas inválidas: "+strings.Join(problems, " | "), nil)
	}

	return drafts, nil
}

func (s *GenerationService) chat(prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "Eres un asistente que redacta preguntas de examen en español y responde solo con JSON válido."},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", util.NewExternalError("Error al generar preguntas", err)
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", util.NewExternalError("Error al generar preguntas", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", util.NewExternalError("Error al contactar el servicio de IA", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", util.NewExternalError(
			fmt.Sprintf("El servicio de IA respondió con estado %d: %s", resp.StatusCode, string(body)), nil)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", util.NewExternalError("Respuesta del servicio de IA ilegible", err)
	}
	if completion.Error != nil {
		return "", util.NewExternalError("Error del servicio de IA: "+completion.Error.Message, nil)
	}
	if len(completion.Choices) == 0 {
		return "", util.NewExternalError("El servicio de IA no devolvió contenido", nil)
	}

	return completion.Choices[0].Message.Content, nil
}

// parseGeneratedQuestions tolerates markdown code fences around the JSON
// array, a common model habit even when told not to.
func parseGeneratedQuestions(content string) ([]validation.QuestionInput, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var drafts []validation.QuestionInput
	if err := json.Unmarshal([]byte(trimmed), &drafts); err != nil {
		return nil, util.NewExternalError("La respuesta del servicio de IA no es JSON válido", err)
	}
	if len(drafts) == 0 {
		return nil, util.NewExternalError("El servicio de IA no generó preguntas", nil)
	}
	return drafts, nil
}

// Import persists reviewed drafts, reusing the named category when it
// already exists and creating it otherwise. Every question lands tagged
// source=generated.
func (s *GenerationService) Import(req ImportRequest) ([]model.Question, error) {
	if len(req.Questions) == 0 {
		return nil, util.NewValidationError([]string{"No hay preguntas para importar"})
	}

	var categoryID *int64
	if strings.TrimSpace(req.CategoryName) != "" {
		category, exists, err := s.categories.NameExists(req.CategoryName, 0)
		if err != nil {
			return nil, util.NewOperationError(util.TypeCreate, "No se pudo resolver la categoría", err)
		}
		if !exists {
			category, err = s.categories.Create(CategoryRequest{Name: req.CategoryName})
			if err != nil {
				return nil, err
			}
		}
		id := int64(category.ID)
		categoryID = &id
	}

	imported := make([]model.Question, 0, len(req.Questions))
	for _, draft := range req.Questions {
		draft.Source = model.QuestionSourceGenerated
		if categoryID != nil {
			draft.CategoryID = categoryID
		}
		question, err := s.questions.Create(draft)
		if err != nil {
			return nil, err
		}
		imported = append(imported, *question)
	}

	return imported, nil
}
