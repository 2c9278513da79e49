package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ecobudget_backend/internal/apperrors"
	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.0-flash"

const systemPrompt = `You are a smart financial advisor AI for a budget app.
Your goal is to analyze the user's discretionary spending and predict future trends.

You must output a strictly valid JSON object with NO markdown formatting, NO backticks, and NO extra text.
The JSON must follow this exact schema:
{
  "description": <string>,
  "prediction_amount": <number>,
  "percentage_change": <number>,
  "savings_category": <string>,
  "savings_amount": <number>,
  "months_saved": <number>
}
"description" is a short description of the prediction, "prediction_amount" the predicted total spend
for next month, "percentage_change" the % change vs the current month, "savings_category" the specific
category to cut back on, "savings_amount" the money saved by cutting that category by 25% and
"months_saved" how many months faster the user reaches the savings goal.`

// GeminiClient asks a Gemini model for a narrative spending forecast.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client for the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = DefaultModelName
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Predict returns the model's forecast. Every failure wraps apperrors.ErrUpstream.
func (g *GeminiClient) Predict(ctx context.Context, input domain.PredictionInput) (*domain.Prediction, error) {
	prompt, err := BuildPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("%w: build prompt: %v", apperrors.ErrUpstream, err)
	}

	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       &temperature,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", apperrors.ErrUpstream, err)
	}
	return ParsePrediction(resp.Text())
}

type budgetContext struct {
	Income        decimal.Decimal            `json:"income"`
	Expenses      decimal.Decimal            `json:"expenses"`
	Savings       decimal.Decimal            `json:"savings"`
	Categories    map[string]decimal.Decimal `json:"categories"`
	Plan          map[string]decimal.Decimal `json:"plan"`
	SavingsGoal   string                     `json:"savings_goal"`
	SavingsReason string                     `json:"savings_reason"`
}

type expenseLine struct {
	Date     string          `json:"date"`
	Place    string          `json:"place"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BuildPrompt renders the user message sent alongside the system prompt.
func BuildPrompt(input domain.PredictionInput) (string, error) {
	budget, err := json.Marshal(budgetContext{
		Income:        input.Budget.Income,
		Expenses:      input.Budget.Expenses,
		Savings:       input.Budget.Savings,
		Categories:    input.Budget.Categories,
		Plan:          input.Plan.Limits,
		SavingsGoal:   input.Plan.SavingsGoal,
		SavingsReason: input.Plan.SavingsReason,
	})
	if err != nil {
		return "", err
	}

	lines := make([]expenseLine, 0, len(input.RecentExpenses))
	for _, t := range input.RecentExpenses {
		if !t.HasAmount() {
			continue
		}
		lines = append(lines, expenseLine{Date: t.DateKey(), Place: t.Place, Category: t.Category, Amount: t.Amount.Decimal})
	}
	expenses, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Here is the user's monthly budget context:\n")
	b.Write(budget)
	b.WriteString("\n\nHere is a list of discretionary expense transactions from the last 30 days:\n")
	b.Write(expenses)
	b.WriteString(`

Based on this data:
1. Predict the total spending for next month based on these habits continuing.
2. Calculate the percentage change from the current month.
3. Identify ONE specific category where they can save money.
4. Calculate how much they save if they cut that category by 25%.
5. Estimate how many months earlier they will reach their savings goal with that extra cash.
6. Provide a short description of the prediction.
`)
	return b.String(), nil
}

// ParsePrediction decodes a model reply, tolerating markdown fences and surrounding text.
func ParsePrediction(raw string) (*domain.Prediction, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response from model", apperrors.ErrUpstream)
	}

	var p domain.Prediction
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, fmt.Errorf("%w: unmarshal prediction: %v", apperrors.ErrUpstream, err)
	}
	if p.Description == "" && p.SavingsCategory == "" {
		return nil, fmt.Errorf("%w: prediction is missing required fields", apperrors.ErrUpstream)
	}
	return &p, nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// ```json ... ``` or ``` ... ```
	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return ""
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return strings.TrimSpace(s)
}
