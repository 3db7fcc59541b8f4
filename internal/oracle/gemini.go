// Package oracle reads payment screenshots with Gemini.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/integration"
	"github.com/wb-go/wbf/logger"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	DefaultModel = "gemini-1.5-flash"

	maxImageBytes = 10 << 20
)

const extractPrompt = `You are checking a bank or mobile wallet transfer receipt.
Reply with a single JSON object and nothing else:
{"is_payment_screenshot": bool, "confidence": number between 0 and 1,
 "amount": number or null, "transaction_id": string, "sender_name": string}
Set is_payment_screenshot to false if the image is not a payment receipt.
Use null for the amount if it cannot be read.`

// generator is the part of *genai.GenerativeModel the oracle uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiOracle struct {
	client *genai.Client
	model  generator
	http   *http.Client
	policy integration.Policy
	logger logger.Logger
}

func NewGeminiOracle(
	ctx context.Context, apiKey, model string, policy integration.Policy, log logger.Logger,
) (*GeminiOracle, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}
	m := client.GenerativeModel(model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0)

	return &GeminiOracle{
		client: client,
		model:  m,
		http:   &http.Client{Timeout: policy.Timeout},
		policy: policy,
		logger: log,
	}, nil
}

func (o *GeminiOracle) Close() error {
	if o.client == nil {
		return nil
	}
	return o.client.Close()
}

func (o *GeminiOracle) Extract(ctx context.Context, imageURL string) (*domain.ScreenshotAnalysis, error) {
	var (
		image []byte
		mime  string
	)
	err := o.policy.Call(ctx, "fetch screenshot", func(ctx context.Context) error {
		var err error
		image, mime, err = o.fetch(ctx, imageURL)
		return err
	})
	if err != nil {
		return nil, err
	}

	var text string
	err = o.policy.Call(ctx, "gemini extract", func(ctx context.Context) error {
		resp, err := o.model.GenerateContent(ctx,
			genai.ImageData(strings.TrimPrefix(mime, "image/"), image),
			genai.Text(extractPrompt),
		)
		if err != nil {
			return classify(err)
		}
		text = responseText(resp)
		return nil
	})
	if err != nil {
		return nil, err
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		o.logger.Warn("unparseable oracle reply",
			logger.String("url", imageURL),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrIntegration, err)
	}

	o.logger.Debug("screenshot analyzed",
		logger.String("url", imageURL),
		logger.Bool("is_payment", analysis.IsPaymentScreenshot),
		logger.Any("confidence", analysis.Confidence),
	)
	return analysis, nil
}

func (o *GeminiOracle) fetch(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", integration.Permanent(fmt.Errorf("build image request: %w", err))
	}

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("download image: status %d", resp.StatusCode)
		if integration.IsClientStatus(resp.StatusCode) {
			return nil, "", integration.Permanent(err)
		}
		return nil, "", err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, "", integration.Permanent(fmt.Errorf("image is larger than %d bytes", maxImageBytes))
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", integration.Permanent(fmt.Errorf("url does not point to an image (%s)", mime))
	}
	return data, mime, nil
}

// classify marks request errors the API will keep rejecting.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && integration.IsClientStatus(gerr.Code) {
		return integration.Permanent(err)
	}
	// apierror.APIError over REST
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) && integration.IsClientStatus(coded.HTTPCode()) {
		return integration.Permanent(err)
	}
	return err
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		break
	}
	return sb.String()
}

type rawAnalysis struct {
	IsPaymentScreenshot bool    `json:"is_payment_screenshot"`
	Confidence          float64 `json:"confidence"`
	Amount              any     `json:"amount"`
	TransactionID       string  `json:"transaction_id"`
	SenderName          string  `json:"sender_name"`
}

var (
	jsonObject   = regexp.MustCompile(`(?s)\{.*\}`)
	amountDigits = regexp.MustCompile(`\d[\d,]*(\.\d+)?`)
)

func parseAnalysis(text string) (*domain.ScreenshotAnalysis, error) {
	body := jsonObject.FindString(text)
	if body == "" {
		return nil, fmt.Errorf("oracle reply has no json object")
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("decode oracle reply: %w", err)
	}

	res := &domain.ScreenshotAnalysis{
		IsPaymentScreenshot: raw.IsPaymentScreenshot,
		Confidence:          min(max(raw.Confidence, 0), 1),
		TransactionID:       strings.TrimSpace(raw.TransactionID),
		SenderName:          strings.TrimSpace(raw.SenderName),
	}
	if amount, ok := parseAmount(raw.Amount); ok {
		res.Amount = &amount
	}
	return res, nil
}

// parseAmount accepts 5000, "5000" and "Rs. 5,000"; anything else is unreadable.
func parseAmount(v any) (decimal.Decimal, bool) {
	switch a := v.(type) {
	case float64:
		if a <= 0 {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(a), true
	case string:
		match := amountDigits.FindString(a)
		if match == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
		if err != nil || !d.IsPositive() {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
