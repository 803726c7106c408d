package suggest

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	// Registered so image type detection covers the formats office
	// converters emit.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"
)

// Config holds the Document AI processor coordinates and the retry
// discipline for suggestion calls.
type Config struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`

	// MaxAttempts bounds retries per suggestion; the delay between
	// attempts doubles from InitialBackoff.
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// RequestsPerSecond and Burst feed the token-bucket limiter ahead
	// of each API call.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// DefaultConfig returns a config with sensible defaults; processor
// coordinates must still be filled in.
func DefaultConfig() Config {
	return Config{
		Location:          "us",
		MaxAttempts:       3,
		InitialBackoff:    time.Second,
		RequestsPerSecond: 2.0,
		Burst:             5,
	}
}

// maxSuggestionLen bounds the condensed alt-text candidate.
const maxSuggestionLen = 120

// Client is the AI suggestion collaborator.
type Client struct {
	cfg       Config
	processor *documentai.DocumentProcessorClient
	limiter   *rate.Limiter

	// process runs a single OCR attempt. It defaults to the Document AI
	// call and is swapped for a stub in tests.
	process func(ctx context.Context, imageBytes []byte) (*documentaipb.Document, error)
}

// NewClient creates a Document AI backed suggestion client using
// credentials from the environment.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)

	processor, err := documentai.NewDocumentProcessorClient(
		ctx,
		option.WithEndpoint(endpoint),
		option.WithCredentialsFile(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}

	c := &Client{
		cfg:       cfg,
		processor: processor,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
	c.process = c.processDocument
	return c, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.processor.Close()
}

// Suggest OCRs the image and condenses the recognized text into an
// alt-text candidate. The hint (typically the surrounding document
// context) is appended to the request only as a tiebreaker for empty
// OCR results. Retries follow the configured backoff; an exhausted
// retry budget surfaces as a single wrapped error the caller logs as a
// non-fatal "suggestion unavailable".
func (c *Client) Suggest(ctx context.Context, imageBytes []byte, hint string) (string, error) {
	var lastErr error
	delay := c.cfg.InitialBackoff

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		doc, err := c.process(ctx, imageBytes)
		if err == nil {
			text := Condense(doc.GetText())
			if text == "" {
				text = Condense(hint)
			}
			return text, nil
		}
		lastErr = err

		if attempt < c.cfg.MaxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return "", fmt.Errorf("suggestion unavailable after %d attempts: %w", c.cfg.MaxAttempts, lastErr)
}

// processDocument sends the image through the configured OCR processor.
func (c *Client) processDocument(ctx context.Context, imageBytes []byte) (*documentaipb.Document, error) {
	mimeType, err := detectImageMIME(imageBytes)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s",
		c.cfg.ProjectID, c.cfg.Location, c.cfg.ProcessorID,
	)
	req := &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  imageBytes,
				MimeType: mimeType,
			},
		},
		SkipHumanReview: true,
	}

	resp, err := c.processor.ProcessDocument(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	return resp.Document, nil
}

// DumpResponse renders a raw Document AI response as JSON for
// debugging.
func DumpResponse(doc *documentaipb.Document) (string, error) {
	data, err := protojson.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Condense collapses OCR output into a single short phrase suitable as
// an alt-text candidate.
func Condense(text string) string {
	condensed := strings.Join(strings.Fields(text), " ")
	runes := []rune(condensed)
	if len(runes) > maxSuggestionLen {
		condensed = string(runes[:maxSuggestionLen]) + "..."
	}
	return condensed
}

// detectImageMIME figures out the image format from the bytes.
func detectImageMIME(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to detect image type: %w", err)
	}
	return "image/" + format, nil
}
