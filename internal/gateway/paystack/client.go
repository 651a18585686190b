package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	circuit "github.com/rubyist/circuitbreaker"
	"go.uber.org/zap"
)

const (
	transactionStatusSuccess = "success"

	requestTimeout   = 10 * time.Second
	breakerThreshold = 5
	maxRetries       = 2
)

// Client talks to the Paystack transaction API. Credentials are fixed at
// construction. Transport failures are retried with bounded backoff; a
// definitive provider answer is never retried.
type Client struct {
	secretKey   string
	baseURL     string
	callbackURL string
	http        *circuit.HTTPClient
	log         *zap.Logger
}

func New(cfg utils.PaystackConfig, log *zap.Logger) *Client {
	return &Client{
		secretKey:   cfg.SecretKey,
		baseURL:     cfg.BaseURL,
		callbackURL: cfg.CallbackURL,
		http:        circuit.NewHTTPClient(requestTimeout, breakerThreshold, nil),
		log:         log.With(zap.String("gateway", "paystack")),
	}
}

// InitializeRequest is the provider's initialize payload. Amount is in the
// currency's minor unit. Metadata is an opaque correlation bag.
type InitializeRequest struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"`
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InitializeResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerifyResult reports the provider's verdict on a transaction. Success is
// true only for a definitive "success" status.
type VerifyResult struct {
	Success  bool
	Status   string
	Metadata map[string]any
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CallbackURL is the redirect target handed to the provider, with the
// reference attached so the frontend can trigger verification.
func (c *Client) CallbackURL(reference string) string {
	return fmt.Sprintf("%s?reference=%s", c.callbackURL, reference)
}

func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	if req.CallbackURL == "" {
		req.CallbackURL = c.CallbackURL(req.Reference)
	}

	env, err := c.call(ctx, http.MethodPost, "/transaction/initialize", req)
	if err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, fmt.Errorf("paystack rejected initialize: %s", env.Message)
	}

	var result InitializeResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}

	c.log.Info("Payment intent initialized",
		zap.String("reference", result.Reference),
		zap.Int64("amount_minor", req.Amount),
	)
	return &result, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	env, err := c.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Status   string         `json:"status"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	return &VerifyResult{
		Success:  env.Status && data.Status == transactionStatusSuccess,
		Status:   data.Status,
		Metadata: data.Metadata,
	}, nil
}

// call runs one provider request through the breaker. Only transport errors
// are retried; any HTTP answer, including a non-2xx, is final.
func (c *Client) call(ctx context.Context, method, path string, body any) (*apiEnvelope, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", path, err)
		}
	}

	var env apiEnvelope
	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.secretKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Warn("Paystack call failed, may retry",
				zap.Error(err),
				zap.String("path", path),
			)
			return err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			// Raw provider body goes to the log for operators, never to
			// the caller.
			c.log.Error("Paystack returned error status",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", raw),
			)
			return backoff.Permanent(fmt.Errorf("paystack %s: status %d", path, resp.StatusCode))
		}

		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Error("Paystack returned malformed body",
				zap.String("path", path),
				zap.ByteString("body", raw),
			)
			return backoff.Permanent(fmt.Errorf("paystack %s: malformed response: %w", path, err))
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return &env, nil
}
