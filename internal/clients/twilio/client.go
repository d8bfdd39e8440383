package twilio

//go:generate go run go.uber.org/mock/mockgen@latest -source=client.go -destination=mocks_test.go -package=twilio

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"intake-agent/internal/observability"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingCredentials = errors.New("twilio account sid and auth token are required")

// messageCreator is the slice of the Twilio REST API the SMS client needs.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Client sends SMS through the Twilio Messages API and validates webhook
// signatures with the account's auth token.
type Client struct {
	messages  messageCreator
	validator twilioclient.RequestValidator
	from      string
	logger    *observability.Logger
}

func NewClient(accountSID, authToken, from string, logger *observability.Logger) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, ErrMissingCredentials
	}
	if from == "" {
		return nil, fmt.Errorf("twilio sender number is required")
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &Client{
		messages:  rest.Api,
		validator: twilioclient.NewRequestValidator(authToken),
		from:      from,
		logger:    logger,
	}, nil
}

// SendSMS sends body to the given number from the configured sender and
// returns the message SID.
func (c *Client) SendSMS(ctx context.Context, to, body string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "sms_to", Value: to},
		observability.Field{Key: "sms_from", Value: c.from},
	)

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.messages.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send sms", err)
		return "", fmt.Errorf("failed to send sms: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "message_sid", Value: sid})
	c.logger.Info(ctx, "sms sent successfully")
	return sid, nil
}

// ValidateRequest checks the X-Twilio-Signature of a form-encoded webhook.
// fullURL must be the exact URL Twilio requested, including the query string.
func (c *Client) ValidateRequest(fullURL string, form url.Values, signature string) bool {
	params := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return c.validator.Validate(fullURL, params, signature)
}
