package form

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/madcollective/donations-api/internal/models"
	"github.com/madcollective/donations-api/pkg/httpclient"
)

// State is the submission flow's position.
type State int

const (
	// StateIdle means no submission is running.
	StateIdle State = iota
	// StateTokenizing means a card token has been requested.
	StateTokenizing
	// StateAwaitingServer means the form was posted and no response has
	// arrived yet.
	StateAwaitingServer
)

// ErrSubmissionInFlight is returned by Submit while a previous submission
// has not resolved.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// transportErrorMessage is shown for any failure to reach the server.
const transportErrorMessage = "Error sending form data."

// Tokenizer exchanges the card fields of a document for a payment token.
type Tokenizer interface {
	CreateToken(ctx context.Context, doc *Document) (string, error)
}

// Controller drives one form instance through the submission flow. At most
// one submission runs at a time; the flow always returns to idle with the
// submit control re-enabled unless the form was replaced by the success
// message.
type Controller struct {
	doc       *Document
	tokenizer Tokenizer
	client    httpclient.Client

	mu    sync.Mutex
	state State
}

// NewController creates a controller for one form document.
func NewController(doc *Document, tokenizer Tokenizer, client httpclient.Client) *Controller {
	return &Controller{
		doc:       doc,
		tokenizer: tokenizer,
		client:    client,
	}
}

// State returns the flow's current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Submit runs one complete submission: tokenize the card, inject the token,
// post the form, and render the outcome on the document. Business failures
// are rendered as form errors and return nil; the error return is only for
// a submission already in flight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	c.state = StateTokenizing
	c.mu.Unlock()

	c.doc.DisableSubmit()
	c.doc.ClearErrors()

	token, err := c.tokenizer.CreateToken(ctx, c.doc)
	if err != nil {
		c.doc.AddGeneralError(err.Error())
		c.doc.EnableSubmit()
		c.setState(StateIdle)
		return nil
	}

	// The same field is reused on retries, so repeated submissions never
	// stack up token inputs.
	c.doc.SetHiddenField("stripe_token", token)

	c.setState(StateAwaitingServer)
	c.post(ctx)
	c.setState(StateIdle)
	return nil
}

// post sends the serialized form and applies the server's verdict to the
// document.
func (c *Controller) post(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.doc.Action,
		strings.NewReader(c.doc.EncodeParams()))
	if err != nil {
		c.doc.AddGeneralError(transportErrorMessage)
		c.doc.EnableSubmit()
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.doc.AddGeneralError(transportErrorMessage)
		c.doc.EnableSubmit()
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	c.doc.EnableSubmit()

	if resp.StatusCode != http.StatusOK {
		status := resp.Status
		if status == "" {
			status = http.StatusText(resp.StatusCode)
		}
		c.doc.AddGeneralError(status)
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.doc.AddGeneralError(transportErrorMessage)
		return
	}

	var outcome models.DonationResponse
	if err := json.Unmarshal(body, &outcome); err != nil {
		c.doc.AddGeneralError(transportErrorMessage)
		return
	}

	// Branch strictly on the success discriminator
	if outcome.Success {
		c.doc.ReplaceWithSuccess(outcome.SuccessMessage)
		return
	}

	for _, e := range outcome.Errors {
		if e.Field != "" {
			c.doc.AddFieldError(e.Field, e.Message)
		} else {
			c.doc.AddGeneralError(e.Message)
		}
	}
}
