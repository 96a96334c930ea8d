package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// ErrReauthRequired signals that the stored Google credentials are no
// longer usable and the user has to go through consent again. Callers
// should surface this instead of retrying.
var ErrReauthRequired = errors.New("google reauthorization required")

// Client reads cell ranges from a Google spreadsheet. It implements
// workouts.RangeGetter.
type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	service, err := sheets.NewService(
		ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// NewClientWithHTTPClient builds the client on a caller-provided HTTP
// client (already authorized), wrapped with otel transport instrumentation.
func NewClientWithHTTPClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	instrumented := &http.Client{
		Transport: otelhttp.NewTransport(httpClient.Transport),
		Timeout:   httpClient.Timeout,
	}
	service, err := sheets.NewService(ctx, option.WithHTTPClient(instrumented))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// GetRange returns the cells of an A1 range as rows of strings. Rows come
// back ragged, exactly as the API returns them; trailing empty cells are
// not padded.
func (c *Client) GetRange(ctx context.Context, spreadsheetID, a1Range string) (_ [][]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.getrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sheets.range", a1Range))

	resp, err := c.service.Spreadsheets.Values.
		Get(spreadsheetID, a1Range).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	span.SetAttributes(attribute.Int("sheets.rows", len(rows)))

	return rows, nil
}

// mapAPIError translates credential failures to ErrReauthRequired and
// passes everything else through.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrReauthRequired, apiErr.Message)
	}
	if strings.Contains(err.Error(), "invalid_grant") {
		return fmt.Errorf("%w: %s", ErrReauthRequired, err)
	}
	return err
}
