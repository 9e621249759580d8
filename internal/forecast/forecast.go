// Package forecast talks to the external demand-prediction service. No
// forecasting happens here: the package builds the service's request from an
// item's sales history, and merges the returned projection onto the
// historical series for charting.
package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/stocklens-dev/stocklens/internal/aggregate"
	"github.com/stocklens-dev/stocklens/internal/model"
)

// Request is the prediction service's wire format. SalesData is a
// comma-separated list of per-period unit counts, oldest first.
type Request struct {
	Product         string `json:"product"`
	CurrentStock    int    `json:"currentStock"`
	SalesData       string `json:"salesData"`
	ForecastPeriod  int    `json:"forecastPeriod"`
	ConfidenceLevel int    `json:"confidenceLevel"`
}

// Response is the prediction service's answer. Bounds are optional.
type Response struct {
	Forecast    []float64 `json:"forecast"`
	UpperBounds []float64 `json:"upper_bounds,omitempty"`
	LowerBounds []float64 `json:"lower_bounds,omitempty"`
}

// Point is one month on the merged historical-plus-projected chart.
type Point struct {
	Month     string
	Value     decimal.Decimal
	Projected bool
	Upper     decimal.Decimal // zero unless projected with bounds
	Lower     decimal.Decimal
}

// Client posts forecast requests to the external service.
type Client struct {
	url  string
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(url string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{url: url, http: &http.Client{Timeout: timeout}, log: log}
}

// BuildRequest assembles a Request for an item from its monthly sales
// history. History must be ascending by month, as MonthlySales returns it.
func BuildRequest(it model.Item, history []aggregate.MonthPoint, period, confidence int) Request {
	counts := make([]string, len(history))
	for i, p := range history {
		counts[i] = strconv.FormatInt(p.Units, 10)
	}
	return Request{
		Product:         it.Name,
		CurrentStock:    it.Quantity,
		SalesData:       strings.Join(counts, ","),
		ForecastPeriod:  period,
		ConfidenceLevel: confidence,
	}
}

// Predict posts the request and decodes the projection.
func (c *Client) Predict(ctx context.Context, req Request) (*Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding forecast request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building forecast request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Error().Err(err).Str("product", req.Product).Msg("forecast request failed")
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("forecast service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding forecast response: %w", err)
	}
	c.log.Debug().Str("product", req.Product).Int("periods", len(out.Forecast)).Msg("forecast received")
	return &out, nil
}

// Merge appends the projection to the historical series, labeling projected
// points with the calendar months that follow the last historical month.
func Merge(history []aggregate.MonthPoint, resp *Response) []Point {
	points := make([]Point, 0, len(history)+len(resp.Forecast))
	for _, p := range history {
		points = append(points, Point{Month: p.Month, Value: decimal.NewFromInt(p.Units)})
	}

	last := time.Time{}
	if len(history) > 0 {
		last, _ = time.Parse("2006-01", history[len(history)-1].Month)
	}

	for i, v := range resp.Forecast {
		p := Point{Value: decimal.NewFromFloat(v), Projected: true}
		if !last.IsZero() {
			p.Month = last.AddDate(0, i+1, 0).Format("2006-01")
		} else {
			p.Month = fmt.Sprintf("+%d", i+1)
		}
		if i < len(resp.UpperBounds) {
			p.Upper = decimal.NewFromFloat(resp.UpperBounds[i])
		}
		if i < len(resp.LowerBounds) {
			p.Lower = decimal.NewFromFloat(resp.LowerBounds[i])
		}
		points = append(points, p)
	}
	return points
}
