package feedhttp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icsfeed/icsfeed"
)

func testRenderer() *icsfeed.Renderer {
	base := icsfeed.Configure(nil, "teamcal", "cal.example.org", "CET")
	clock := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return icsfeed.New(base, "cal.example.org", icsfeed.WithClock(clock))
}

func staticSource(events ...icsfeed.Event) Source {
	return SourceFunc(func(context.Context) (icsfeed.Properties, []icsfeed.Event, error) {
		return nil, events, nil
	})
}

func TestHandlerServesCalendar(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource(icsfeed.Event{"summary": "Team sync"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	res := rec.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/calendar; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(body)), res.Header.Get("Content-Length"))
	assert.True(t, strings.HasPrefix(string(body), "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, string(body), "SUMMARY:Team sync")
}

func TestHandlerHead(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource(icsfeed.Event{"summary": "Team sync"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/calendar.ics", nil))

	res := rec.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/calendar; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Empty(t, body)
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar.ics", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestHandlerSourceError(t *testing.T) {
	src := SourceFunc(func(context.Context) (icsfeed.Properties, []icsfeed.Event, error) {
		return nil, nil, errors.New("upstream down")
	})
	h := NewHandler(testRenderer(), src)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestHandlerRenderError(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource(icsfeed.Event{"bad": []string{"x"}}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestHandlerFilename(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource(), WithFilename("teamcal.ics"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	assert.Equal(t, `attachment; filename="teamcal.ics"`, rec.Header().Get("Content-Disposition"))
}

func TestHandlerMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	h := NewHandler(testRenderer(),
		staticSource(icsfeed.Event{"summary": "a"}, icsfeed.Event{"summary": "b"}),
		WithMetrics(m))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/calendar.ics", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(outcomeBadMethod)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.renderEvents))
}

func TestHandlerNilMetrics(t *testing.T) {
	h := NewHandler(testRenderer(), staticSource(icsfeed.Event{"summary": "a"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calendar.ics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
