package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/brewtime/alarm-scheduler/internal/pkg/application/alarms"
	"github.com/brewtime/alarm-scheduler/internal/pkg/infrastructure/reporting"
	"github.com/brewtime/alarm-scheduler/pkg/types"
)

func TestHealthEndpointReturns204NoContent(t *testing.T) {
	is, ts := testSetup(t, &alarms.AlarmServiceMock{}, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestCreateAlarm(t *testing.T) {
	svc := &alarms.AlarmServiceMock{
		AddFunc: func(ctx context.Context, timeOfDay types.TimeOfDay, timeZone, label, subtitle string, repeatDays []int) (types.Alarm, error) {
			return types.Alarm{
				ID:                   "alarm-01",
				Time:                 timeOfDay,
				TimeZone:             timeZone,
				Label:                label,
				NotificationSubtitle: subtitle,
				RepeatDays:           repeatDays,
			}, nil
		},
	}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodPost, "/api/v0/alarms", bytes.NewBufferString(`{
		"time": "09:03",
		"timeZone": "Europe/Stockholm",
		"label": "Green tea",
		"repeatDays": [2, 4]
	}`))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(len(svc.AddCalls()), 1)
	is.Equal(svc.AddCalls()[0].TimeOfDay, types.TimeOfDay{Hour: 9, Minute: 3})
	is.Equal(svc.AddCalls()[0].TimeZone, "Europe/Stockholm")

	var created types.Alarm
	is.NoErr(json.Unmarshal([]byte(body), &created))
	is.Equal(created.ID, "alarm-01")
}

func TestCreateAlarmWithMalformedTimeFailsWith400(t *testing.T) {
	svc := &alarms.AlarmServiceMock{}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodPost, "/api/v0/alarms", bytes.NewBufferString(`{"time": "quarter past nine"}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(svc.AddCalls()), 0)
}

func TestCreateAlarmWithMalformedBodyFailsWith400(t *testing.T) {
	is, ts := testSetup(t, &alarms.AlarmServiceMock{}, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodPost, "/api/v0/alarms", bytes.NewBufferString(`not json`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestListAlarms(t *testing.T) {
	svc := &alarms.AlarmServiceMock{
		AlarmsFunc: func(ctx context.Context) []types.Alarm {
			return []types.Alarm{
				{ID: "alarm-01", Time: types.TimeOfDay{Hour: 7, Minute: 30}},
				{ID: "alarm-02", Time: types.TimeOfDay{Hour: 16, Minute: 0}},
			}
		},
	}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/v0/alarms", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	var listing struct {
		Data  []types.Alarm `json:"data"`
		Count int           `json:"count"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &listing))
	is.Equal(listing.Count, 2)
	is.Equal(listing.Data[1].ID, "alarm-02")
}

func TestGetUnknownAlarmReturns404(t *testing.T) {
	svc := &alarms.AlarmServiceMock{
		GetByIDFunc: func(ctx context.Context, alarmID string) (types.Alarm, error) {
			return types.Alarm{}, alarms.ErrAlarmNotFound
		},
	}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/api/v0/alarms/nosuchalarm", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestDeleteAlarm(t *testing.T) {
	svc := &alarms.AlarmServiceMock{
		RemoveFunc: func(ctx context.Context, alarmID string) error {
			return nil
		},
	}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodDelete, "/api/v0/alarms/alarm-01", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(len(svc.RemoveCalls()), 1)
	is.Equal(svc.RemoveCalls()[0].AlarmID, "alarm-01")
}

func TestDeleteUnknownAlarmReturns404(t *testing.T) {
	svc := &alarms.AlarmServiceMock{
		RemoveFunc: func(ctx context.Context, alarmID string) error {
			return alarms.ErrAlarmNotFound
		},
	}

	is, ts := testSetup(t, svc, reporting.New())
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodDelete, "/api/v0/alarms/nosuchalarm", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestLastErrorRoundtrip(t *testing.T) {
	reporter := reporting.New()
	reporter.Report("scheduling failed")

	is, ts := testSetup(t, &alarms.AlarmServiceMock{}, reporter)
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodGet, "/api/v0/errors/last", nil)

	is.Equal(resp.StatusCode, http.StatusOK)

	var lastError struct {
		Message string `json:"message"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &lastError))
	is.Equal(lastError.Message, "scheduling failed")

	resp, _ = testRequest(is, ts, http.MethodDelete, "/api/v0/errors/last", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(reporter.Last(), "")
}

func testSetup(t *testing.T, svc alarms.AlarmService, reporter *reporting.LastError) (*is.I, *httptest.Server) {
	is := is.New(t)

	r := chi.NewRouter()
	RegisterHandlers(context.Background(), r, svc, reporter)

	return is, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body *bytes.Buffer) (*http.Response, string) {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	is.NoErr(err)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody := new(bytes.Buffer)
	_, err = respBody.ReadFrom(resp.Body)
	is.NoErr(err)

	return resp, respBody.String()
}
