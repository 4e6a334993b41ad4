package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needle-ai/needle-go/v1/observability"
)

func TestObserveOperationCountsSuccessAndError(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: "needle",
		Operation: "collections.get",
		Duration:  15 * time.Millisecond,
		Size:      128,
		Metadata:  map[string]interface{}{"status_code": 200},
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "needle",
		Operation: "collections.get",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("not found"),
		Metadata:  map[string]interface{}{"status_code": 404},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("needle", "collections.get", statusSuccess, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("needle", "collections.get", statusError, "404")))
	assert.Equal(t, 128.0, testutil.ToFloat64(m.responseBytes.WithLabelValues("needle", "collections.get")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestObserveOperationWithoutStatusCode(t *testing.T) {
	m := NewMetrics(Config{})

	m.ObserveOperation(observability.OperationContext{
		Component: "needle",
		Operation: "files.download_url",
		Error:     errors.New("dial tcp: timeout"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("needle", "files.download_url", statusError, "0")))
}

func TestNamespaceAndServiceLabel(t *testing.T) {
	m := NewMetrics(Config{Namespace: "needle", ServiceName: "indexer"})
	m.ObserveOperation(observability.OperationContext{Component: "needle", Operation: "collections.list"})

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "needle_requests_total" {
			continue
		}
		found = true
		var service string
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			if lp.GetName() == "service" {
				service = lp.GetValue()
			}
		}
		assert.Equal(t, "indexer", service)
	}
	assert.True(t, found, "needle_requests_total not gathered")
}

func TestServerDisabledWithoutAddress(t *testing.T) {
	assert.Nil(t, NewMetrics(Config{}).Server)
	assert.NotNil(t, NewMetrics(Config{Address: ":0"}).Server)
}

func TestCreateCounterRegistersInOwnRegistry(t *testing.T) {
	m := NewMetrics(Config{})
	c := m.CreateCounter("collections_created_total", "Collections created", []string{"owner"})
	c.WithLabelValues("me").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.WithLabelValues("me")))
	assert.Equal(t, 1, testutil.CollectAndCount(c))
}
