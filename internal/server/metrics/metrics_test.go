package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()

	m.RequestsTotal.WithLabelValues("/authentication.AuthenticationService/Signin", "OK").Inc()
	m.OutboxPublished.Inc()
	m.OutboxFailed.Inc()

	if got := testutil.ToFloat64(m.OutboxPublished); got != 1 {
		t.Fatalf("outbox published counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.OutboxFailed); got != 1 {
		t.Fatalf("outbox failed counter = %v, want 1", got)
	}

	n, err := testutil.GatherAndCount(m.Registry(),
		"identity_grpc_requests_total",
		"identity_outbox_published_total",
		"identity_outbox_failed_total",
	)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 3 {
		t.Fatalf("gathered %d series, want 3", n)
	}
}
