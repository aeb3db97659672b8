package pacs008

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using the prometheus template

//go:generate gowrap gen -p github.com/pixpay/pacs008-client/libs/clients/pacs008 -i Client -t prometheus -o instrumented_client.go

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClientWithPrometheus implements Client interface with all methods wrapped
// with Prometheus metrics
type ClientWithPrometheus struct {
	base         Client
	instanceName string
}

var clientDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "pacs008_client_duration_seconds",
		Help:       "client runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewClientWithPrometheus returns an instance of the Client decorated with prometheus summary metric
func NewClientWithPrometheus(base Client, instanceName string) ClientWithPrometheus {
	return ClientWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// GenerateMessage implements Client
func (_d ClientWithPrometheus) GenerateMessage(ctx context.Context, req PaymentRequest) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "GenerateMessage", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GenerateMessage(ctx, req)
}
