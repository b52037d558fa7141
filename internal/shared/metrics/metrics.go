// Package metrics exposes process-local counters in Prometheus text
// format.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	signupTotal          atomic.Uint64
	loginFailedTotal     atomic.Uint64
	resumeGeneratedTotal atomic.Uint64
	generateFailedTotal  atomic.Uint64

	generateDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncSignup increments the registration counter.
func IncSignup() {
	signupTotal.Add(1)
}

// IncLoginFailed increments the failed-login counter.
func IncLoginFailed() {
	loginFailedTotal.Add(1)
}

// IncResumeGenerated increments the generated-résumé counter.
func IncResumeGenerated() {
	resumeGeneratedTotal.Add(1)
}

// IncGenerateFailed increments the failed-generation counter.
func IncGenerateFailed() {
	generateFailedTotal.Add(1)
}

// ObserveGenerateDurationMs records one generation duration in
// milliseconds.
func ObserveGenerateDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generateDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "signup_total", "Total accounts registered", signupTotal.Load())
	writeCounter(&buf, "login_failed_total", "Total failed login attempts", loginFailedTotal.Load())
	writeCounter(&buf, "resume_generated_total", "Total resumes generated", resumeGeneratedTotal.Load())
	writeCounter(&buf, "resume_generate_failed_total", "Total failed resume generations", generateFailedTotal.Load())
	writeHistogram(&buf, "resume_generate_duration_ms", "Resume generation duration in milliseconds", generateDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
