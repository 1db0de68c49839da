// Package metrics defines the custom Prometheus metrics for the feedback
// platform. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feedbackapp"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// FilesUploadedTotal counts assets uploaded into projects.
// Label:
//   - mime_type: the stored content type (e.g. "image/png")
var FilesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_uploaded_total",
		Help:      "Total number of files uploaded, by MIME type.",
	},
	[]string{"mime_type"},
)

// UploadBytesTotal accumulates the size of every stored upload, message
// attachments included.
var UploadBytesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_bytes_total",
		Help:      "Total bytes written to object storage by uploads.",
	},
)

// FeedbackCreatedTotal counts feedback comments left on files.
var FeedbackCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_created_total",
		Help:      "Total number of feedback comments created.",
	},
)

// MessagesSentTotal counts messages posted to project threads.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of project messages sent.",
	},
)
