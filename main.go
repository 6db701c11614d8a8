package main

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"time"

	"heating-temp-receiver/src/notify"
	"heating-temp-receiver/src/reconciler"
	"heating-temp-receiver/src/store"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/sns"
	"go.uber.org/zap"
)

var (
	sess         = session.Must(session.NewSession())
	s3Client     = s3.New(sess)
	snsClient    = sns.New(sess)
	lambdaBucket = os.Getenv("CONFIG_BUCKET") // bucket holding config, status and archives
)

func detectEventType(event json.RawMessage) string {
	var probe struct {
		Records []json.RawMessage `json:"Records"`
		Source  string            `json:"source"`
	}
	if err := json.Unmarshal(event, &probe); err == nil {
		if probe.Records != nil {
			return "s3"
		}
		if probe.Source == "aws.events" {
			return "scheduled"
		}
	}
	return "unknown"
}

// toReadingBatch converts S3 notification records into the core event,
// dropping records from other event sources and unescaping object keys.
func toReadingBatch(s3Event events.S3Event, log *zap.Logger) reconciler.Event {
	var refs []reconciler.ObjectRef
	for _, rec := range s3Event.Records {
		if rec.EventSource != "aws:s3" {
			log.Warn("unknown event record", zap.String("event_source", rec.EventSource))
			continue
		}
		key, err := url.QueryUnescape(rec.S3.Object.Key)
		if err != nil {
			log.Warn("could not unescape object key", zap.String("key", rec.S3.Object.Key))
			key = rec.S3.Object.Key
		}
		refs = append(refs, reconciler.ObjectRef{Bucket: rec.S3.Bucket.Name, Key: key})
	}
	return reconciler.Event{Kind: reconciler.ReadingBatch, Records: refs}
}

func decodeEvent(raw json.RawMessage, log *zap.Logger) reconciler.Event {
	switch detectEventType(raw) {
	case "s3":
		var s3Event events.S3Event
		if err := json.Unmarshal(raw, &s3Event); err != nil {
			log.Warn("could not decode S3 event", zap.Error(err))
			return reconciler.Event{Kind: reconciler.Unrecognized}
		}
		return toReadingBatch(s3Event, log)
	case "scheduled":
		return reconciler.Event{Kind: reconciler.Heartbeat}
	default:
		log.Warn("unexpected event payload", zap.ByteString("event", raw))
		return reconciler.Event{Kind: reconciler.Unrecognized}
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if lambdaBucket == "" {
		logger.Fatal("CONFIG_BUCKET environment variable not set")
	}

	env := reconciler.Env{
		Store:        store.NewS3Store(s3Client),
		Notifier:     notify.NewSNSNotifier(snsClient),
		LambdaBucket: lambdaBucket,
		Now:          time.Now,
		Log:          logger,
	}

	lambda.Start(func(ctx context.Context, raw json.RawMessage) error {
		// Transport error boundary: reconciliation failures are logged,
		// never returned, so the event is not redelivered.
		if err := reconciler.Reconcile(env, decodeEvent(raw, logger)); err != nil {
			logger.Error("exception while processing event", zap.Error(err))
		}
		return nil
	})
}
