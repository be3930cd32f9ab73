package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

const (
	broadcastRunsCollection = "broadcast_runs"

	fieldStartedAt = "started_at"
)

// Firestore implements Repository with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project IDs or missing permissions; an empty
	// collection is fine
	_, err = client.Collection(broadcastRunsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

// SaveBroadcastRun stores a broadcast run record
func (f *Firestore) SaveBroadcastRun(ctx context.Context, run *model.BroadcastRun) error {
	if run == nil {
		return goerr.New("broadcast run is nil")
	}
	if run.ID == "" {
		return goerr.New("broadcast run ID is empty")
	}

	_, err := f.client.Collection(broadcastRunsCollection).Doc(run.ID.String()).Set(ctx, run)
	if err != nil {
		return goerr.Wrap(err, "failed to save broadcast run", goerr.V("id", run.ID))
	}
	return nil
}

// GetBroadcastRun retrieves a run by ID
func (f *Firestore) GetBroadcastRun(ctx context.Context, id types.BroadcastID) (*model.BroadcastRun, error) {
	if id == "" {
		return nil, goerr.New("broadcast run ID is empty")
	}

	doc, err := f.client.Collection(broadcastRunsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrBroadcastRunNotFound, "no such run", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get broadcast run", goerr.V("id", id))
	}

	var run model.BroadcastRun
	if err := doc.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to decode broadcast run", goerr.V("id", id))
	}
	return &run, nil
}

// ListBroadcastRuns returns recent runs, newest first
func (f *Firestore) ListBroadcastRuns(ctx context.Context, limit int) ([]*model.BroadcastRun, error) {
	query := f.client.Collection(broadcastRunsCollection).
		OrderBy(fieldStartedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var runs []*model.BroadcastRun
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate broadcast runs")
		}

		var run model.BroadcastRun
		if err := doc.DataTo(&run); err != nil {
			return nil, goerr.Wrap(err, "failed to decode broadcast run", goerr.V("doc", doc.Ref.ID))
		}
		runs = append(runs, &run)
	}

	return runs, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
