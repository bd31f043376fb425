package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/utils/logging"
)

// Feedback is a user's rating of a diagnosis
type Feedback struct {
	SessionID model.SessionID `json:"session_id"`
	Rating    int             `json:"rating"`
	Helpful   bool            `json:"helpful"`
	Comment   string          `json:"comment,omitempty"`
}

func (f *Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return goerr.New("rating must be between 1 and 5", goerr.V("rating", f.Rating))
	}
	return nil
}

// RecordFeedback logs the rating for later analysis. There is no feedback
// store yet; the structured log is the record.
// TODO: persist feedback once a durable repository backend lands.
func (uc *UseCases) RecordFeedback(ctx context.Context, fb *Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	logging.From(ctx).Info("received feedback",
		"session_id", fb.SessionID,
		"rating", fb.Rating,
		"helpful", fb.Helpful,
		"comment", fb.Comment,
	)
	return nil
}
