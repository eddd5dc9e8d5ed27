package lookup

import (
	"context"
	"errors"
	"time"

	"github.com/eliseohh/torrebot/internal/sheet"
	"go.uber.org/zap"
)

// Reply is the text to send back. Markdown marks record replies.
type Reply struct {
	Text     string
	Markdown bool
}

// Service answers one message at a time against a fresh snapshot.
// It holds no mutable state and is safe for concurrent use if src is.
type Service struct {
	src    sheet.Source
	cols   Columns
	logger *zap.Logger
}

func NewService(src sheet.Source, cols Columns, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, cols: cols, logger: logger}
}

// Reply interprets text and looks it up. Format and not-found outcomes are
// answered with fixed messages; only a failed fetch returns an error, as
// *SourceUnavailableError.
func (s *Service) Reply(ctx context.Context, text string) (Reply, error) {
	q, err := ParseQuery(text)
	if err != nil {
		s.logger.Info("rejected input", zap.String("text", text), zap.Error(err))
		return Reply{Text: FormatErrorMessage}, nil
	}

	start := time.Now()
	rows, err := s.src.FetchRows(ctx)
	if err != nil {
		return Reply{}, &SourceUnavailableError{Err: err}
	}

	idx := NewIndex(rows, s.cols)
	row, err := idx.Match(q)
	log := s.logger.With(
		zap.String("query", q.String()),
		zap.Int("rows", len(rows)),
		zap.Int("indexed", idx.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if errors.Is(err, ErrNotFound) {
		log.Info("no match")
		return Reply{Text: NotFoundMessage}, nil
	}

	log.Info("match",
		zap.String("tower", row[s.cols.Tower]),
		zap.String("apartment", row[s.cols.Apartment]),
	)
	return Reply{Text: FormatRecord(row, s.cols), Markdown: true}, nil
}
