package screens

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/academia/pkg/appdata"
	"tableflip.dev/academia/pkg/learn"
)

// ErrLearnUnavailable is returned when no Querier is configured.
var ErrLearnUnavailable = errors.New("screens: learn is not configured")

// Learn runs searches and keeps the latest answer. Searches are never
// cancelled; whichever response arrives last is the one shown.
type Learn struct {
	Querier learn.Querier
	Labels  *Labels

	mu     sync.Mutex
	issued uint64
	state  LearnState
}

// LearnState is what the Learn screen shows.
type LearnState struct {
	Topic   string
	Result  *learn.Result
	Err     error
	Loading bool
	// Seq is the sequence number of the search whose response is shown.
	Seq uint64
}

func (l *Learn) Title() string { return l.Labels.Get(appdata.LabelLearnTitle) }

// Sites are the external tools the screen links to.
func (l *Learn) Sites() []learn.Site { return learn.Sites }

// State returns the latest state.
func (l *Learn) State() LearnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Search asks about topic and records the response. Use learn.CurrentEvents
// for the news digest.
func (l *Learn) Search(ctx context.Context, topic string) LearnState {
	if topic != learn.CurrentEvents {
		var err error
		if topic, err = required(topic); err != nil {
			return l.finish(l.begin(topic), topic, nil, err)
		}
	}
	seq := l.begin(topic)
	if l.Querier == nil {
		return l.finish(seq, topic, nil, ErrLearnUnavailable)
	}
	res, err := l.Querier.Query(ctx, topic)
	return l.finish(seq, topic, res, err)
}

// CurrentEvents fetches the news digest.
func (l *Learn) CurrentEvents(ctx context.Context) LearnState {
	return l.Search(ctx, learn.CurrentEvents)
}

func (l *Learn) begin(topic string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	l.state.Loading = true
	l.state.Topic = topic
	return l.issued
}

func (l *Learn) finish(seq uint64, topic string, res *learn.Result, err error) LearnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = LearnState{
		Topic:   topic,
		Result:  res,
		Err:     err,
		Loading: seq < l.issued,
		Seq:     seq,
	}
	return l.state
}
