package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_ioutboxrepo "github.com/corray333/backend-labs/cafe/internal/dal/interfaces/ioutboxrepo/mock"
	"github.com/corray333/backend-labs/cafe/internal/service/models/event"
	"github.com/corray333/backend-labs/cafe/internal/service/models/outbox"
	"github.com/golang/mock/gomock"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	err       error
	published []amqp.Publishing
	keys      []string
}

func (f *fakeChannel) Publish(_, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)

	return nil
}

func newEvent(t *testing.T) event.Event {
	t.Helper()
	e, err := event.New("e1", event.TypeGroupCompleted, event.GroupCompleted{GroupID: 1}, time.Now())
	require.NoError(t, err)

	return e
}

func TestPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_ioutboxrepo.NewMockIOutboxRepository(ctrl)
	ch := &fakeChannel{}

	p := NewPublisher(ch, repo, "cafe.events")
	require.NoError(t, p.Publish(context.Background(), newEvent(t)))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "cafe.group.completed", ch.keys[0])
	assert.Equal(t, "e1", ch.published[0].MessageId)
	assert.Equal(t, outbox.ContentTypeJSON, ch.published[0].ContentType)
}

func TestPublishFallsBackToOutbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_ioutboxrepo.NewMockIOutboxRepository(ctrl)
	ch := &fakeChannel{err: amqp.ErrClosed}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg outbox.Message) error {
			assert.Equal(t, "e1", msg.EventID)
			assert.Equal(t, "cafe.group.completed", msg.RoutingKey)
			assert.Equal(t, outbox.DefaultMaxRetries, msg.MaxRetries)
			assert.NotEmpty(t, msg.Payload)
			return nil
		})

	p := NewPublisher(ch, repo, "cafe.events")
	assert.NoError(t, p.Publish(context.Background(), newEvent(t)))
}

func TestPublishOutboxFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_ioutboxrepo.NewMockIOutboxRepository(ctrl)
	ch := &fakeChannel{err: amqp.ErrClosed}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	p := NewPublisher(ch, repo, "cafe.events")
	err := p.Publish(context.Background(), newEvent(t))
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublishWithoutOutbox(t *testing.T) {
	p := NewPublisher(&fakeChannel{err: amqp.ErrClosed}, nil, "cafe.events")
	assert.Error(t, p.Publish(context.Background(), newEvent(t)))
}
