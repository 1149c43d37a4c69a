package howto_test

import (
	"context"
	"errors"
	"testing"

	llmmocks "guidegen/core/llm/mocks"
	"guidegen/feature/howto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeAttacher struct {
	url    string
	errMsg string
	calls  int
}

func (f *fakeAttacher) Illustrate(ctx context.Context, title, action string) (string, string) {
	f.calls++
	return f.url, f.errMsg
}

func newService(t *testing.T, client *llmmocks.Client, attacher howto.Attacher) *howto.Service {
	t.Helper()
	gen := howto.NewGenerator(client, nil, zap.NewNop())
	return howto.NewService(gen, attacher, zap.NewNop())
}

func TestService_PassthroughSkipsGeneration(t *testing.T) {
	client := new(llmmocks.Client)
	svc := newService(t, client, nil)

	req := howto.Request{Guide: howto.Guide{
		Title: "Prebuilt guide",
		Steps: []howto.Step{{Number: 1, Title: "Step one", Action: "Do it."}},
	}}

	guide := svc.BuildGuide(context.Background(), req)

	assert.Equal(t, "Prebuilt guide", guide.Title)
	assert.NotNil(t, guide.Troubleshooting)
	assert.NotNil(t, guide.Safety)
	client.AssertNotCalled(t, "Respond", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestService_AttachesImagesToEveryStep(t *testing.T) {
	client := new(llmmocks.Client)
	attacher := &fakeAttacher{url: "/static/images/abc.png"}
	svc := newService(t, client, attacher)

	req := howto.Request{Guide: howto.Guide{Steps: []howto.Step{
		{Number: 1, Title: "First", Action: "Do the first thing."},
		{Number: 2, Title: "Second", Action: "Do the second thing."},
	}}}

	guide := svc.BuildGuide(context.Background(), req)

	assert.Equal(t, 2, attacher.calls)
	assert.Equal(t, "/static/images/abc.png", guide.Steps[0].ImageURL)
	assert.Equal(t, "/static/images/abc.png", guide.Steps[1].ImageURL)
	assert.Empty(t, guide.Steps[0].ImageError)
}

func TestService_AttachFailureIsRecordedOnStep(t *testing.T) {
	client := new(llmmocks.Client)
	attacher := &fakeAttacher{url: "/static/images/abc.png", errMsg: "provider timeout"}
	svc := newService(t, client, attacher)

	req := howto.Request{Guide: howto.Guide{Steps: []howto.Step{
		{Number: 1, Title: "First", Action: "Do the first thing."},
	}}}

	guide := svc.BuildGuide(context.Background(), req)

	assert.Equal(t, "/static/images/abc.png", guide.Steps[0].ImageURL)
	assert.Equal(t, "provider timeout", guide.Steps[0].ImageError)
}

func TestService_SkippedStepsStayClean(t *testing.T) {
	client := new(llmmocks.Client)
	attacher := &fakeAttacher{}
	svc := newService(t, client, attacher)

	req := howto.Request{Guide: howto.Guide{Steps: []howto.Step{{Number: 1}}}}

	guide := svc.BuildGuide(context.Background(), req)

	assert.Equal(t, 1, attacher.calls)
	assert.Empty(t, guide.Steps[0].ImageURL)
	assert.Empty(t, guide.Steps[0].ImageError)
}

func TestService_GeneratesWhenNoSteps(t *testing.T) {
	client := new(llmmocks.Client)
	client.On("Respond", mock.Anything, mock.Anything).Return("", errors.New("down"))
	client.On("Chat", mock.Anything, mock.Anything).Return("", errors.New("down"))
	svc := newService(t, client, nil)

	guide := svc.BuildGuide(context.Background(), howto.Request{Question: "How do I test"})

	assert.Equal(t, "How to Test", guide.Title)
	client.AssertExpectations(t)
}
