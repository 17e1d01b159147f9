// internal/assist/flows_test.go
package assist_test

import (
	"context"
	"testing"

	"github.com/fieldworks/territory/internal/assist"
	"github.com/fieldworks/territory/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummarizeAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"summary":"Steady customer.","key_points":["renewal in January"]}`, nil)

	svc := assist.NewService(gen)

	summary, err := svc.SummarizeAccount(context.Background(), assist.SummarizeInput{
		AccountName: "Northfield Dairy Cooperative",
		Notes:       []string{"Reviewed Q4 order volumes."},
	})
	require.NoError(t, err)
	assert.Equal(t, "Steady customer.", summary.Summary)
	assert.Equal(t, []string{"renewal in January"}, summary.KeyPoints)
}

func TestSummarizeAccount_NoNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := assist.NewService(mocks.NewMockGenerator(ctrl))

	_, err := svc.SummarizeAccount(context.Background(), assist.SummarizeInput{
		AccountName: "Empty",
	})
	assert.Error(t, err)
}

func TestSummarizeAccount_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`not json`, nil)

	svc := assist.NewService(gen)

	_, err := svc.SummarizeAccount(context.Background(), assist.SummarizeInput{
		AccountName: "Northfield",
		Notes:       []string{"a note"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing summary response")
}

func TestSuggestActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"actions":[{"title":"Schedule site visit","rationale":"Key account, no visit this quarter."}]}`, nil)

	svc := assist.NewService(gen)

	suggestions, err := svc.SuggestActions(context.Background(), assist.SuggestInput{
		AccountName: "Millbrook Fabrication",
		Status:      "key-account",
		RecentNotes: []string{"Confirm gate access with Priya."},
	})
	require.NoError(t, err)
	require.Len(t, suggestions.Actions, 1)
	assert.Equal(t, "Schedule site visit", suggestions.Actions[0].Title)
}

func TestTranscribeCallNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audio := []byte("fake-audio-bytes")

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		GenerateFromAudio(gomock.Any(), gomock.Any(), audio, "audio/webm", gomock.Any()).
		Return(`{"text":"Met with Priya about the Q4 renewal."}`, nil)

	svc := assist.NewService(gen)

	transcript, err := svc.TranscribeCallNote(context.Background(), assist.TranscribeInput{
		Audio:    audio,
		MIMEType: "audio/webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "Met with Priya about the Q4 renewal.", transcript.Text)
}

func TestTranscribeCallNote_EmptyAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := assist.NewService(mocks.NewMockGenerator(ctrl))

	_, err := svc.TranscribeCallNote(context.Background(), assist.TranscribeInput{
		MIMEType: "audio/webm",
	})
	assert.Error(t, err)
}

func TestTranscribeCallNote_MissingMIMEType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := assist.NewService(mocks.NewMockGenerator(ctrl))

	_, err := svc.TranscribeCallNote(context.Background(), assist.TranscribeInput{
		Audio: []byte("fake-audio-bytes"),
	})
	assert.Error(t, err)
}

func TestTranscribeCallNote_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		GenerateFromAudio(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`not json`, nil)

	svc := assist.NewService(gen)

	_, err := svc.TranscribeCallNote(context.Background(), assist.TranscribeInput{
		Audio:    []byte("fake-audio-bytes"),
		MIMEType: "audio/webm",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing transcript response")
}
