package predict_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/internal/iotesting"
	"github.com/mavunowatch/mavuno/pkg/errcode"
	"github.com/mavunowatch/mavuno/pkg/predict"
	"github.com/mavunowatch/mavuno/pkg/view"
	"github.com/mavunowatch/mavuno/pkg/vocab"
	"github.com/mavunowatch/mavuno/pkg/yieldsvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock2024() time.Time {
	return time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)
}

func yieldReply(y float64) func(
	context.Context, yieldsvc.PredictionRequest,
) (*yieldsvc.PredictionResponse, error) {
	return func(context.Context, yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error) {
		return &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(y)}, nil
	}
}

// TestSubmit_Success verifies the request content and the success text.
func TestSubmit_Success(t *testing.T) {
	svc := &iotesting.FakeService{PredictFn: yieldReply(9.8)}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn", "Wheat"})
	pane := &iotesting.Pane{}
	c := predict.New(svc, src, pane, predict.OptClock(clock2024))

	err := c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: "12.5"})
	require.NoError(t, err)
	c.Wait()

	reqs := svc.Predictions()
	require.Len(t, reqs, 1)
	assert.Equal(t, yieldsvc.PredictionRequest{
		Year:     2024,
		AreaHa:   12.5,
		Crop:     "Corn",
		AllCrops: []string{"Corn", "Wheat"},
	}, reqs[0])

	msg, ok := pane.Last()
	require.True(t, ok)
	assert.Equal(t, view.Success, msg.Level)
	assert.Contains(t, msg.Text, "9.8")
	assert.Contains(t, msg.Text, "tons/ha")
	assert.Equal(t, "Predicted Yield: 9.8 tons/ha", msg.Text)
	assert.Equal(t, predict.Success, c.State())
}

// TestSubmit_AllCrops verifies that the full vocabulary is echoed back
// whichever crop is selected.
func TestSubmit_AllCrops(t *testing.T) {
	crops := []string{"Beans", "Corn", "Sorghum", "Wheat"}
	svc := &iotesting.FakeService{PredictFn: yieldReply(1)}
	src := iotesting.NewSource([]string{"Siaya"}, crops)
	c := predict.New(svc, src, &iotesting.Pane{})

	for _, crop := range crops {
		err := c.Submit(context.Background(),
			predict.Form{County: "Siaya", Crop: crop, Area: "3"})
		require.NoError(t, err)
		c.Wait()
	}

	reqs := svc.Predictions()
	require.Len(t, reqs, len(crops))
	for i, req := range reqs {
		assert.Equal(t, crops, req.AllCrops, req.Crop)
		assert.Equal(t, crops[i], req.Crop)
	}
}

// TestSubmit_Idempotent verifies that the same form submitted twice
// issues two identical requests.
func TestSubmit_Idempotent(t *testing.T) {
	svc := &iotesting.FakeService{PredictFn: yieldReply(2.5)}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn", "Wheat"})
	c := predict.New(svc, src, &iotesting.Pane{}, predict.OptClock(clock2024))
	form := predict.Form{County: "Clark", Crop: "Wheat", Area: "4"}

	require.NoError(t, c.Submit(context.Background(), form))
	c.Wait()
	require.NoError(t, c.Submit(context.Background(), form))
	c.Wait()

	reqs := svc.Predictions()
	require.Len(t, reqs, 2)
	assert.Equal(t, reqs[0], reqs[1])
	assert.Equal(t, reqs[0].Fingerprint(), reqs[1].Fingerprint())
}

// TestSubmit_DomainError verifies that the service error is shown
// verbatim.
func TestSubmit_DomainError(t *testing.T) {
	svc := &iotesting.FakeService{
		PredictFn: func(context.Context, yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error) {
			return &yieldsvc.PredictionResponse{Error: "model unavailable"}, nil
		},
	}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn", "Wheat"})
	pane := &iotesting.Pane{}
	c := predict.New(svc, src, pane)

	require.NoError(t, c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: "12.5"}))
	c.Wait()

	msg, ok := pane.Last()
	require.True(t, ok)
	assert.Equal(t, view.Message{
		Level: view.Warning,
		Kind:  view.KindDomain,
		Text:  "model unavailable",
	}, msg)
	assert.Equal(t, predict.Warning, c.State())
}

// TestSubmit_TransportError verifies the client-labelled failure text.
func TestSubmit_TransportError(t *testing.T) {
	svc := &iotesting.FakeService{
		PredictFn: func(context.Context, yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn"})
	pane := &iotesting.Pane{}
	c := predict.New(svc, src, pane)

	require.NoError(t, c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: "1"}))
	c.Wait()

	msg, ok := pane.Last()
	require.True(t, ok)
	assert.Equal(t, view.Warning, msg.Level)
	assert.Equal(t, view.KindTransport, msg.Kind)
	assert.Equal(t, "Prediction failed: connection refused", msg.Text)
	assert.Equal(t, predict.Failure, c.State())
}

// TestSubmit_Rejected verifies that invalid forms are not dispatched.
func TestSubmit_Rejected(t *testing.T) {
	known := vocab.New([]string{"Clark"}, []string{"Corn", "Wheat"})
	tests := []struct {
		msg  string
		crop string
		area string
		voc  *vocab.Vocabulary
		code gn.ErrorCode
	}{
		{"not a number", "Corn", "abc", known, errcode.InvalidAreaError},
		{"empty area", "Corn", "", known, errcode.InvalidAreaError},
		{"NaN area", "Corn", "NaN", known, errcode.InvalidAreaError},
		{"infinite area", "Corn", "Inf", known, errcode.InvalidAreaError},
		{"overflow", "Corn", "1e400", known, errcode.InvalidAreaError},
		{"unknown crop", "Rice", "2", known, errcode.UnknownCropError},
		{"no vocabulary", "Corn", "2", nil, errcode.VocabularyNotLoadedError},
		{"empty crop list", "Corn", "2", vocab.New([]string{"Clark"}, nil),
			errcode.EmptyVocabularyError},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			svc := &iotesting.FakeService{PredictFn: yieldReply(1)}
			src := iotesting.NewSource(nil, nil)
			src.Set(tt.voc)
			pane := &iotesting.Pane{}
			c := predict.New(svc, src, pane)

			err := c.Submit(context.Background(),
				predict.Form{County: "Clark", Crop: tt.crop, Area: tt.area})
			c.Wait()
			require.Error(t, err)

			var gnErr *gn.Error
			require.ErrorAs(t, err, &gnErr)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Empty(t, svc.Predictions())
			assert.Equal(t, predict.Rejected, c.State())

			msg, ok := pane.Last()
			require.True(t, ok)
			assert.Equal(t, view.Warning, msg.Level)
			assert.Equal(t, view.KindInvalidInput, msg.Kind)
		})
	}
}

// TestSubmit_NegativeArea verifies that only numeric parsing is applied
// to the area.
func TestSubmit_NegativeArea(t *testing.T) {
	svc := &iotesting.FakeService{PredictFn: yieldReply(1)}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn"})
	c := predict.New(svc, src, &iotesting.Pane{})

	require.NoError(t, c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: " -2.5 "}))
	c.Wait()

	reqs := svc.Predictions()
	require.Len(t, reqs, 1)
	assert.Equal(t, -2.5, reqs[0].AreaHa)
}

// TestSubmit_StaleReplyDiscarded verifies that a late reply to an older
// submission does not overwrite the result of a newer one.
func TestSubmit_StaleReplyDiscarded(t *testing.T) {
	release := make(chan struct{})
	svc := &iotesting.FakeService{
		PredictFn: func(_ context.Context, req yieldsvc.PredictionRequest) (*yieldsvc.PredictionResponse, error) {
			if req.AreaHa == 1 {
				<-release
				return &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(1.1)}, nil
			}
			return &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(2.2)}, nil
		},
	}
	src := iotesting.NewSource([]string{"Clark"}, []string{"Corn"})
	pane := &iotesting.Pane{}
	c := predict.New(svc, src, pane)

	require.NoError(t, c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: "1"}))
	require.NoError(t, c.Submit(context.Background(),
		predict.Form{County: "Clark", Crop: "Corn", Area: "2"}))

	assert.Eventually(t, func() bool {
		_, ok := pane.Last()
		return ok
	}, time.Second, 5*time.Millisecond)

	close(release)
	c.Wait()

	msgs := pane.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Predicted Yield: 2.2 tons/ha", msgs[0].Text)
	assert.Equal(t, predict.Success, c.State())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		msg   string
		resp  *yieldsvc.PredictionResponse
		err   error
		state predict.State
		kind  view.Kind
		text  string
	}{
		{
			msg:   "yield with units",
			resp:  &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(3.25), Units: "t/ha"},
			state: predict.Success,
			kind:  view.KindNone,
			text:  "Predicted Yield: 3.25 t/ha",
		},
		{
			msg: "yield wins over error",
			resp: &yieldsvc.PredictionResponse{
				PredictedYield: iotesting.Float(4),
				Error:          "partial data",
			},
			state: predict.Success,
			kind:  view.KindNone,
			text:  "Predicted Yield: 4 tons/ha",
		},
		{
			msg:   "zero yield is not usable",
			resp:  &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(0)},
			state: predict.Warning,
			kind:  view.KindAmbiguousEmpty,
			text:  predict.NoPredictionText,
		},
		{
			msg:   "zero yield with error",
			resp:  &yieldsvc.PredictionResponse{PredictedYield: iotesting.Float(0), Error: "no data for crop"},
			state: predict.Warning,
			kind:  view.KindDomain,
			text:  "no data for crop",
		},
		{
			msg:   "empty reply",
			state: predict.Failure,
			kind:  view.KindTransport,
			text:  "Prediction failed: empty reply",
		},
	}

	for _, tt := range tests {
		state, msg := predict.Classify(tt.resp, tt.err)
		assert.Equal(t, tt.state, state, tt.msg)
		assert.Equal(t, tt.kind, msg.Kind, tt.msg)
		assert.Equal(t, tt.text, msg.Text, tt.msg)
	}
}

func TestParseArea(t *testing.T) {
	res, err := predict.ParseArea(" 12.5\n")
	require.NoError(t, err)
	assert.Equal(t, 12.5, res)

	_, err = predict.ParseArea("12,5")
	assert.Error(t, err)
	assert.Contains(t, view.Describe(err), `"12,5"`)
}
