package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kheobs/labsite/pkg/model"
)

type fakeRecorder struct {
	grants []model.AccessGrant
	err    error
}

func (r *fakeRecorder) RecordGrant(_ context.Context, grant model.AccessGrant) error {
	if r.err != nil {
		return r.err
	}
	r.grants = append(r.grants, grant)
	return nil
}

var (
	provider = DelayedProvider{}
	tool     = model.Tool{ID: 2, URL: "https://storymaps.kheobs.org/environment", RequiresAccess: true}
	creds    = Credentials{Email: "sophea@example.com", Password: "secret"}
)

func TestWizardHappyPath(t *testing.T) {
	ctx := context.Background()
	w := New(tool.ID)
	assert.Equal(t, StepAuthentication, w.Step)

	require.NoError(t, w.Login(ctx, provider, creds))
	assert.Equal(t, StepAccessLevel, w.Step)
	assert.Equal(t, "sophea@example.com", w.Email)

	require.NoError(t, w.SelectUserType(UserTypeResearcher))
	assert.Equal(t, StepAgreement, w.Step)

	require.NoError(t, w.Agree(true))
	assert.Equal(t, StepAccess, w.Step)

	recorder := &fakeRecorder{}
	url, err := w.Launch(ctx, tool, recorder)
	require.NoError(t, err)
	assert.Equal(t, "https://storymaps.kheobs.org/environment?tool=2&access=researcher", url)
	require.Len(t, recorder.grants, 1)
	assert.Equal(t, UserTypeResearcher, recorder.grants[0].UserType)
	assert.Equal(t, "sophea@example.com", recorder.grants[0].Email)
}

func TestWizardRegister(t *testing.T) {
	w := New(tool.ID)

	err := w.Register(context.Background(), provider, Registration{FirstName: "Rina", LastName: "", Email: "rina@example.com"})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, StepAuthentication, w.Step)

	// 机构可选
	require.NoError(t, w.Register(context.Background(), provider, Registration{FirstName: "Rina", LastName: "Meas", Email: "rina@example.com"}))
	assert.Equal(t, StepAccessLevel, w.Step)
	assert.Equal(t, "Rina Meas", w.Name)
}

func TestWizardRejectsOutOfOrderActions(t *testing.T) {
	ctx := context.Background()
	w := New(tool.ID)
	snapshot := *w

	assert.ErrorIs(t, w.SelectUserType(UserTypeStudent), ErrWrongStep)
	assert.ErrorIs(t, w.Agree(true), ErrWrongStep)
	_, err := w.Launch(ctx, tool, &fakeRecorder{})
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, snapshot, *w)

	require.NoError(t, w.Login(ctx, provider, creds))
	snapshot = *w
	assert.ErrorIs(t, w.Login(ctx, provider, creds), ErrWrongStep)
	assert.ErrorIs(t, w.Agree(true), ErrWrongStep)
	assert.Equal(t, snapshot, *w)
}

func TestWizardGates(t *testing.T) {
	ctx := context.Background()
	w := New(tool.ID)

	assert.ErrorIs(t, w.Login(ctx, provider, Credentials{Email: "a@b.c", Password: "  "}), ErrMissingField)
	assert.Equal(t, StepAuthentication, w.Step)

	require.NoError(t, w.Login(ctx, provider, creds))
	assert.ErrorIs(t, w.SelectUserType("admin"), ErrInvalidUserType)
	assert.Equal(t, StepAccessLevel, w.Step)

	require.NoError(t, w.SelectUserType(UserTypePublic))
	assert.ErrorIs(t, w.Agree(false), ErrTermsNotAccepted)
	assert.Equal(t, StepAgreement, w.Step)
	assert.False(t, w.AgreeToTerms)
}

func TestWizardLaunchFailures(t *testing.T) {
	ctx := context.Background()
	w := &Wizard{ToolID: tool.ID, Step: StepAccess, Email: "a@b.c", UserType: UserTypeStudent, AgreeToTerms: true}

	_, err := w.Launch(ctx, model.Tool{ID: 6}, &fakeRecorder{})
	assert.ErrorIs(t, err, ErrToolMismatch)

	_, err = w.Launch(ctx, tool, &fakeRecorder{err: errors.New("db down")})
	assert.ErrorContains(t, err, "record access grant: db down")
}

func TestProviderFailureKeepsStep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(tool.ID)
	err := w.Login(ctx, DelayedProvider{Delay: time.Hour}, creds)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StepAuthentication, w.Step)
}

func TestDelayedProviderWaits(t *testing.T) {
	start := time.Now()
	identity, err := DelayedProvider{Delay: 20 * time.Millisecond}.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, creds.Email, identity.Email)
}

func TestEncodeDecode(t *testing.T) {
	w := &Wizard{ToolID: 3, Step: StepAgreement, Email: "a@b.c", UserType: UserTypeStudent}
	raw, err := w.Encode()
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, w, decoded)

	_, err = Decode(`{"toolID": 3, "step": 9}`)
	assert.Error(t, err)
	_, err = Decode(`not json`)
	assert.Error(t, err)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "access-level", StepAccessLevel.String())
	assert.Equal(t, "unknown", Step(0).String())
}

func TestGuide(t *testing.T) {
	g := NewGuide(3, 0)
	assert.True(t, g.IsFirst())
	assert.Equal(t, 0, g.Prev().Index())

	g = g.Next().Next()
	assert.Equal(t, 2, g.Index())
	assert.True(t, g.IsLast())
	// 不循环
	assert.Equal(t, 2, g.Next().Index())
	assert.Equal(t, 1, g.Prev().Index())

	assert.Equal(t, 2, NewGuide(3, 10).Index())
	assert.Equal(t, 0, NewGuide(3, -1).Index())
	assert.Equal(t, 0, NewGuide(0, 2).Index())
	assert.True(t, NewGuide(0, 0).IsLast())
}
